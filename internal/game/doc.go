// Package game implements the referee side of a cooperative two-player
// fireworks card game and the read-only views handed to players.
//
// Each player holds five cards it cannot see; its partner can. Cards are
// played onto one pile per suit in rank order. Illegal plays burn a fuse,
// hints cost a hint token and discards refund one.
//
// # Basic Usage
//
// Run a game between two agents from a seeded deck:
//
//	d := deck.NewDeck(randutil.New(seed))
//	d.Shuffle()
//	e := game.NewEngine(game.DefaultRules(), d, [2]game.Agent{a, b}, logger)
//	result, err := e.Play(ctx)
//
// # Protocol
//
// The engine only talks to players through the Agent interface. Before each
// decision a player has received every inform call describing what happened
// since its last turn; Decide returns one Action whose String form is the
// wire grammar (PLAY x y, DISCARD x y, NUMBERHINT n, COLORHINT s).
//
// Agents that emit an illegal action end the game with ErrInvalidAction;
// the engine never repairs a decision.
package game
