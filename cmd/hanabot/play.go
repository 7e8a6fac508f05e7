package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/hanabot/internal/bot"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/history"
	"github.com/lox/hanabot/internal/randutil"
	"github.com/lox/hanabot/internal/render"
)

// PlayCmd plays a single game and prints every turn.
type PlayCmd struct {
	Seed      int64  `short:"s" help:"Deck seed (0 for random)"`
	Ruleset   string `short:"r" help:"Agent ruleset: full or simple"`
	Knowledge bool   `short:"k" help:"Show each player's beliefs about its own hand"`
	Record    string `help:"Write the game record to this file"`
}

func (cmd *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Ruleset != "" {
		cfg.Agent.Ruleset = cmd.Ruleset
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	seed := cmd.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	d := deck.NewDeck(randutil.New(seed))
	d.Shuffle()

	turn := 0
	var agents [2]game.Agent
	for seat := range agents {
		agents[seat] = &narrator{
			Player:    bot.NewPlayer(opts, logger.With("seat", seat)),
			seat:      seat,
			knowledge: cmd.Knowledge,
			turn:      &turn,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(render.HeaderStyle.Render(fmt.Sprintf("Game %d (%s ruleset)", seed, cfg.Agent.Ruleset)))
	res, err := game.NewEngine(cfg.Rules(), d, agents, logger).Play(ctx)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}
	fmt.Println(render.Board(res.Board))
	fmt.Println(render.Result(res))

	if cmd.Record != "" {
		if err := writeRecord(cmd.Record, seed, cfg.Agent.Ruleset, cfg.Rules(), res, clock, logger); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(path string, seed int64, ruleset string, rules game.Rules, res *game.Result, clock quartz.Clock, logger *log.Logger) error {
	r, err := history.NewRecord(seed, rules, res, clock.Now())
	if err != nil {
		return err
	}
	r.Agent = ruleset
	if err := history.WriteFile(path, r); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	logger.Info("Recorded game", "id", r.ID, "file", path)
	return nil
}

// narrator prints each decision before handing it to the engine. Both
// seats share the turn counter.
type narrator struct {
	*bot.Player
	seat      int
	knowledge bool
	turn      *int
}

func (n *narrator) Decide(handSize int, partnerHand game.Hand, board game.Board) (game.Action, error) {
	a, err := n.Player.Decide(handSize, partnerHand, board)
	if err != nil {
		return a, err
	}
	*n.turn++
	fmt.Printf("%s  %s\n", render.Turn(*n.turn, n.seat, a.String(), board), render.InfoStyle.Render(n.LastRule().String()))
	if n.knowledge {
		fmt.Printf("       partner %s  self %s\n", render.Hand(partnerHand), render.Knowledge(n.Knowledge()))
	}
	return a, nil
}
