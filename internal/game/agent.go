package game

import "github.com/lox/hanabot/internal/deck"

// PlayEvent describes a played card. Draw and Hand are only populated for
// the partner's plays, since a player never sees its own cards.
type PlayEvent struct {
	Card      deck.Card
	Index     int
	Draw      deck.Card
	DrawIndex int
	Drew      bool
	Legal     bool
	Hand      Hand
	Board     Board
}

// DiscardEvent describes a discarded card, with the same visibility rules
// as PlayEvent.
type DiscardEvent struct {
	Card      deck.Card
	Index     int
	Draw      deck.Card
	DrawIndex int
	Drew      bool
	Hand      Hand
	Board     Board
}

// HintEvent describes a hint received. Indices are ascending positions in
// the receiver's own hand; PartnerHand is the hinter's hand.
type HintEvent struct {
	Suit        deck.Suit
	Rank        deck.Rank
	Indices     []int
	PartnerHand Hand
	Board       Board
}

// Agent is a player driven by the engine. Calls are strictly sequential:
// zero or more inform calls, then Decide, then more inform calls.
//
// Inform calls return an error when the agent's own bookkeeping is
// inconsistent; the engine aborts the game rather than continue on a
// broken belief state.
type Agent interface {
	// Start is called once after the deal with the partner's hand.
	Start(handSize int, partnerHand Hand, board Board) error

	OwnPlayed(e PlayEvent) error
	PartnerPlayed(e PlayEvent) error
	OwnDiscarded(e DiscardEvent) error
	PartnerDiscarded(e DiscardEvent) error
	ColorHint(e HintEvent) error
	NumberHint(e HintEvent) error

	// Decide returns the next action. It must be legal for the given
	// state.
	Decide(handSize int, partnerHand Hand, board Board) (Action, error)
}
