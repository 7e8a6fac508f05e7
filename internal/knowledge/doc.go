// Package knowledge tracks what a player can deduce about cards it cannot
// see.
//
// Three structures cooperate:
//
//   - Counts is the remaining-count table: how many copies of each of the 25
//     card identities have not yet been seen by the player.
//   - Card is the belief about one hand slot: a known suit and rank when
//     hints pin them down, plus the suits and ranks ruled out so far.
//   - Slots is the ordered hand of beliefs, with the shift semantics of a
//     hand that loses a card and draws a new one.
//
// The hint interpreter (ApplyNumberHint, ApplyColorHint) updates a Slots
// value under the leftmost-hinted-card-plays convention. It is used both for
// the player's own hand and for the model of what the partner knows.
package knowledge

import (
	"errors"

	"github.com/lox/hanabot/internal/deck"
)

var (
	// ErrCountUnderflow is returned when more copies of a card are seen
	// than the deck holds.
	ErrCountUnderflow = errors.New("remaining count below zero")

	// ErrNoCandidates is returned when a slot's beliefs rule out every
	// card identity.
	ErrNoCandidates = errors.New("no candidate cards left")

	// ErrSlotRange is returned for a slot index outside the hand.
	ErrSlotRange = errors.New("slot index out of range")
)

// Tableau exposes the height of each suit's pile.
type Tableau interface {
	Height(s deck.Suit) int
}
