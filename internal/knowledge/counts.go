package knowledge

import (
	"fmt"

	"github.com/lox/hanabot/internal/deck"
)

// Counts is the remaining-count table, indexed by deck.Card.Index.
type Counts [deck.NumCards]int

// NewCounts returns the table for a full, unseen deck.
func NewCounts() Counts {
	var c Counts
	for i := range c {
		c[i] = deck.Copies(deck.CardAt(i).Rank)
	}
	return c
}

// Remaining returns the unseen copies of card.
func (c *Counts) Remaining(card deck.Card) int {
	return c[card.Index()]
}

// See records one copy of card becoming visible. It reports whether this
// was the last unseen copy.
func (c *Counts) See(card deck.Card) (bool, error) {
	if !card.Valid() {
		return false, fmt.Errorf("see %v: invalid card", card)
	}
	idx := card.Index()
	if c[idx] == 0 {
		return false, fmt.Errorf("see %s: %w", card, ErrCountUnderflow)
	}
	c[idx]--
	return c[idx] == 0, nil
}

// Exhausted lists the cards with no unseen copies left.
func (c *Counts) Exhausted() []deck.Card {
	var out []deck.Card
	for i, n := range c {
		if n == 0 {
			out = append(out, deck.CardAt(i))
		}
	}
	return out
}

// Total returns the number of unseen cards.
func (c *Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
