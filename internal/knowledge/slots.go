package knowledge

import (
	"fmt"
	"strings"

	"github.com/lox/hanabot/internal/deck"
)

// Capacity is the maximum number of cards in a hand.
const Capacity = 5

// Slots is an ordered hand of beliefs with a fixed capacity. Index 0 is the
// slot drawn into most recently.
type Slots struct {
	cards [Capacity]Card
	n     int
}

// NewSlots returns n empty beliefs.
func NewSlots(n int) Slots {
	if n < 0 {
		n = 0
	}
	if n > Capacity {
		n = Capacity
	}
	return Slots{n: n}
}

// Len returns the number of occupied slots.
func (s *Slots) Len() int {
	return s.n
}

// At returns the belief at index i for in-place updates.
func (s *Slots) At(i int) *Card {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("knowledge: slot %d out of range [0,%d)", i, s.n))
	}
	return &s.cards[i]
}

// Remove drops slot i and shifts the slots after it left.
func (s *Slots) Remove(i int) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("remove %d of %d: %w", i, s.n, ErrSlotRange)
	}
	copy(s.cards[i:s.n], s.cards[i+1:s.n])
	s.n--
	s.cards[s.n] = Card{}
	return nil
}

// Insert places k at index i and shifts the slots from i right.
func (s *Slots) Insert(i int, k Card) error {
	if s.n == Capacity {
		return fmt.Errorf("insert %d: hand full: %w", i, ErrSlotRange)
	}
	if i < 0 || i > s.n {
		return fmt.Errorf("insert %d of %d: %w", i, s.n, ErrSlotRange)
	}
	copy(s.cards[i+1:s.n+1], s.cards[i:s.n])
	s.cards[i] = k
	s.n++
	return nil
}

// Replace removes slot from and inserts a fresh belief at to, mirroring a
// play or discard followed by a draw. With drew false the hand shrinks.
func (s *Slots) Replace(from, to int, drew bool) error {
	if err := s.Remove(from); err != nil {
		return err
	}
	if !drew {
		return nil
	}
	if to > s.n {
		to = s.n
	}
	return s.Insert(to, Card{})
}

// EliminateCard applies an exhausted identity to every slot.
func (s *Slots) EliminateCard(c deck.Card) {
	for i := 0; i < s.n; i++ {
		s.cards[i].EliminateCard(c)
	}
}

// Validate checks every slot still has a candidate.
func (s *Slots) Validate() error {
	for i := 0; i < s.n; i++ {
		if err := s.cards[i].Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// String renders every slot, e.g. "[?1* ?? R?]".
func (s *Slots) String() string {
	parts := make([]string, s.n)
	for i := 0; i < s.n; i++ {
		parts[i] = s.cards[i].String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
