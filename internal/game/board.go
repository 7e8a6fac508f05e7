package game

import (
	"fmt"
	"strings"

	"github.com/lox/hanabot/internal/deck"
)

// Board is a snapshot of the shared table state.
type Board struct {
	Piles    [deck.NumSuits]int
	Hints    int
	MaxHints int
	Fuses    int
}

// Height returns the highest rank played in suit s.
func (b Board) Height(s deck.Suit) int {
	if !s.Valid() {
		return 0
	}
	return b.Piles[s]
}

// IsLegalPlay reports whether c is the next card of its suit.
func (b Board) IsLegalPlay(c deck.Card) bool {
	return c.Valid() && int(c.Rank) == b.Piles[c.Suit]+1
}

// Complete reports whether every pile has reached rank 5.
func (b Board) Complete() bool {
	for _, h := range b.Piles {
		if h < int(deck.MaxRank) {
			return false
		}
	}
	return true
}

// Score returns the sum of pile heights, or 0 once the fuses are gone.
func (b Board) Score() int {
	if b.Fuses <= 0 {
		return 0
	}
	total := 0
	for _, h := range b.Piles {
		total += h
	}
	return total
}

// String renders the board, e.g. "R2 Y0 G1 B0 W3 hints=5 fuses=2".
func (b Board) String() string {
	var sb strings.Builder
	for _, s := range deck.Suits {
		fmt.Fprintf(&sb, "%s%d ", s.Letter(), b.Piles[s])
	}
	fmt.Fprintf(&sb, "hints=%d fuses=%d", b.Hints, b.Fuses)
	return sb.String()
}

// Hand is an ordered list of cards. Index 0 is the slot drawn into most
// recently.
type Hand []deck.Card

// Clone returns an independent copy
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// IndicesOfSuit returns the ascending indices holding suit s.
func (h Hand) IndicesOfSuit(s deck.Suit) []int {
	var out []int
	for i, c := range h {
		if c.Suit == s {
			out = append(out, i)
		}
	}
	return out
}

// IndicesOfRank returns the ascending indices holding rank r.
func (h Hand) IndicesOfRank(r deck.Rank) []int {
	var out []int
	for i, c := range h {
		if c.Rank == r {
			out = append(out, i)
		}
	}
	return out
}

// String renders the hand as space separated cards.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// remove returns the card at i and the hand without it.
func (h Hand) remove(i int) (deck.Card, Hand) {
	card := h[i]
	out := make(Hand, 0, len(h))
	out = append(out, h[:i]...)
	out = append(out, h[i+1:]...)
	return card, out
}

func (h Hand) insert(i int, c deck.Card) Hand {
	if i > len(h) {
		i = len(h)
	}
	out := make(Hand, 0, len(h)+1)
	out = append(out, h[:i]...)
	out = append(out, c)
	out = append(out, h[i:]...)
	return out
}
