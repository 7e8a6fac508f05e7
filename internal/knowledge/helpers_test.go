package knowledge

import "github.com/lox/hanabot/internal/deck"

// piles is a minimal Tableau for tests, indexed by suit code.
type piles [deck.NumSuits]int

func (p piles) Height(s deck.Suit) int { return p[s] }
