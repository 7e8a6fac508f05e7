package knowledge

import (
	"fmt"
	"slices"

	"github.com/lox/hanabot/internal/deck"
)

// HintOptions controls how a hint is interpreted.
type HintOptions struct {
	// Inference narrows a singly-targeted card to the identities that are
	// playable right now: a hinted number pins the suit to piles one below
	// it, a hinted color pins the rank to one above the pile.
	Inference bool

	// Warning marks a color hint that informs rather than asks for a play.
	// No inference is drawn and no play is signalled.
	Warning bool
}

// HintOutcome is the result of interpreting a hint.
type HintOutcome struct {
	// NextPlay is the leftmost targeted slot.
	NextPlay int
	// Signal is false when the hint must not trigger a play.
	Signal bool
}

// ApplyNumberHint marks targets as having rank r and rules r out of every
// other slot.
func ApplyNumberHint(s *Slots, r deck.Rank, targets []int, t Tableau, opts HintOptions) (HintOutcome, error) {
	if !r.Valid() {
		return HintOutcome{}, fmt.Errorf("number hint: invalid rank %d", r)
	}
	if err := checkTargets(s, targets); err != nil {
		return HintOutcome{}, fmt.Errorf("number hint %s: %w", r, err)
	}

	for i := 0; i < s.Len(); i++ {
		k := s.At(i)
		if slices.Contains(targets, i) {
			k.MarkHinted()
			k.KnowRank(r)
		} else {
			k.EliminateRank(r)
		}
	}

	if opts.Inference && !opts.Warning && len(targets) == 1 && r < deck.MaxRank {
		inferSuit(s.At(targets[0]), r, t)
	}
	return outcome(targets, opts), nil
}

// ApplyColorHint marks targets as having suit c and rules c out of every
// other slot.
func ApplyColorHint(s *Slots, c deck.Suit, targets []int, t Tableau, opts HintOptions) (HintOutcome, error) {
	if !c.Valid() {
		return HintOutcome{}, fmt.Errorf("color hint: invalid suit %d", c)
	}
	if err := checkTargets(s, targets); err != nil {
		return HintOutcome{}, fmt.Errorf("color hint %s: %w", c, err)
	}

	for i := 0; i < s.Len(); i++ {
		k := s.At(i)
		if slices.Contains(targets, i) {
			k.MarkHinted()
			k.KnowSuit(c)
		} else {
			k.EliminateSuit(c)
		}
	}

	if opts.Inference && !opts.Warning && len(targets) == 1 && t.Height(c) < int(deck.MaxRank) {
		inferRank(s.At(targets[0]), c, t)
	}
	return outcome(targets, opts), nil
}

// IsWarning reports whether a color hint on targets reads as a warning: a
// targeted slot known to be a 1 of unknown suit that cannot be played in
// suit c.
// Evaluate before applying the hint.
func IsWarning(s *Slots, c deck.Suit, targets []int, t Tableau) bool {
	if t.Height(c) == 0 {
		return false
	}
	for _, i := range targets {
		if i < 0 || i >= s.Len() {
			continue
		}
		k := s.At(i)
		r, rankKnown := k.Rank()
		_, suitKnown := k.Suit()
		if rankKnown && r == deck.MinRank && !suitKnown {
			return true
		}
	}
	return false
}

// inferSuit keeps only suits whose pile sits one below r. Skipped when the
// suit is already known or no candidate suit fits.
func inferSuit(k *Card, r deck.Rank, t Tableau) {
	if _, ok := k.Suit(); ok {
		return
	}
	var keep []deck.Suit
	for _, s := range k.Suits() {
		if t.Height(s) == int(r)-1 {
			keep = append(keep, s)
		}
	}
	if len(keep) == 0 {
		return
	}
	for _, s := range deck.Suits {
		if !slices.Contains(keep, s) {
			k.EliminateSuit(s)
		}
	}
}

// inferRank pins the rank to the next card of suit c when still possible.
func inferRank(k *Card, c deck.Suit, t Tableau) {
	if _, ok := k.Rank(); ok {
		return
	}
	next := deck.Rank(t.Height(c) + 1)
	if k.RankEliminated(next) {
		return
	}
	k.KnowRank(next)
}

func checkTargets(s *Slots, targets []int) error {
	if len(targets) == 0 {
		return fmt.Errorf("no targets")
	}
	for _, i := range targets {
		if i < 0 || i >= s.Len() {
			return fmt.Errorf("target %d of %d: %w", i, s.Len(), ErrSlotRange)
		}
	}
	return nil
}

func outcome(targets []int, opts HintOptions) HintOutcome {
	return HintOutcome{
		NextPlay: slices.Min(targets),
		Signal:   !opts.Warning,
	}
}
