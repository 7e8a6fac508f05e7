package knowledge

import (
	"fmt"
	"strings"

	"github.com/lox/hanabot/internal/deck"
)

// Card is the belief about a single hand slot. The zero value knows
// nothing: every suit and rank is still a candidate.
type Card struct {
	suit      deck.Suit
	suitKnown bool
	rank      deck.Rank
	rankKnown bool

	noSuit [deck.NumSuits]bool
	noRank [deck.NumRanks]bool

	hinted bool
}

// Suit returns the known suit, if any.
func (k *Card) Suit() (deck.Suit, bool) {
	return k.suit, k.suitKnown
}

// Rank returns the known rank, if any.
func (k *Card) Rank() (deck.Rank, bool) {
	return k.rank, k.rankKnown
}

// Hinted reports whether the slot was ever the target of a hint.
func (k *Card) Hinted() bool {
	return k.hinted
}

// MarkHinted records that the slot was touched by a hint.
func (k *Card) MarkHinted() {
	k.hinted = true
}

// KnowSuit fixes the suit. Rank knowledge is untouched.
func (k *Card) KnowSuit(s deck.Suit) {
	k.suit = s
	k.suitKnown = true
}

// KnowRank fixes the rank. Suit knowledge is untouched.
func (k *Card) KnowRank(r deck.Rank) {
	k.rank = r
	k.rankKnown = true
}

// EliminateSuit rules out suit s. Eliminating the known suit is a no-op.
// When a single suit remains it becomes the known suit.
func (k *Card) EliminateSuit(s deck.Suit) {
	if !s.Valid() || (k.suitKnown && k.suit == s) {
		return
	}
	k.noSuit[s] = true
	if k.suitKnown {
		return
	}
	if only, ok := k.singleSuit(); ok {
		k.KnowSuit(only)
	}
}

// EliminateRank rules out rank r. Eliminating the known rank is a no-op.
// When a single rank remains it becomes the known rank.
func (k *Card) EliminateRank(r deck.Rank) {
	if !r.Valid() || (k.rankKnown && k.rank == r) {
		return
	}
	k.noRank[r-deck.MinRank] = true
	if k.rankKnown {
		return
	}
	if only, ok := k.singleRank(); ok {
		k.KnowRank(only)
	}
}

// EliminateCard removes an exhausted identity from consideration. The
// representation only tracks suits and ranks separately, so c is excluded
// when one of its dimensions is already known.
func (k *Card) EliminateCard(c deck.Card) {
	switch {
	case k.rankKnown && !k.suitKnown && k.rank == c.Rank:
		k.EliminateSuit(c.Suit)
	case k.suitKnown && !k.rankKnown && k.suit == c.Suit:
		k.EliminateRank(c.Rank)
	}
}

// SuitEliminated reports whether s has been ruled out.
func (k *Card) SuitEliminated(s deck.Suit) bool {
	return s.Valid() && k.noSuit[s]
}

// RankEliminated reports whether r has been ruled out.
func (k *Card) RankEliminated(r deck.Rank) bool {
	return r.Valid() && k.noRank[r-deck.MinRank]
}

// Suits returns the candidate suits in code order.
func (k *Card) Suits() []deck.Suit {
	if k.suitKnown {
		if k.noSuit[k.suit] {
			return nil
		}
		return []deck.Suit{k.suit}
	}
	out := make([]deck.Suit, 0, deck.NumSuits)
	for _, s := range deck.Suits {
		if !k.noSuit[s] {
			out = append(out, s)
		}
	}
	return out
}

// Ranks returns the candidate ranks in ascending order.
func (k *Card) Ranks() []deck.Rank {
	if k.rankKnown {
		if k.noRank[k.rank-deck.MinRank] {
			return nil
		}
		return []deck.Rank{k.rank}
	}
	out := make([]deck.Rank, 0, deck.NumRanks)
	for r := deck.MinRank; r <= deck.MaxRank; r++ {
		if !k.noRank[r-deck.MinRank] {
			out = append(out, r)
		}
	}
	return out
}

// Candidates returns the cross product of candidate suits and ranks.
func (k *Card) Candidates() []deck.Card {
	suits, ranks := k.Suits(), k.Ranks()
	out := make([]deck.Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			out = append(out, deck.NewCard(s, r))
		}
	}
	return out
}

// Validate returns ErrNoCandidates when no identity is left.
func (k *Card) Validate() error {
	if len(k.Suits()) == 0 || len(k.Ranks()) == 0 {
		return fmt.Errorf("%s: %w", k, ErrNoCandidates)
	}
	return nil
}

// IsDefinitelyPlayable is true when the rank is known and every candidate
// suit would accept a card of that rank next.
func (k *Card) IsDefinitelyPlayable(t Tableau) bool {
	if !k.rankKnown {
		return false
	}
	suits := k.Suits()
	if len(suits) == 0 || len(k.Ranks()) == 0 {
		return false
	}
	for _, s := range suits {
		if t.Height(s)+1 != int(k.rank) {
			return false
		}
	}
	return true
}

// IsDiscardable is true when every candidate is already on its pile.
func (k *Card) IsDiscardable(t Tableau) bool {
	candidates := k.Candidates()
	if len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if int(c.Rank) > t.Height(c.Suit) {
			return false
		}
	}
	return true
}

// ProbablyPlayable returns the share of remaining copies among the
// candidates that would be legal plays. Zero when no candidate has an
// unseen copy.
func (k *Card) ProbablyPlayable(counts *Counts, t Tableau) float64 {
	total, playable := 0, 0
	for _, c := range k.Candidates() {
		n := counts.Remaining(c)
		total += n
		if t.Height(c.Suit)+1 == int(c.Rank) {
			playable += n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(playable) / float64(total)
}

// String renders the belief compactly, e.g. "R? -Y,G" or "?1 -3*".
// A trailing asterisk marks a hinted slot.
func (k *Card) String() string {
	var b strings.Builder
	if k.suitKnown {
		b.WriteString(k.suit.Letter())
	} else {
		b.WriteByte('?')
	}
	if k.rankKnown {
		b.WriteString(k.rank.String())
	} else {
		b.WriteByte('?')
	}

	var out []string
	for _, s := range deck.Suits {
		if k.noSuit[s] && !(k.suitKnown && k.suit == s) {
			out = append(out, s.Letter())
		}
	}
	for r := deck.MinRank; r <= deck.MaxRank; r++ {
		if k.noRank[r-deck.MinRank] && !(k.rankKnown && k.rank == r) {
			out = append(out, r.String())
		}
	}
	if len(out) > 0 {
		b.WriteString(" -")
		b.WriteString(strings.Join(out, ","))
	}
	if k.hinted {
		b.WriteByte('*')
	}
	return b.String()
}

func (k *Card) singleSuit() (deck.Suit, bool) {
	var found deck.Suit
	n := 0
	for _, s := range deck.Suits {
		if !k.noSuit[s] {
			found = s
			n++
		}
	}
	return found, n == 1
}

func (k *Card) singleRank() (deck.Rank, bool) {
	var found deck.Rank
	n := 0
	for r := deck.MinRank; r <= deck.MaxRank; r++ {
		if !k.noRank[r-deck.MinRank] {
			found = r
			n++
		}
	}
	return found, n == 1
}
