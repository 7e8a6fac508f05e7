package knowledge

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lox/hanabot/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNumberHintScenario(t *testing.T) {
	// Hand R1 R1 B2 G3 Y1 on an empty board receives "ones at 0, 1 and 4".
	s := NewSlots(5)
	out, err := ApplyNumberHint(&s, 1, []int{0, 1, 4}, piles{}, HintOptions{Inference: true})
	require.NoError(t, err)

	for _, i := range []int{0, 1, 4} {
		r, ok := s.At(i).Rank()
		require.True(t, ok, "slot %d", i)
		assert.Equal(t, deck.Rank(1), r)
		assert.True(t, s.At(i).Hinted())
	}
	for _, i := range []int{2, 3} {
		assert.True(t, s.At(i).RankEliminated(1), "slot %d", i)
		assert.False(t, s.At(i).Hinted())
	}
	assert.Equal(t, HintOutcome{NextPlay: 0, Signal: true}, out)
}

func TestApplyColorHint(t *testing.T) {
	s := NewSlots(4)
	out, err := ApplyColorHint(&s, deck.Blue, []int{3, 2}, piles{}, HintOptions{})
	require.NoError(t, err)

	for _, i := range []int{2, 3} {
		suit, ok := s.At(i).Suit()
		require.True(t, ok)
		assert.Equal(t, deck.Blue, suit)
		assert.True(t, s.At(i).Hinted())
	}
	assert.True(t, s.At(0).SuitEliminated(deck.Blue))
	assert.Equal(t, 2, out.NextPlay)
	assert.True(t, out.Signal)
}

func TestApplyHintRejectsBadTargets(t *testing.T) {
	s := NewSlots(3)
	_, err := ApplyNumberHint(&s, 2, nil, piles{}, HintOptions{})
	assert.Error(t, err)

	_, err = ApplyColorHint(&s, deck.Red, []int{3}, piles{}, HintOptions{})
	assert.ErrorIs(t, err, ErrSlotRange)

	_, err = ApplyNumberHint(&s, 6, []int{0}, piles{}, HintOptions{})
	assert.Error(t, err)
}

func TestNumberHintSuitInference(t *testing.T) {
	board := piles{1, 0, 1, 2, 1}

	t.Run("single target keeps suits one below", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 2, []int{3}, board, HintOptions{Inference: true})
		require.NoError(t, err)
		assert.Equal(t, []deck.Suit{deck.Red, deck.Green, deck.White}, s.At(3).Suits())
	})

	t.Run("disabled", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 2, []int{3}, board, HintOptions{})
		require.NoError(t, err)
		assert.Len(t, s.At(3).Suits(), deck.NumSuits)
	})

	t.Run("multiple targets", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 2, []int{1, 3}, board, HintOptions{Inference: true})
		require.NoError(t, err)
		assert.Len(t, s.At(3).Suits(), deck.NumSuits)
	})

	t.Run("fives are never inferred", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 5, []int{0}, piles{4, 0, 0, 0, 0}, HintOptions{Inference: true})
		require.NoError(t, err)
		assert.Len(t, s.At(0).Suits(), deck.NumSuits)
	})

	t.Run("single fitting suit becomes known", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 3, []int{0}, board, HintOptions{Inference: true})
		require.NoError(t, err)
		suit, ok := s.At(0).Suit()
		require.True(t, ok)
		assert.Equal(t, deck.Blue, suit)
		assert.True(t, s.At(0).IsDefinitelyPlayable(board))
	})

	t.Run("no fitting suit leaves candidates alone", func(t *testing.T) {
		s := NewSlots(5)
		_, err := ApplyNumberHint(&s, 4, []int{0}, board, HintOptions{Inference: true})
		require.NoError(t, err)
		assert.Len(t, s.At(0).Suits(), deck.NumSuits)
		assert.NoError(t, s.Validate())
	})

	t.Run("known suit untouched", func(t *testing.T) {
		s := NewSlots(5)
		s.At(0).KnowSuit(deck.Yellow)
		_, err := ApplyNumberHint(&s, 2, []int{0}, board, HintOptions{Inference: true})
		require.NoError(t, err)
		suit, _ := s.At(0).Suit()
		assert.Equal(t, deck.Yellow, suit)
		assert.NoError(t, s.Validate())
	})
}

func TestColorHintRankInference(t *testing.T) {
	s := NewSlots(5)
	_, err := ApplyColorHint(&s, deck.Green, []int{2}, piles{0, 0, 3, 0, 0}, HintOptions{Inference: true})
	require.NoError(t, err)
	r, ok := s.At(2).Rank()
	require.True(t, ok)
	assert.Equal(t, deck.Rank(4), r)

	full := NewSlots(5)
	_, err = ApplyColorHint(&full, deck.Green, []int{2}, piles{0, 0, 5, 0, 0}, HintOptions{Inference: true})
	require.NoError(t, err)
	_, ok = full.At(2).Rank()
	assert.False(t, ok, "a finished pile implies nothing")
}

func TestWarningHint(t *testing.T) {
	board := piles{1, 0, 0, 0, 0}
	s := NewSlots(5)
	_, err := ApplyNumberHint(&s, 1, []int{2}, board, HintOptions{})
	require.NoError(t, err)

	require.True(t, IsWarning(&s, deck.Red, []int{2}, board))
	assert.False(t, IsWarning(&s, deck.Yellow, []int{2}, board), "a yellow 1 is playable")
	assert.False(t, IsWarning(&s, deck.Red, []int{3}, board), "slot 3 is not a known 1")

	out, err := ApplyColorHint(&s, deck.Red, []int{2}, board, HintOptions{Inference: true, Warning: true})
	require.NoError(t, err)
	assert.False(t, out.Signal)
	assert.True(t, s.At(2).IsDiscardable(board))

	// Once the suit is known the 1 needs no further warning.
	assert.False(t, IsWarning(&s, deck.Red, []int{2}, board))
}

// Every targeted slot learns the hinted value and every other slot rules it
// out, whatever the starting beliefs.
func TestHintPostconditions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.IntN(Capacity)
		s := NewSlots(n)
		var targets []int
		for i := 0; i < n; i++ {
			if rng.IntN(2) == 0 {
				targets = append(targets, i)
			}
		}
		if len(targets) == 0 {
			targets = []int{rng.IntN(n)}
		}

		if iter%2 == 0 {
			r := deck.Rank(1 + rng.IntN(deck.NumRanks))
			out, err := ApplyNumberHint(&s, r, targets, piles{}, HintOptions{})
			require.NoError(t, err)
			assert.Equal(t, slices.Min(targets), out.NextPlay)
			for i := 0; i < n; i++ {
				if slices.Contains(targets, i) {
					got, ok := s.At(i).Rank()
					assert.True(t, ok)
					assert.Equal(t, r, got)
				} else {
					assert.True(t, s.At(i).RankEliminated(r))
				}
			}
		} else {
			c := deck.Suit(rng.IntN(deck.NumSuits))
			out, err := ApplyColorHint(&s, c, targets, piles{}, HintOptions{})
			require.NoError(t, err)
			assert.Equal(t, slices.Min(targets), out.NextPlay)
			for i := 0; i < n; i++ {
				if slices.Contains(targets, i) {
					got, ok := s.At(i).Suit()
					assert.True(t, ok)
					assert.Equal(t, c, got)
				} else {
					assert.True(t, s.At(i).SuitEliminated(c))
				}
			}
		}
		require.NoError(t, s.Validate())
	}
}
