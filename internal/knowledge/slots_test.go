package knowledge

import (
	"testing"

	"github.com/lox/hanabot/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelled(ranks ...deck.Rank) Slots {
	s := NewSlots(len(ranks))
	for i, r := range ranks {
		s.At(i).KnowRank(r)
	}
	return s
}

func ranksOf(s *Slots) []deck.Rank {
	out := make([]deck.Rank, s.Len())
	for i := range out {
		r, _ := s.At(i).Rank()
		out[i] = r
	}
	return out
}

func TestSlotsRemoveShiftsLeft(t *testing.T) {
	s := labelled(1, 2, 3, 4, 5)
	require.NoError(t, s.Remove(1))
	assert.Equal(t, []deck.Rank{1, 3, 4, 5}, ranksOf(&s))
	require.ErrorIs(t, s.Remove(4), ErrSlotRange)
}

func TestSlotsInsertShiftsRight(t *testing.T) {
	s := labelled(1, 2, 3, 4)
	var k Card
	k.KnowRank(5)
	require.NoError(t, s.Insert(0, k))
	assert.Equal(t, []deck.Rank{5, 1, 2, 3, 4}, ranksOf(&s))
	require.ErrorIs(t, s.Insert(0, Card{}), ErrSlotRange, "hand is full")
}

func TestSlotsReplace(t *testing.T) {
	s := labelled(1, 2, 3, 4, 5)
	require.NoError(t, s.Replace(3, 0, true))
	assert.Equal(t, 5, s.Len())
	_, known := s.At(0).Rank()
	assert.False(t, known, "drawn slot starts empty")
	assert.Equal(t, []deck.Rank{0, 1, 2, 3, 5}, ranksOf(&s))

	require.NoError(t, s.Replace(4, 0, false))
	assert.Equal(t, 4, s.Len())
}

func TestSlotsEliminateCardAndValidate(t *testing.T) {
	s := labelled(5, 4)
	s.EliminateCard(deck.NewCard(deck.Red, 5))
	assert.True(t, s.At(0).SuitEliminated(deck.Red))
	assert.False(t, s.At(1).SuitEliminated(deck.Red))
	assert.NoError(t, s.Validate())
	assert.Equal(t, "[?5 -R ?4]", s.String())
}
