package game

import (
	"context"
	"errors"
	"testing"

	"github.com/lox/hanabot/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedEngine(t *testing.T, rules Rules, cards string, p0, p1 []string) (*Engine, *scriptedAgent, *scriptedAgent) {
	t.Helper()
	a := &scriptedAgent{script: p0}
	b := &scriptedAgent{script: p1}
	return NewEngine(rules, scriptedDeck(cards), [2]Agent{a, b}, testLogger()), a, b
}

func TestEngineDealsInOrder(t *testing.T) {
	e, a, b := newScriptedEngine(t, DefaultRules(),
		"R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1",
		[]string{"DISCARD 0 0"}, []string{"DISCARD 0 0"})

	_, err := e.Play(context.Background())
	require.NoError(t, err)

	// The deck is dealt out, so each player gets exactly one turn.
	assert.Equal(t, "R2 R3 R4 R5", b.partner.String())
	assert.Equal(t, "B1 G1 G1 Y1", a.partner.String())
}

func TestEnginePlaysToCompletion(t *testing.T) {
	e, a, b := newScriptedEngine(t, DefaultRules(),
		"R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1 Y2 Y3 Y4 Y5 G2",
		[]string{"PLAY 0 0", "PLAY 1 0", "PLAY 2 0", "PLAY 3 0", "PLAY 4 0", "DISCARD 0 0"},
		[]string{"NUMBERHINT 5", "NUMBERHINT 5", "NUMBERHINT 5", "NUMBERHINT 5", "DISCARD 0 0"})

	res, err := e.Play(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 11, res.Turns)
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 5, res.Board.Piles[deck.Red])
	assert.Equal(t, 0, res.Misplays)
	assert.Equal(t, 4, res.HintsGiven)
	assert.Equal(t, 2, res.Discards)
	assert.False(t, res.Fused)
	// 8 - 4 hints, +1 for completing red, +2 for the discards.
	assert.Equal(t, 7, res.Board.Hints)
	assert.Equal(t, "PLAY 0 0", res.Actions[0])
	assert.Equal(t, "NUMBERHINT 5", res.Actions[1])
	assert.Len(t, res.Deck, 15)

	require.Len(t, b.plays, 5)
	last := b.plays[4]
	assert.Equal(t, deck.NewCard(deck.Red, 5), last.Card)
	assert.True(t, last.Legal)
	assert.True(t, last.Drew)
	assert.Equal(t, deck.NewCard(deck.Green, 2), last.Draw)
	assert.Equal(t, "G2 Y5 Y4 Y3 Y2", last.Hand.String())

	require.Len(t, a.hints, 4)
	assert.Equal(t, []int{0, 4}, a.hints[3].Indices)
	assert.Equal(t, deck.Rank(5), a.hints[3].Rank)
	assert.Equal(t, 6, a.own)
}

func TestEngineFusesOut(t *testing.T) {
	e, _, _ := newScriptedEngine(t, DefaultRules(),
		"Y2 Y2 Y3 Y3 Y4 Y4 G2 G2 G3 G3 B2 B3 B4",
		[]string{"PLAY 0 0", "PLAY 0 0"},
		[]string{"PLAY 0 0"})

	res, err := e.Play(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Fused)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 3, res.Misplays)
	assert.Equal(t, 3, res.Turns)
	assert.Equal(t, 0, res.Board.Fuses)
}

func TestEngineFinalRound(t *testing.T) {
	e, a, b := newScriptedEngine(t, DefaultRules(),
		"R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1 W1 W2",
		[]string{"DISCARD 0 0", "DISCARD 0 0"},
		[]string{"DISCARD 0 0", "DISCARD 0 0"})

	res, err := e.Play(context.Background())
	require.NoError(t, err)

	// The second turn empties the deck, then each player gets one more turn.
	assert.Equal(t, 4, res.Turns)
	assert.Equal(t, 4, res.Discards)
	assert.Equal(t, 8, res.Board.Hints, "refunds are capped")
	assert.Len(t, e.Hand(0), 4)
	assert.Len(t, e.Hand(1), 4)

	require.Len(t, b.discards, 2)
	assert.True(t, b.discards[0].Drew)
	assert.False(t, b.discards[1].Drew)
	require.Len(t, a.discards, 2)
	assert.True(t, a.discards[0].Drew)
	assert.Equal(t, deck.NewCard(deck.White, 2), a.discards[0].Draw)
}

func TestEngineRejectsInvalidActions(t *testing.T) {
	cards := "R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1 W1 W2"

	tests := []struct {
		name  string
		rules Rules
		p0    []string
		p1    []string
	}{
		{
			name:  "hint matching no card",
			rules: DefaultRules(),
			p0:    []string{"NUMBERHINT 5"},
		},
		{
			name:  "color hint matching no card",
			rules: DefaultRules(),
			p0:    []string{"COLORHINT RED"},
		},
		{
			name:  "no hints remain",
			rules: Rules{MaxHints: 1, Fuses: 3},
			p0:    []string{"NUMBERHINT 1"},
			p1:    []string{"NUMBERHINT 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newScriptedEngine(t, tt.rules, cards, tt.p0, tt.p1)
			_, err := e.Play(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAction), "got %v", err)
		})
	}
}

func TestEngineRejectsIndexOutsideHand(t *testing.T) {
	a := &fixedAgent{action: PlayAction(HandSize, 0)}
	e := NewEngine(DefaultRules(), scriptedDeck("R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1"),
		[2]Agent{a, &scriptedAgent{}}, testLogger())

	_, err := e.Play(context.Background())
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestEngineRejectsBadRules(t *testing.T) {
	e, _, _ := newScriptedEngine(t, Rules{MaxHints: 0, Fuses: 3}, "R1", nil, nil)
	_, err := e.Play(context.Background())
	require.Error(t, err)
}

func TestEngineShortDeck(t *testing.T) {
	e, _, _ := newScriptedEngine(t, DefaultRules(), "R1 R2 R3", nil, nil)
	_, err := e.Play(context.Background())
	require.Error(t, err)
}

func TestEngineHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, _, _ := newScriptedEngine(t, DefaultRules(),
		"R1 R2 R3 R4 R5 B1 B1 G1 G1 Y1 W1 W2", []string{"DISCARD 0 0"}, nil)
	_, err := e.Play(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
