package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lox/hanabot/internal/bot"
	"github.com/lox/hanabot/internal/deck"
	"github.com/lox/hanabot/internal/game"
	"github.com/lox/hanabot/internal/knowledge"
	"github.com/lox/hanabot/internal/simulator"
	"github.com/lox/hanabot/internal/statistics"
	"github.com/stretchr/testify/assert"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestMain(m *testing.M) {
	SetColor(false)
	m.Run()
}

func TestCardAndHand(t *testing.T) {
	assert.Equal(t, "R3", plain(Card(deck.NewCard(deck.Red, 3))))
	assert.Equal(t, "??", plain(Card(deck.Card{})))

	h := game.Hand(deck.MustParseCards("R1 B2 W5"))
	assert.Equal(t, "R1 B2 W5", plain(Hand(h)))
}

func TestBoard(t *testing.T) {
	b := game.Board{Piles: [deck.NumSuits]int{3, 0, 1, 0, 5}, Hints: 4, MaxHints: 8, Fuses: 2}
	assert.Equal(t, "R3 Y0 G1 B0 W5  hints 4/8  fuses 2", plain(Board(b)))
}

func TestKnowledge(t *testing.T) {
	s := knowledge.NewSlots(2)
	s.At(0).KnowSuit(deck.Green)
	assert.Equal(t, "[G? ??]", plain(Knowledge(s)))
}

func TestResult(t *testing.T) {
	assert.Contains(t, plain(Result(&game.Result{Score: 0, Turns: 12, Fused: true})), "Fused out")
	assert.Contains(t, plain(Result(&game.Result{Score: 21, Turns: 70})), "Score 21/25")
}

func TestSummary(t *testing.T) {
	stats := &statistics.Statistics{}
	for _, score := range []int{20, 22, 22, 25, 0} {
		stats.Add(statistics.GameResult{Score: score, Fused: score == 0, Turns: 60})
	}
	var rules [bot.NumRules]int
	rules[bot.RuleChop] = 30
	rules[bot.RuleNextPlay] = 10

	out := plain(Summary("Self-play", &simulator.Report{Stats: stats, Rules: rules, Elapsed: 1500 * time.Millisecond}))

	assert.Contains(t, out, "Self-play")
	assert.Contains(t, out, "5 in 1.5s")
	assert.Contains(t, out, "Mean")
	assert.Contains(t, out, "Perfect")
	assert.Contains(t, out, "chop")
	assert.Contains(t, out, "75.0%")
	assert.NotContains(t, out, "gamble")

	// Histogram: one bar per distinct score, the peak at full width.
	var bars []string
	for _, line := range strings.Split(Histogram(stats), "\n") {
		if strings.Contains(line, "█") {
			bars = append(bars, plain(line))
		}
	}
	assert.Len(t, bars, 4)
	assert.Contains(t, out, strings.Repeat("█", barWidth))
}

func TestEmptyHistogram(t *testing.T) {
	assert.Empty(t, Histogram(&statistics.Statistics{}))
	assert.Empty(t, Rules([bot.NumRules]int{}))
}
