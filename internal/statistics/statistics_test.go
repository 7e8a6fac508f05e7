package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Zero(t, stats.PerfectRate())
	assert.Error(t, stats.Validate())
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Score: 18, Seed: 12345, Turns: 60, Misplays: 1, HintsGiven: 20, Discards: 12})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 18.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 18.0, stats.Median())
	assert.Equal(t, 1, stats.Histogram[18])
	assert.Equal(t, 60, stats.Turns)
	require.NoError(t, stats.Validate())
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []GameResult{
		{Score: 20},
		{Score: 25},
		{Score: 0, Fused: true},
		{Score: 15},
		{Score: 25},
	} {
		stats.Add(r)
	}

	assert.Equal(t, 5, stats.Games)
	assert.InDelta(t, 17.0, stats.Mean(), 1e-9)
	// Deviations: 3, 8, -17, -2, 8 -> squares sum 430, / 4
	assert.InDelta(t, 107.5, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(107.5), stats.StdDev(), 1e-9)
	assert.InDelta(t, math.Sqrt(107.5)/math.Sqrt(5), stats.StdError(), 1e-9)
	assert.Equal(t, 20.0, stats.Median())
	assert.Equal(t, 0.0, stats.Percentile(0))
	assert.Equal(t, 25.0, stats.Percentile(1))
	assert.Equal(t, 15.0, stats.Percentile(0.25))

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
	// t(0.975, df=4) = 2.776
	assert.InDelta(t, 2.776*stats.StdError(), high-stats.Mean(), 1e-2)

	assert.Equal(t, 2, stats.Perfect)
	assert.Equal(t, 1, stats.Fused)
	assert.InDelta(t, 0.4, stats.PerfectRate(), 1e-9)
	assert.InDelta(t, 0.2, stats.FusedRate(), 1e-9)
	require.NoError(t, stats.Validate())
}

func TestStatistics_EvenMedian(t *testing.T) {
	stats := &Statistics{}
	for _, s := range []int{10, 12, 14, 20} {
		stats.Add(GameResult{Score: s})
	}
	assert.Equal(t, 13.0, stats.Median())
}

func TestStatistics_Merge(t *testing.T) {
	a, b := &Statistics{}, &Statistics{}
	a.Add(GameResult{Score: 10, Turns: 50})
	b.Add(GameResult{Score: 20, Turns: 40})
	b.Add(GameResult{Score: 0, Fused: true, Turns: 10})

	a.Merge(b)
	assert.Equal(t, 3, a.Games)
	assert.InDelta(t, 10.0, a.Mean(), 1e-9)
	assert.Equal(t, 100, a.Turns)
	assert.Equal(t, 1, a.Fused)
	assert.Len(t, a.Values, 3)
	require.NoError(t, a.Validate())
}

func TestStatistics_Validate(t *testing.T) {
	t.Run("score out of range", func(t *testing.T) {
		stats := &Statistics{}
		stats.Add(GameResult{Score: 26})
		assert.Error(t, stats.Validate())
	})

	t.Run("fused with a score", func(t *testing.T) {
		stats := &Statistics{}
		stats.Add(GameResult{Score: 5, Fused: true})
		assert.Error(t, stats.Validate())
	})

	t.Run("values out of sync", func(t *testing.T) {
		stats := &Statistics{}
		stats.Add(GameResult{Score: 5})
		stats.Values = nil
		assert.Error(t, stats.Validate())
	})
}
