// Package statistics aggregates the results of many games.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MaxScore is the score of a perfect game.
const MaxScore = 25

// GameResult is the outcome of a single game.
type GameResult struct {
	Score      int   // Sum of pile heights, 0 if the fuses ran out
	Seed       int64 // Deck seed (for replay)
	Turns      int
	Misplays   int
	HintsGiven int
	Discards   int
	Fused      bool // Did the team burn every fuse?
}

// Statistics tracks score statistics across a batch of games
type Statistics struct {
	Games  int
	Sum    float64
	Values []float64 // Every score, for variance and percentiles

	Histogram [MaxScore + 1]int
	Perfect   int // Games scoring MaxScore
	Fused     int // Games lost to fuses

	Turns      int
	Misplays   int
	HintsGiven int
	Discards   int
}

// Add incorporates a game result into the statistics
func (s *Statistics) Add(r GameResult) {
	score := float64(r.Score)
	s.Games++
	s.Sum += score
	s.Values = append(s.Values, score)

	if r.Score >= 0 && r.Score <= MaxScore {
		s.Histogram[r.Score]++
	}
	if r.Score == MaxScore {
		s.Perfect++
	}
	if r.Fused {
		s.Fused++
	}

	s.Turns += r.Turns
	s.Misplays += r.Misplays
	s.HintsGiven += r.HintsGiven
	s.Discards += r.Discards
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Sum += other.Sum
	s.Values = append(s.Values, other.Values...)
	for i, n := range other.Histogram {
		s.Histogram[i] += n
	}
	s.Perfect += other.Perfect
	s.Fused += other.Fused
	s.Turns += other.Turns
	s.Misplays += other.Misplays
	s.HintsGiven += other.HintsGiven
	s.Discards += other.Discards
}

// Mean returns the mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean,
// using Student's t with Games-1 degrees of freedom.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	if s.Games < 2 {
		return mean, mean
	}
	tDist := distuv.StudentsT{
		Nu:    float64(s.Games - 1),
		Mu:    0,
		Sigma: 1,
	}
	margin := tDist.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PerfectRate returns the share of games with a perfect score.
func (s *Statistics) PerfectRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Perfect) / float64(s.Games)
}

// FusedRate returns the share of games lost to fuses.
func (s *Statistics) FusedRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Fused) / float64(s.Games)
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	total := 0
	for _, n := range s.Histogram {
		total += n
	}
	if total != s.Games {
		return fmt.Errorf("histogram total (%d) does not match games count (%d); scores outside 0-%d",
			total, s.Games, MaxScore)
	}

	// A fused game scores zero, so there can be no more fused games than zeros.
	if s.Fused > s.Histogram[0] {
		return fmt.Errorf("fused games (%d) exceed zero scores (%d)", s.Fused, s.Histogram[0])
	}
	if s.Perfect != s.Histogram[MaxScore] {
		return fmt.Errorf("perfect games (%d) do not match histogram (%d)", s.Perfect, s.Histogram[MaxScore])
	}
	return nil
}
