package bot

import "fmt"

// Options selects which parts of the rule cascade a Player uses. The zero
// value is the plain variant: no exhaustion tracking, no hint inference and
// no probabilistic plays.
type Options struct {
	// ExhaustionTracking rules card identities out of uncertain slots once
	// every copy has been seen.
	ExhaustionTracking bool

	// SuitInference narrows a singly hinted card to the identities that are
	// playable right now.
	SuitInference bool

	// ProbabilisticPlay enables the gamble rule.
	ProbabilisticPlay bool

	// PlayThreshold is the minimum playable probability for a gamble.
	PlayThreshold float64

	// MinFusesForGamble is the number of fuses that must remain before a
	// gamble is taken.
	MinFusesForGamble int
}

// DefaultOptions returns the full ruleset.
func DefaultOptions() Options {
	return Options{
		ExhaustionTracking: true,
		SuitInference:      true,
		ProbabilisticPlay:  true,
		PlayThreshold:      0.5,
		MinFusesForGamble:  2,
	}
}

// SimpleOptions returns the reduced ruleset that only acts on hints.
func SimpleOptions() Options {
	return Options{
		SuitInference:     true,
		PlayThreshold:     0.5,
		MinFusesForGamble: 2,
	}
}

// Validate checks the thresholds are in range.
func (o Options) Validate() error {
	if o.PlayThreshold <= 0 || o.PlayThreshold > 1 {
		return fmt.Errorf("play threshold must be in (0, 1], got %g", o.PlayThreshold)
	}
	if o.MinFusesForGamble < 1 {
		return fmt.Errorf("min fuses for gamble must be at least 1, got %d", o.MinFusesForGamble)
	}
	return nil
}
