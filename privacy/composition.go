// Package privacy - composition accounting for repeated releases.
//
// Two accounting rules are exposed; which one governs a deployment is the
// caller's decision, never this package's.
package privacy

import (
	"fmt"
	"math"
)

// SimpleComposition returns the basic composition bound for a sequence of
// releases: ε_total = Σ εᵢ. Always valid, often pessimistic.
//
// Contracts: every εᵢ > 0 (ErrInvalidEpsilon); an empty sequence totals 0.
func SimpleComposition(epsilons []float64) (float64, error) {
	var total float64
	for i, eps := range epsilons {
		if err := validEpsilon(eps); err != nil {
			return 0, fmt.Errorf("release %d: %w", i, err)
		}
		total += eps
	}

	return total, nil
}

// AdvancedComposition returns the advanced composition bound for k releases
// at ε each, with slack δ:
//
//	ε_total = ε · √(2k · ln(1/δ))
//
// Tighter than kε for large k; the guarantee degrades gracefully to
// (ε_total, δ)-differential privacy.
//
// Contracts: ε > 0 (ErrInvalidEpsilon), k ≥ 1 (ErrInvalidReleases),
// 0 < δ < 1 (ErrInvalidDelta).
func AdvancedComposition(epsilon float64, k int, delta float64) (float64, error) {
	if err := validEpsilon(epsilon); err != nil {
		return 0, err
	}
	if k < 1 {
		return 0, fmt.Errorf("k=%d: %w", k, ErrInvalidReleases)
	}
	if !(delta > 0) || !(delta < 1) {
		return 0, fmt.Errorf("delta=%v: %w", delta, ErrInvalidDelta)
	}

	return epsilon * math.Sqrt(2*float64(k)*math.Log(1/delta)), nil
}
