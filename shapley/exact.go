// Package shapley - exact Shapley computation by coalition enumeration.
package shapley

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/attribkit/journey"
)

// Exact computes Shapley values by enumerating every coalition:
//
//	φ_i = Σ_{S ⊆ N\{i}} |S|!·(n−|S|−1)!/n! · (v(S∪{i}) − v(S))
//
// Exponential in n, so it is gated at ExactMaxPlayers; beyond that use
// Estimate. Useful as ground truth in tests and for games small enough to
// enumerate anyway.
//
// Contracts:
//   - len(players) ≤ ExactMaxPlayers, otherwise ErrTooManyPlayers.
//   - fn must be pure and finite (ErrInvalidValueFunction otherwise).
//   - len(players) == 0 ⇒ empty result, fn may be nil.
//
// Complexity: Θ(2ⁿ) coalition evaluations, Θ(2ⁿ·n) arithmetic.
func Exact(players []string, fn journey.ValueFunc) (map[string]float64, error) {
	sorted, err := validatePlayers(players)
	if err != nil {
		return nil, err
	}
	n := len(sorted)
	if n == 0 {
		return map[string]float64{}, nil
	}
	if n > ExactMaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if fn == nil {
		return nil, ErrNilValueFunction
	}

	// Permutation-count weights: w[s] = s!·(n−s−1)!/n! for |S| = s.
	weights := make([]float64, n)
	fact := make([]float64, n+1)
	fact[0] = 1
	for i := 1; i <= n; i++ {
		fact[i] = fact[i-1] * float64(i)
	}
	for s := 0; s < n; s++ {
		weights[s] = fact[s] * fact[n-s-1] / fact[n]
	}

	// Evaluate v once per subset, indexed by bitmask.
	cache := newValueCache(fn)
	values := make([]float64, 1<<uint(n))
	scratch := make([]string, 0, n)
	for mask := 0; mask < 1<<uint(n); mask++ {
		scratch = scratch[:0]
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				scratch = append(scratch, sorted[i])
			}
		}
		// scratch stays sorted: bits are scanned in canonical player order.
		v, verr := cache.value(scratch)
		if verr != nil {
			return nil, verr
		}
		values[mask] = v
	}

	out := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		bit := 1 << uint(i)
		var phi float64
		for mask := 0; mask < 1<<uint(n); mask++ {
			if mask&bit != 0 {
				continue
			}
			size := bits.OnesCount(uint(mask))
			phi += weights[size] * (values[mask|bit] - values[mask])
		}
		out[sorted[i]] = phi
	}

	return out, nil
}

// SortedCoalition returns a sorted copy of channels — the canonical form
// expected by coalition caches and axiom checks. Exposed for callers that
// construct coalitions by hand.
func SortedCoalition(channels []string) []string {
	out := make([]string, len(channels))
	copy(out, channels)
	sort.Strings(out)

	return out
}
