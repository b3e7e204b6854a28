// Package privacy - the Laplace mechanism.
package privacy

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// matching the seed policy used across attribkit.
const defaultRNGSeed int64 = 1

// Mechanism draws calibrated Laplace noise and tracks the cumulative
// privacy budget across releases. Safe for concurrent use: the noise
// stream and the ledger advance under one mutex, so concurrent releases
// serialize (spend order is then scheduling-dependent, totals are not).
type Mechanism struct {
	mu     sync.Mutex
	rng    *rand.Rand
	budget *Budget
}

// NewMechanism builds a mechanism with a seeded noise stream and a fresh
// budget ledger.
//
// Contracts: a ceiling, when supplied, must be positive (ErrInvalidCeiling) —
// the same rule NewBudget enforces for standalone ledgers.
func NewMechanism(opts ...Option) (*Mechanism, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ceiling < 0 || math.IsNaN(cfg.Ceiling) || math.IsInf(cfg.Ceiling, 0) {
		return nil, ErrInvalidCeiling
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return &Mechanism{
		rng:    rand.New(rand.NewSource(seed)),
		budget: newBudget(cfg.Ceiling),
	}, nil
}

// Budget returns the mechanism's ledger (shared, live view).
func (m *Mechanism) Budget() *Budget { return m.budget }

// Privatize releases vec under ε-differential privacy: independent
// Laplace(0, Δf/ε) noise is added to each weight, and ε is charged to the
// budget ledger. The returned exceeded flag warns when the cumulative
// spend passed the configured ceiling — the release itself still happens.
//
// The noisy weights are returned exactly as drawn: no clipping to zero, no
// renormalization. Post-processing that re-biases the vector would void
// the stated expected-L1 bound k·Δf/ε.
//
// Contracts:
//   - ε > 0 (ErrInvalidEpsilon), Δf > 0 (ErrInvalidSensitivity);
//   - input weights must be finite (ErrNonFiniteWeight);
//   - a non-finite noised weight fails with ErrNumericOverflow and charges
//     nothing (no output, no spend — failed releases reveal nothing).
//
// Complexity: O(k) for k weights.
func (m *Mechanism) Privatize(vec map[string]float64, epsilon, sensitivity float64) (map[string]float64, bool, error) {
	if err := validEpsilon(epsilon); err != nil {
		return nil, false, err
	}
	if !(sensitivity > 0) || math.IsInf(sensitivity, 0) {
		return nil, false, fmt.Errorf("sensitivity=%v: %w", sensitivity, ErrInvalidSensitivity)
	}

	scale := sensitivity / epsilon

	m.mu.Lock()
	defer m.mu.Unlock()

	// Draw noise in sorted channel order: map iteration order is randomized,
	// and a fixed seed must reproduce the release channel-for-channel.
	channels := make([]string, 0, len(vec))
	for ch := range vec {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	out := make(map[string]float64, len(vec))
	for _, ch := range channels {
		w := vec[ch]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, false, fmt.Errorf("channel %q: %w", ch, ErrNonFiniteWeight)
		}
		noisy := w + laplace(m.rng, scale)
		if math.IsNaN(noisy) || math.IsInf(noisy, 0) {
			return nil, false, fmt.Errorf("channel %q: %w", ch, ErrNumericOverflow)
		}
		out[ch] = noisy
	}

	exceeded := m.budget.spend(epsilon)

	return out, exceeded, nil
}

// laplace draws one Laplace(0, scale) variate by inverse-CDF sampling:
// u ~ Uniform(−½, ½), x = −scale·sgn(u)·ln(1−2|u|).
//
// Float64 returns values in [0,1); 0 is rejected so 1−2|u| stays strictly
// positive and the variate finite.
func laplace(rng *rand.Rand, scale float64) float64 {
	var f float64
	for f == 0 {
		f = rng.Float64()
	}
	u := f - 0.5
	if u < 0 {
		return scale * math.Log(1+2*u) // sgn(u) = −1 flips the sign
	}

	return -scale * math.Log(1-2*u)
}
