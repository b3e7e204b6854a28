// Package privacy - sentinel errors and mechanism configuration.
//
// Design principles:
//   - Strict sentinels; match with errors.Is.
//   - Deterministic: noise streams are seeded; no time-based randomness.
//   - No logging, no panics on user input.
package privacy

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the privacy layer.
var (
	// ErrInvalidEpsilon indicates ε ≤ 0 or non-finite ε. A non-positive
	// budget provides no guarantee to calibrate noise against.
	ErrInvalidEpsilon = errors.New("privacy: epsilon must be positive and finite")

	// ErrInvalidDelta indicates δ outside (0,1) for advanced composition.
	ErrInvalidDelta = errors.New("privacy: delta must lie in (0,1)")

	// ErrInvalidSensitivity indicates Δf ≤ 0 or non-finite Δf.
	ErrInvalidSensitivity = errors.New("privacy: sensitivity must be positive and finite")

	// ErrInvalidReleases indicates a non-positive release count k.
	ErrInvalidReleases = errors.New("privacy: release count must be positive")

	// ErrInvalidCeiling indicates a non-positive budget ceiling.
	ErrInvalidCeiling = errors.New("privacy: budget ceiling must be positive")

	// ErrNonFiniteWeight indicates a NaN/±Inf weight in the input vector.
	ErrNonFiniteWeight = errors.New("privacy: non-finite attribution weight")

	// ErrNumericOverflow indicates that a noised weight degenerated to a
	// non-finite value. Defensive: properly sampled Laplace noise is always
	// finite, so hitting this means a broken input or RNG.
	ErrNumericOverflow = errors.New("privacy: noised weight is non-finite")
)

// Options configures NewMechanism.
//
// Seed    — noise PRNG seed; 0 ⇒ fixed default stream.
// Ceiling — optional cumulative-ε ceiling (0 ⇒ unenforced). Exceeding it
// warns the caller; releases are never blocked, because whether simple or
// advanced composition governs a deployment is the caller's decision.
type Options struct {
	Seed    int64
	Ceiling float64
}

// Option is a functional option for NewMechanism.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: default noise stream,
// no ceiling.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed fixes the noise PRNG seed for reproducible releases.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCeiling sets the cumulative-ε ceiling the budget ledger warns at.
func WithCeiling(ceiling float64) Option {
	return func(o *Options) { o.Ceiling = ceiling }
}

// SensitivityForCount returns the per-record sensitivity Δf = 1/n for an
// attribution vector normalized over n observations.
//
// Documented assumption: 1/n is exact for linearly count-normalized
// vectors; for Markov removal effects and the hybrid blend it is adopted
// from the source methodology without a proof. See the package doc.
func SensitivityForCount(n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrInvalidSensitivity)
	}

	return 1 / float64(n), nil
}

// validEpsilon reports the shared ε precondition.
func validEpsilon(eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return fmt.Errorf("epsilon=%v: %w", eps, ErrInvalidEpsilon)
	}

	return nil
}
