// Package hybrid - convex combination of attribution vectors.
package hybrid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Combine.
var (
	// ErrNoInput indicates that both input vectors are empty; there is no
	// channel set to attribute over.
	ErrNoInput = errors.New("hybrid: both attribution vectors are empty")

	// ErrBadAlpha indicates a blend weight outside [0,1].
	ErrBadAlpha = errors.New("hybrid: alpha must lie in [0,1]")

	// ErrNonFinite indicates a NaN/±Inf weight in an input vector.
	ErrNonFinite = errors.New("hybrid: non-finite attribution weight")
)

// DefaultAlpha is the even blend used when no weighting is configured.
const DefaultAlpha = 0.5

// normTol treats vectors whose weight sum vanishes within floating-point
// noise as all-zero (they normalize to zeros, not to a division blow-up).
const normTol = 1e-12

// Options configures Combine.
//
// Alpha — Shapley weight in the blend; Markov receives 1−Alpha.
type Options struct {
	Alpha float64
}

// Option is a functional option for Combine.
type Option func(*Options)

// DefaultOptions returns the even-blend configuration.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha}
}

// WithAlpha sets the Shapley-side blend weight (must lie in [0,1]).
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// VarianceAlpha derives a blend weight from estimation variances: each side
// is weighted by its inverse variance, so the lower-variance method
// dominates. Non-positive or non-finite variances fall back to the even
// blend (a method without a variance estimate earns no extra trust).
func VarianceAlpha(shapleyVariance, markovVariance float64) float64 {
	if !(shapleyVariance > 0) || !(markovVariance > 0) ||
		math.IsInf(shapleyVariance, 0) || math.IsInf(markovVariance, 0) {
		return DefaultAlpha
	}

	return markovVariance / (shapleyVariance + markovVariance)
}

// Combine blends two attribution vectors over the union of their channels.
//
// Each input is first normalized to proportions (weights divided by their
// sum; an all-zero or zero-sum side normalizes to zeros). The blend is then
// the α-weighted convex combination per channel. At the boundaries the
// result equals the corresponding normalized input exactly.
//
// Contracts:
//   - at least one input must be non-empty (ErrNoInput);
//   - all weights must be finite (ErrNonFinite);
//   - 0 ≤ α ≤ 1 (ErrBadAlpha).
//
// Complexity: O(|shapley| + |markov|).
func Combine(shapley, markov map[string]float64, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Alpha < 0 || cfg.Alpha > 1 || math.IsNaN(cfg.Alpha) {
		return nil, ErrBadAlpha
	}
	if len(shapley) == 0 && len(markov) == 0 {
		return nil, ErrNoInput
	}

	ns, err := normalize(shapley)
	if err != nil {
		return nil, err
	}
	nm, err := normalize(markov)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(ns)+len(nm))
	for ch, v := range ns {
		out[ch] = cfg.Alpha * v
	}
	for ch, v := range nm {
		out[ch] += (1 - cfg.Alpha) * v
	}

	return out, nil
}

// normalize scales a vector to proportions of its weight sum.
func normalize(vec map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(vec))
	var sum float64
	for ch, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("channel %q: %w", ch, ErrNonFinite)
		}
		sum += v
	}
	if math.Abs(sum) < normTol {
		for ch := range vec {
			out[ch] = 0
		}

		return out, nil
	}
	for ch, v := range vec {
		out[ch] = v / sum
	}

	return out, nil
}
