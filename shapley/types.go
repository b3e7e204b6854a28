// Package shapley - sentinel errors, configuration and result types.
//
// Design principles:
//   - Strict sentinels: tests match with errors.Is; context is attached via
//     fmt.Errorf("ctx: %w", ErrX) at the detection site.
//   - Deterministic: seed routing to every random source; no time-based
//     randomness anywhere.
//   - No logging, no panics on user input.
package shapley

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors returned by the estimators.
var (
	// ErrNilValueFunction indicates that no value function was supplied for
	// a non-empty player set.
	ErrNilValueFunction = errors.New("shapley: value function is nil")

	// ErrInvalidValueFunction indicates that the value function failed or
	// returned a non-finite value. NaN is never coerced to 0: attribution
	// runs are audited, so a broken game is a fatal input error.
	ErrInvalidValueFunction = errors.New("shapley: invalid value function")

	// ErrDuplicatePlayer indicates a repeated identifier in the player set.
	ErrDuplicatePlayer = errors.New("shapley: duplicate player")

	// ErrEmptyPlayer indicates an empty-string player identifier.
	ErrEmptyPlayer = errors.New("shapley: empty player identifier")

	// ErrBadSampleCount indicates SampleCount < 1.
	ErrBadSampleCount = errors.New("shapley: SampleCount must be positive")

	// ErrBadWorkerCount indicates Workers < 0.
	ErrBadWorkerCount = errors.New("shapley: Workers must be non-negative")

	// ErrTooManyPlayers is returned by Exact when the player set exceeds
	// ExactMaxPlayers (enumeration is Θ(2ⁿ·n)).
	ErrTooManyPlayers = errors.New("shapley: too many players for exact enumeration")

	// ErrNoSamples is returned when the context is canceled before a single
	// permutation completes; there is no valid estimate to degrade to.
	ErrNoSamples = errors.New("shapley: canceled before any permutation completed")
)

const (
	// DefaultSampleCount is the default number of sampled permutations.
	// Standard error decays as O(1/√M); 2000 keeps the efficiency residual
	// well under 5% of v(N) for typical conversion games.
	DefaultSampleCount = 2000

	// ExactMaxPlayers bounds Exact's enumeration (2¹² subsets ≈ 4k calls).
	ExactMaxPlayers = 12
)

// Options configures Estimate.
//
// SampleCount — number of random permutations M (must be ≥ 1).
// Workers     — parallel sampling goroutines; 0 ⇒ runtime.GOMAXPROCS(0).
// Seed        — PRNG seed; 0 ⇒ fixed default stream. Same seed ⇒ same output.
// KeepMarginals — retain per-permutation marginals for diagnostics
// (variance, standard error, convergence trace). Costs O(M·N) memory.
type Options struct {
	SampleCount   int
	Workers       int
	Seed          int64
	KeepMarginals bool
}

// Option is a functional option for Estimate.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: DefaultSampleCount
// permutations, single deterministic worker, marginals retained.
func DefaultOptions() Options {
	return Options{
		SampleCount:   DefaultSampleCount,
		Workers:       1,
		Seed:          0,
		KeepMarginals: true,
	}
}

// WithSampleCount sets the number of sampled permutations.
func WithSampleCount(m int) Option {
	return func(o *Options) { o.SampleCount = m }
}

// WithWorkers sets the parallel worker count (0 ⇒ GOMAXPROCS).
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithSeed fixes the PRNG seed for reproducible runs (0 ⇒ default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithoutMarginals drops per-permutation marginals from the Result;
// Variance/StdErr/Trace then return NaN/nil. Marginals are still buffered
// during sampling (the estimate folds in global permutation order), so this
// trims the Result, not the sampling-time footprint.
func WithoutMarginals() Option {
	return func(o *Options) { o.KeepMarginals = false }
}

// Result holds a Shapley estimate plus its sampling diagnostics.
type Result struct {
	// Values maps each player to its estimated Shapley value. Efficiency:
	// the values sum to v(N) − v(∅) up to O(1/√Samples) sampling error.
	Values map[string]float64

	// Marginals holds each player's per-permutation marginal contributions
	// in sampling order (nil unless Options.KeepMarginals). Bootstrap
	// confidence intervals are computed from these by the caller.
	Marginals map[string][]float64

	// Samples is the number of permutations actually evaluated. It is less
	// than the configured SampleCount only when the context was canceled.
	Samples int

	// Evaluations counts distinct coalition evaluations (cache misses);
	// the cheap companion metric to value-function cost.
	Evaluations int
}

// Variance returns the sample variance of player's marginal contributions,
// or NaN when marginals were not retained or fewer than two samples exist.
func (r *Result) Variance(player string) float64 {
	ms, ok := r.Marginals[player]
	if !ok || len(ms) < 2 {
		return math.NaN()
	}

	var mean float64
	for _, m := range ms {
		mean += m
	}
	mean /= float64(len(ms))

	var acc float64
	for _, m := range ms {
		d := m - mean
		acc += d * d
	}

	return acc / float64(len(ms)-1)
}

// StdErr returns the standard error of player's estimate, √(Var/M).
func (r *Result) StdErr(player string) float64 {
	v := r.Variance(player)
	if math.IsNaN(v) {
		return math.NaN()
	}

	return math.Sqrt(v / float64(len(r.Marginals[player])))
}

// Trace returns the running-mean estimate of player after each sampled
// permutation — the sample-count vs estimate curve consumed by convergence
// plots. Returns nil when marginals were not retained.
func (r *Result) Trace(player string) []float64 {
	ms, ok := r.Marginals[player]
	if !ok {
		return nil
	}
	out := make([]float64, len(ms))
	var acc float64
	for i, m := range ms {
		acc += m
		out[i] = acc / float64(i+1)
	}

	return out
}

// validatePlayers rejects empty and duplicate identifiers and returns a
// defensive sorted copy (canonical player order for deterministic output).
func validatePlayers(players []string) ([]string, error) {
	seen := make(map[string]struct{}, len(players))
	out := make([]string, len(players))
	for i, p := range players {
		if p == "" {
			return nil, ErrEmptyPlayer
		}
		if _, dup := seen[p]; dup {
			return nil, ErrDuplicatePlayer
		}
		seen[p] = struct{}{}
		out[i] = p
	}
	sort.Strings(out)

	return out, nil
}
