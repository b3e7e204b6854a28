// Package shapley - Monte-Carlo permutation-sampling estimator.
package shapley

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/attribkit/journey"
)

// Estimate approximates the Shapley value of every player under fn by
// permutation sampling.
//
// Algorithm outline:
//  1. Draw M random permutations of the players (M = Options.SampleCount).
//  2. Walk each permutation left to right with a running coalition; the
//     marginal of the player at each step is v(C ∪ {p}) − v(C).
//  3. A player's estimate is the mean of its marginals across permutations.
//
// Every per-permutation marginal sum telescopes to v(N) − v(∅), so the
// estimate satisfies efficiency exactly and per-player variance decays as
// O(1/M).
//
// Contracts:
//   - fn must be pure and finite; failures surface as ErrInvalidValueFunction.
//   - v(∅) should be 0 (journey.ValueFunc contract); Estimate measures all
//     marginals relative to the actual v(∅) either way.
//   - len(players) == 0 ⇒ empty result, no sampling, fn may be nil.
//   - len(players) == 1 ⇒ exact value v({p}) − v(∅), no sampling error.
//   - Canceling ctx stops sampling and returns the valid (higher-variance)
//     estimate over the permutations already completed; cancellation before
//     the first completed permutation yields ErrNoSamples.
//
// Determinism: with a fixed Options.Seed the result is identical across
// runs for any worker count — permutation k is always drawn from the stream
// derived from (seed, k), workers own contiguous index ranges, and marginals
// fold back in global permutation order.
//
// Complexity: O(M·N) cache lookups, O(#distinct coalitions) evaluations.
func Estimate(ctx context.Context, players []string, fn journey.ValueFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.SampleCount < 1 {
		return Result{}, ErrBadSampleCount
	}
	if cfg.Workers < 0 {
		return Result{}, ErrBadWorkerCount
	}

	sorted, err := validatePlayers(players)
	if err != nil {
		return Result{}, err
	}
	n := len(sorted)
	if n == 0 {
		return Result{Values: map[string]float64{}}, nil
	}
	if fn == nil {
		return Result{}, ErrNilValueFunction
	}

	cache := newValueCache(fn)
	base, err := cache.value(nil) // v(∅), evaluated once up front
	if err != nil {
		return Result{}, err
	}

	if n == 1 {
		return estimateSingle(sorted[0], base, cache, cfg)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.SampleCount {
		workers = cfg.SampleCount
	}

	parent := cfg.Seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	// Fixed contiguous permutation index ranges per worker. Permutation k is
	// always drawn from the stream deriveSeed(parent, k), whichever worker
	// owns it, so the sampled multiset is a function of the seed alone.
	parts := make([]workerPart, workers)
	g, gctx := errgroup.WithContext(ctx)
	start := 0
	for w := 0; w < workers; w++ {
		share := cfg.SampleCount / workers
		if w < cfg.SampleCount%workers {
			share++
		}
		part := &parts[w]
		first := start
		start += share
		g.Go(func() error {
			return samplePermutations(gctx, sorted, base, cache, parent, first, share, part)
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	return mergeParts(sorted, parts, cfg, cache)
}

// estimateSingle handles the one-player game exactly: φ = v({p}) − v(∅).
func estimateSingle(player string, base float64, cache *valueCache, cfg Options) (Result, error) {
	v, err := cache.value([]string{player})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Values:      map[string]float64{player: v - base},
		Samples:     1,
		Evaluations: cache.evaluations(),
	}
	if cfg.KeepMarginals {
		res.Marginals = map[string][]float64{player: {v - base}}
	}

	return res, nil
}

// workerPart accumulates one worker's share of the sampling run. Marginals
// are always collected here — even when the caller drops them from the
// Result — so the final estimates can be folded in global permutation order
// and stay bit-identical for every worker count.
type workerPart struct {
	marginals [][]float64 // per-player marginals in permutation-index order
	samples   int         // permutations completed by this worker
}

// samplePermutations draws the permutations with global indices
// [first, first+share) and accumulates marginal contributions into part.
// Each permutation owns its derived RNG stream, so the draw depends only on
// the parent seed and the index. Returning nil on context cancellation is
// intentional: a partial share is still valid.
func samplePermutations(ctx context.Context, players []string, base float64, cache *valueCache, parent int64, first, share int, part *workerPart) error {
	n := len(players)

	part.marginals = make([][]float64, n)
	for i := range part.marginals {
		part.marginals[i] = make([]float64, 0, share)
	}

	perm := make([]int, n)
	coalition := make([]string, 0, n)

	for s := 0; s < share; s++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		rng := rngFromSeed(deriveSeed(parent, uint64(first+s)))
		permInto(perm, rng)
		coalition = coalition[:0]
		prev := base

		for _, idx := range perm {
			insertSorted(&coalition, players[idx])
			v, err := cache.value(coalition)
			if err != nil {
				return err
			}
			part.marginals[idx] = append(part.marginals[idx], v-prev)
			prev = v
		}
		part.samples++
	}

	return nil
}

// insertSorted inserts p into the sorted slice *dst, preserving order, so
// the running coalition is always in canonical cache-key form.
//
// Complexity: O(n) per insert (shift-dominated; n is small in practice).
func insertSorted(dst *[]string, p string) {
	s := *dst
	i := sort.SearchStrings(s, p)
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = p
	*dst = s
}

// mergeParts folds worker partials into a Result. Worker ranges are
// contiguous permutation-index blocks, so concatenating in worker order
// restores global permutation order; summing over that concatenation keeps
// the FP accumulation order — and hence the estimate — independent of how
// the run was partitioned.
func mergeParts(players []string, parts []workerPart, cfg Options, cache *valueCache) (Result, error) {
	n := len(players)
	var total int
	for i := range parts {
		total += parts[i].samples
	}
	if total == 0 {
		return Result{}, ErrNoSamples
	}

	res := Result{
		Values:      make(map[string]float64, n),
		Samples:     total,
		Evaluations: cache.evaluations(),
	}
	if cfg.KeepMarginals {
		res.Marginals = make(map[string][]float64, n)
	}

	for i, p := range players {
		ms := make([]float64, 0, total)
		for w := range parts {
			ms = append(ms, parts[w].marginals[i]...)
		}

		var sum float64
		for _, m := range ms {
			sum += m
		}
		res.Values[p] = sum / float64(total)

		if cfg.KeepMarginals {
			res.Marginals[p] = ms
		}
	}

	return res, nil
}
