// Package shapley estimates Shapley values — the unique fair allocation of
// a cooperative game's total value — for channel attribution, via
// Monte-Carlo permutation sampling with optional exact enumeration.
//
// 🚀 What is a Shapley value?
//
//	Given players N and a coalition value function v with v(∅)=0, player
//	i's Shapley value is its expected marginal contribution
//	  φ_i = E_π[ v(P_π(i) ∪ {i}) − v(P_π(i)) ]
//	over uniformly random orderings π, where P_π(i) is the set of players
//	preceding i. The allocation satisfies efficiency (Σφ_i = v(N)),
//	symmetry, null-player and additivity.
//
// ✨ Key features:
//   - permutation sampling: draw M random orderings, walk each left to
//     right, average marginals; variance decays as O(1/M)
//   - content-addressed coalition cache: values keyed by the sorted
//     coalition, shared (lock-protected) across workers
//   - parallel workers with deterministic merge order: fixed seed ⇒
//     identical results regardless of scheduling
//   - cooperative cancellation: a canceled context yields a valid
//     higher-variance estimate over the permutations already drawn
//   - per-permutation marginals retained for variance, standard error and
//     convergence-trace diagnostics (bootstrap is the caller's business)
//
// ⚙️ Usage:
//
//	res, err := shapley.Estimate(ctx, channels, valueFn,
//	  shapley.WithSampleCount(4000),
//	  shapley.WithSeed(42),
//	  shapley.WithWorkers(4),
//	)
//	fmt.Println(res.Values, res.StdErr("B"))
//
// Complexity: O(M·N) value-function lookups (far fewer evaluations once
// the cache warms up); memory O(M·N) with marginals retained, O(N) without.
package shapley
