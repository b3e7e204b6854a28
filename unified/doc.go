// Package unified orchestrates the full attribution pipeline in one call:
// Shapley estimation and Markov removal effects run concurrently over the
// same dataset, their vectors blend into a hybrid, and the hybrid is
// optionally released under differential privacy.
//
// 🚀 The pipeline:
//
//	journeys ──► ShapleyEstimate ──┐
//	         └─► MarkovAttribution ─┴─► HybridCombine ──► [Privatize] ──► Result
//
// A Session is the unit of privacy accounting: its budget ledger persists
// across calls and advances whenever a call requests noise. Everything
// else is recomputed fresh per call from immutable inputs.
//
// ✨ Contract highlights:
//   - every method's vector is returned (MethodShapley, MethodMarkov,
//     MethodHybrid, and MethodPrivate when privacy was requested) together
//     with wall-clock elapsed time
//   - component errors propagate unchanged (each carries its package
//     prefix); a failed call returns no partial vectors
//   - not requesting privacy ⇒ byte-identical output across repeated calls
//     on the same inputs and seed; requesting ε ≤ 0 fails with
//     privacy.ErrInvalidEpsilon
//
// ⚙️ Usage:
//
//	sess, err := unified.NewSession(privacy.WithCeiling(3))
//	res, err := sess.ComputeCompleteAttribution(ctx, ds,
//	  unified.WithSeed(42),
//	  unified.WithPrivacy(1.0),
//	)
//	fmt.Println(res.Methods[unified.MethodHybrid], res.Elapsed)
package unified
