// Package privacy releases attribution vectors under epsilon-differential
// privacy via the Laplace mechanism, and accounts for the cumulative budget
// spent across repeated releases.
//
// 🚀 What guarantee is this?
//
//	Adding independent Laplace(0, Δf/ε) noise to each of the k weights of a
//	vector whose per-record sensitivity is Δf makes the release
//	ε-differentially private: one observation entering or leaving the data
//	changes the output distribution by at most a factor e^ε. Expected L1
//	error is bounded by k·Δf/ε.
//
// ✨ Key features:
//   - calibrated noise: scale Δf/ε from inverse-CDF sampling on a seeded
//     stream; fixed seed ⇒ reproducible releases
//   - no silent clipping or renormalization — noisy weights are returned
//     as drawn, so the stated error bound actually holds
//   - budget ledger: monotone cumulative ε, serialized under a mutex, with
//     an optional ceiling that warns (never blocks) on over-spend
//   - simple (Σεᵢ) and advanced (ε·√(2k·ln(1/δ))) composition accounting;
//     which rule governs a deployment is the caller's decision
//
// ⚠️ Sensitivity caveat: Δf = 1/n (n = observation count) is the standard
// bound for count-normalized vectors. For the Markov and hybrid paths it is
// a documented assumption, not a proven bound — the non-linear removal
// blend has no published per-record sensitivity. Tests flag, not hide, this.
//
// ⚙️ Usage:
//
//	mech, err := privacy.NewMechanism(privacy.WithSeed(7), privacy.WithCeiling(3))
//	df, err := privacy.SensitivityForCount(len(journeys))
//	noisy, exceeded, err := mech.Privatize(attr, 1.0, df)
//	spent := mech.Budget().Spent()
//
// Complexity: O(k) per release.
package privacy
