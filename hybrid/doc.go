// Package hybrid merges Shapley-based and Markov-based attribution vectors
// into one normalized result via a convex combination.
//
// Both inputs are independently normalized to proportions (each sums to 1)
// before blending, so the combination is dimensionally consistent even when
// one method reports raw Shapley values and the other attributed
// conversions. Channels present on only one side enter the blend with
// weight 0 on the missing side — never excluded.
//
//	hybrid(c) = α·normalized_shapley(c) + (1−α)·normalized_markov(c)
//
// α = 1 reduces to the normalized Shapley vector exactly; α = 0 to the
// normalized Markov vector. The default α is ½; VarianceAlpha derives a
// data-driven α favoring whichever method shows lower estimation variance.
//
// ⚙️ Usage:
//
//	blend, err := hybrid.Combine(shap.Values, markovAttr,
//	  hybrid.WithAlpha(0.7),
//	)
//
// Complexity: O(channel union).
package hybrid
