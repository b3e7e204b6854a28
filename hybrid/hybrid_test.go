package hybrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attribkit/hybrid"
)

// TestCombine_BoundaryAlphas verifies the exact reductions: α=1 ⇒ the
// normalized Shapley vector, α=0 ⇒ the normalized Markov vector.
func TestCombine_BoundaryAlphas(t *testing.T) {
	shap := map[string]float64{"A": 1, "B": 3}   // normalizes to .25/.75
	mark := map[string]float64{"A": 2, "B": 2}   // normalizes to .5/.5

	pure, err := hybrid.Combine(shap, mark, hybrid.WithAlpha(1))
	require.NoError(t, err)
	assert.Equal(t, 0.25, pure["A"])
	assert.Equal(t, 0.75, pure["B"])

	pure, err = hybrid.Combine(shap, mark, hybrid.WithAlpha(0))
	require.NoError(t, err)
	assert.Equal(t, 0.5, pure["A"])
	assert.Equal(t, 0.5, pure["B"])
}

// TestCombine_EvenBlend checks the default α=½ blend on disjoint scales:
// both sides normalize to proportions before mixing.
func TestCombine_EvenBlend(t *testing.T) {
	shap := map[string]float64{"A": 0.2, "B": 0.6}  // proportions .25/.75
	mark := map[string]float64{"A": 40, "B": 60}    // proportions .4/.6

	out, err := hybrid.Combine(shap, mark)
	require.NoError(t, err)
	assert.InDelta(t, 0.325, out["A"], 1e-12)
	assert.InDelta(t, 0.675, out["B"], 1e-12)
}

// TestCombine_ChannelUnion verifies that one-sided channels blend with an
// implicit zero on the missing side rather than being dropped.
func TestCombine_ChannelUnion(t *testing.T) {
	shap := map[string]float64{"A": 1}
	mark := map[string]float64{"B": 1}

	out, err := hybrid.Combine(shap, mark, hybrid.WithAlpha(0.5))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.5, out["A"], 1e-12)
	assert.InDelta(t, 0.5, out["B"], 1e-12)
}

// TestCombine_ZeroSumSideNormalizesToZero verifies that an all-zero vector
// contributes zeros, not NaNs.
func TestCombine_ZeroSumSideNormalizesToZero(t *testing.T) {
	out, err := hybrid.Combine(
		map[string]float64{"A": 0, "B": 0},
		map[string]float64{"A": 1, "B": 1},
		hybrid.WithAlpha(0.5),
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, out["A"], 1e-12)
	assert.InDelta(t, 0.25, out["B"], 1e-12)
}

// TestCombine_Errors covers the guard rails.
func TestCombine_Errors(t *testing.T) {
	_, err := hybrid.Combine(nil, nil)
	assert.ErrorIs(t, err, hybrid.ErrNoInput)

	_, err = hybrid.Combine(map[string]float64{"A": 1}, nil, hybrid.WithAlpha(1.5))
	assert.ErrorIs(t, err, hybrid.ErrBadAlpha)

	_, err = hybrid.Combine(map[string]float64{"A": 1}, nil, hybrid.WithAlpha(-0.1))
	assert.ErrorIs(t, err, hybrid.ErrBadAlpha)

	_, err = hybrid.Combine(map[string]float64{"A": math.NaN()}, nil)
	assert.ErrorIs(t, err, hybrid.ErrNonFinite)
}

// TestVarianceAlpha verifies inverse-variance weighting and its fallbacks.
func TestVarianceAlpha(t *testing.T) {
	// Shapley three times noisier ⇒ α = 1/(3+1) leans Markov.
	assert.InDelta(t, 0.25, hybrid.VarianceAlpha(3, 1), 1e-12)
	// Equal variance ⇒ even blend.
	assert.InDelta(t, 0.5, hybrid.VarianceAlpha(2, 2), 1e-12)
	// Missing/degenerate variance ⇒ even blend.
	assert.Equal(t, hybrid.DefaultAlpha, hybrid.VarianceAlpha(0, 1))
	assert.Equal(t, hybrid.DefaultAlpha, hybrid.VarianceAlpha(math.NaN(), 1))
	assert.Equal(t, hybrid.DefaultAlpha, hybrid.VarianceAlpha(1, math.Inf(1)))
}
