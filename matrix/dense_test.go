package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attribkit/matrix"
)

// TestNewDense_BadShape verifies shape validation.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDense_AtSetBounds verifies that accessors return ErrOutOfRange
// instead of panicking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestDense_SetRejectsNonFinite verifies the numeric policy.
func TestDense_SetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	assert.NoError(t, m.Set(0, 0, 0.5))
}

// TestDense_MulVec checks a hand-computed product and the dimension guard.
func TestDense_MulVec(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	for j, v := range []float64{1, 2, 3} {
		require.NoError(t, m.Set(0, j, v))
	}
	for j, v := range []float64{4, 5, 6} {
		require.NoError(t, m.Set(1, j, v))
	}

	y, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	_, err = m.MulVec([]float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Solve verifies the partial-pivot solve on a known system and
// that inputs are left untouched.
func TestDense_Solve(t *testing.T) {
	// | 2 1 | x = | 5 |   ⇒ x = [2, 1]
	// | 1 3 |     | 5 |
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 3))

	b := []float64{5, 5}
	x, err := m.Solve(b)
	require.NoError(t, err)
	assert.InDelta(t, 2, x[0], 1e-12)
	assert.InDelta(t, 1, x[1], 1e-12)

	assert.Equal(t, []float64{5, 5}, b, "rhs must not be mutated")
	got, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "matrix must not be mutated")
}

// TestDense_Solve_PivotingRequired exercises a zero leading pivot that a
// non-pivoting elimination would reject.
func TestDense_Solve_PivotingRequired(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1)) // [0 1; 1 0]
	require.NoError(t, m.Set(1, 0, 1))

	x, err := m.Solve([]float64{3, 7})
	require.NoError(t, err)
	assert.InDelta(t, 7, x[0], 1e-12)
	assert.InDelta(t, 3, x[1], 1e-12)
}

// TestDense_Solve_Errors covers the singular and shape guards.
func TestDense_Solve_Errors(t *testing.T) {
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = sq.Solve([]float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero matrix is singular")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = rect.Solve([]float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = sq.Solve([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIdentity_RowSums sanity-checks Identity and RowSum.
func TestIdentity_RowSums(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		s, rerr := id.RowSum(i)
		require.NoError(t, rerr)
		assert.Equal(t, 1.0, s)
	}
}
