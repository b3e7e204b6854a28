// SPDX-License-Identifier: MIT

// Package matrix - linear solve via Gaussian elimination with partial
// pivoting. Used by the Markov model to solve (I−Q)·x = r for absorption
// probabilities; the systems involved are small (one row per transient
// state), so a dense direct solve is the right tool.
package matrix

import (
	"fmt"
	"math"
)

// pivotTol is the magnitude below which a pivot is treated as zero.
// Independent from any caller-side probability tolerance.
const pivotTol = 1e-12

// Solve returns x such that M·x = b, using Gaussian elimination with
// partial pivoting on a scratch copy (M and b are left untouched).
//
// Contracts:
//   - M must be square (ErrNonSquare) and len(b) == Rows (ErrDimensionMismatch).
//   - A pivot below tolerance yields ErrSingular; no least-squares fallback,
//     because a singular absorption system signals a modeling bug upstream.
//
// Complexity: O(n³) time, O(n²) space for the scratch copy.
func (m *Dense) Solve(b []float64) ([]float64, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.Solve: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if len(b) != m.r {
		return nil, fmt.Errorf("Dense.Solve: len(b)=%d, rows=%d: %w", len(b), m.r, ErrDimensionMismatch)
	}

	n := m.r
	a := m.Clone()
	x := make([]float64, n)
	copy(x, b)

	// Forward elimination with row pivoting.
	for col := 0; col < n; col++ {
		// Select the largest-magnitude pivot in this column.
		pivot := col
		best := math.Abs(a.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if mag := math.Abs(a.data[row*n+col]); mag > best {
				best, pivot = mag, row
			}
		}
		if best < pivotTol {
			return nil, fmt.Errorf("Dense.Solve: column %d: %w", col, ErrSingular)
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				a.data[col*n+j], a.data[pivot*n+j] = a.data[pivot*n+j], a.data[col*n+j]
			}
			x[col], x[pivot] = x[pivot], x[col]
		}

		inv := 1 / a.data[col*n+col]
		for row := col + 1; row < n; row++ {
			f := a.data[row*n+col] * inv
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[row*n+j] -= f * a.data[col*n+j]
			}
			x[row] -= f * x[col]
		}
	}

	// Back substitution.
	for row := n - 1; row >= 0; row-- {
		acc := x[row]
		for j := row + 1; j < n; j++ {
			acc -= a.data[row*n+j] * x[j]
		}
		x[row] = acc / a.data[row*n+row]
	}

	return x, nil
}
