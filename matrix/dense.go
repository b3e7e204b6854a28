// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) and safe accessors.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset i*c+j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Contracts: r ≥ 1 and c ≥ 1, otherwise ErrBadShape.
// Complexity: O(r·c) zero-init.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// Identity creates the n×n identity matrix.
//
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col), or ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set writes v at (row, col). Non-finite values are rejected with ErrNaNInf:
// transition probabilities and absorption systems are finite by contract.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns an independent deep copy.
//
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// RowSum returns the sum of row i's entries, or ErrOutOfRange.
//
// Complexity: O(c).
func (m *Dense) RowSum(row int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("Dense.RowSum(%d): %w", row, ErrOutOfRange)
	}
	var s float64
	for j := 0; j < m.c; j++ {
		s += m.data[row*m.c+j]
	}

	return s, nil
}

// MulVec computes y = M·x.
//
// Contracts: len(x) == Cols, otherwise ErrDimensionMismatch.
// Complexity: O(r·c) time, O(r) space.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var acc float64
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// String renders the matrix row by row, mainly for test diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
