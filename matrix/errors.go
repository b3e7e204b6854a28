// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set. All public operations return these
// sentinels (tests match with errors.Is); no operation panics on user input.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where len(x) != Cols, or Solve where len(b) != Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not supplied.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular signals that a linear system has no unique solution within
	// the pivot tolerance.
	ErrSingular = errors.New("matrix: singular system")
)
