// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra core used by the
// Markov attribution model: row-major float64 matrices with safe accessors
// and a partial-pivot linear solve for absorption probabilities.
//
// Design goals:
//   - Determinism: fixed loop orders, no map iteration, no randomness.
//   - Safety at the public surface: At/Set/Solve return sentinel errors
//     instead of panicking; NaN/±Inf are rejected on ingestion.
//   - Hot-path discipline: one flat buffer per matrix, offset = i*cols + j;
//     no hidden allocations beyond documented outputs.
//
// The package is intentionally minimal. It carries exactly the operations
// the attribution engine exercises (construction, element access, matrix-
// vector product, linear solve) — it is not a general BLAS.
package matrix
