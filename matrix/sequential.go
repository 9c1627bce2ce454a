// SPDX-License-Identifier: MIT
// Package matrix - single-threaded reference product.
//
// Purpose:
//   - MulSequential is the oracle for the concurrent engine in package
//     dispatch. It is deliberately naive: no tiling, no zero-skipping, one
//     destination cell at a time.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot           = "Dot"
	opMulSequential = "MulSequential"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulSequential performs C = A × B on the calling goroutine.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: for each destination (i, j) in row-major order accumulate
//     Σ_k A[i,k]*B[k,j] into a zero-initialized scalar, then store it.
//
// Behavior highlights:
//   - Operands are never mutated; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (m × k).
//   - b: right matrix with shape (k × n).
//
// Returns:
//   - *Dense[T]: new matrix with shape (m × n).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed loop order i→j→k; identical per-cell summation order as Dot.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MulSequential[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulSequential, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	out := make([]T, rows*cols)
	var (
		i, j, k int // loop iterators
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.data[i*inner+k] * b.data[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}

	return &Dense[T]{r: rows, c: cols, data: out}, nil
}
