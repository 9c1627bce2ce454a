// SPDX-License-Identifier: MIT

// Package matrix provides the immutable, row-major dense container used by
// the multiplication engine, together with its scalar collaborators.
//
// The matrix package provides:
//
//   - Dense[T], a flat row-major buffer (cell (i,j) at i*cols+j) that is
//     never mutated after construction. Row and Col return copies.
//   - Number, the element constraint: any integer or floating-point type
//     supporting zero value, +, += and *.
//   - Dot, the inner product of two equal-length vectors.
//   - MulSequential, the single-threaded reference product used as an oracle
//     for the concurrent path in package dispatch.
//   - The textual rendering "{1 2, 3 4}" (String) and its diagnostic form
//     "Matrix(row=2, col=2):\n{1 2, 3 4}" (GoString / Debug).
//
// All public functions validate their inputs and return sentinel errors
// (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ...) matched with
// errors.Is. Nothing in this package panics on user input except the Must*
// helpers.
package matrix
