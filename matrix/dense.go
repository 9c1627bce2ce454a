// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep operands immutable: no exported mutator exists, accessors return copies.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Col: O(r); Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// CellCount returns rows*cols, the number of cells of a rows×cols matrix.
// Negative dimensions and a product that does not fit in int yield
// ErrInvalidDimensions.
// Complexity: O(1).
func CellCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%d*%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return rows * cols, nil
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an rows×cols Dense backed by a copy of buf.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and rows*cols fits in int;
//     else ErrInvalidDimensions.
//   - Stage 2: validate len(buf) == rows*cols; else ErrBadShape.
//   - Stage 3: copy buf so later writes by the caller cannot leak in.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal (empty products) and render as "{}".
//   - buf is never retained.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (wrapped with "Dense.New(r,c)").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](buf []T, rows, cols int) (*Dense[T], error) {
	// Validate shape.
	n, err := CellCount(rows, cols)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	if len(buf) != n {
		return nil, denseErrorf(ctxNew, rows, cols,
			fmt.Errorf("buffer length %d != %d*%d: %w", len(buf), rows, cols, ErrBadShape))
	}
	data := make([]T, len(buf))
	copy(data, buf)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// MustNew is New that panics on error. Intended for tests and examples with
// literal inputs.
func MustNew[T Number](buf []T, rows, cols int) *Dense[T] {
	m, err := New(buf, rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros creates a zero-filled rows×cols Dense.
// Complexity: O(r*c).
func Zeros[T Number](rows, cols int) (*Dense[T], error) {
	n, err := CellCount(rows, cols)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows.
// An empty input yields a 0×0 matrix; ragged rows yield ErrBadShape.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	n, err := CellCount(r, c)
	if err != nil {
		return nil, denseErrorf(ctxFromRows, r, c, err)
	}
	data := make([]T, 0, n)
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrBadShape)
		}
		data = append(data, row...)
	}

	return &Dense[T]{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Len returns rows*cols, the number of stored cells.
func (m *Dense[T]) Len() int { return len(m.data) }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if row<0, row>=Rows(), col<0 or col>=Cols().
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of logical row i: the Cols() contiguous values starting
// at offset i*Cols().
// Implementation:
//   - Stage 1: bounds check 0 <= i < Rows(); else ErrOutOfRange.
//   - Stage 2: copy the contiguous window data[i*c : i*c+c].
//
// Behavior highlights:
//   - The returned slice is owned by the caller; mutating it never affects m.
//   - Repeated calls return equal slices (no hidden state).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:i*m.c+m.c])

	return out, nil
}

// Col returns a copy of logical column j, formed by striding the backing
// buffer with step Cols() starting at offset j.
// Implementation:
//   - Stage 1: bounds check 0 <= j < Cols(); else ErrOutOfRange.
//   - Stage 2: walk data[j], data[j+c], ..., collecting Rows() values.
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i, off := 0, j; i < m.r; i, off = i+1, off+m.c {
		out[i] = m.data[off]
	}

	return out, nil
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and other have the same shape and bit-identical
// cells. Two nil matrices are equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}
