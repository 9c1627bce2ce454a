// SPDX-License-Identifier: MIT

// Package matrix - textual rendering.
//
// The brace form is a compatibility surface relied on by callers and tests:
//
//	String():   "{" + rows joined by ", " (cells joined by " ") + "}"
//	GoString(): "Matrix(row=R, col=C):\n" + String()

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtOpen    = "{"
	_fmtClose   = "}"
	_fmtRowSep  = ", "
	_fmtCellSep = " "
	_fmtHeader  = "Matrix(row=%d, col=%d):\n"
)

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Dense[int])(nil)
	_ fmt.GoStringer = (*Dense[float64])(nil)
)

// String renders m as "{a b, c d}". Cells use the %v verb.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ { // iterate over rows
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		for j := 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(_fmtCellSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// GoString implements fmt.GoStringer so that %#v prints the diagnostic form.
func (m *Dense[T]) GoString() string { return m.Debug() }

// Debug returns the diagnostic rendering "Matrix(row=R, col=C):\n{...}".
func (m *Dense[T]) Debug() string {
	return fmt.Sprintf(_fmtHeader, m.r, m.c) + m.String()
}
