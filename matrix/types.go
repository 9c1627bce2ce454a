// SPDX-License-Identifier: MIT

// Package matrix: element constraint shared by Dense, Dot and the kernels.
package matrix

// Number is the set of element types a Dense may hold.
// Every member has a zero value that is the additive identity and supports
// +, += and *, which is all the dot-product kernels require.
//
// Notes:
//   - Overflow follows Go semantics for the concrete type (wrap for ints).
//   - Floating-point results are bit-reproducible only for a fixed
//     accumulation order; every kernel here sums t = 0..n-1.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
