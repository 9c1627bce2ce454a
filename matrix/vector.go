// SPDX-License-Identifier: MIT

package matrix

// Dot returns the inner product Σ_t x[t]*y[t].
// Implementation:
//   - Stage 1: ValidateVecLen(x, y); mismatch → ErrVectorLengthMismatch.
//   - Stage 2: zero-initialized accumulation in index order 0..n-1.
//
// Behavior highlights:
//   - Pure: inputs are only read.
//   - Two empty vectors yield the zero value.
//
// Determinism:
//   - Fixed summation order; results are bit-identical to MulSequential's
//     per-cell accumulation for the same operands.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot[T Number](x, y []T) (T, error) {
	var sum T
	if err := ValidateVecLen(x, y); err != nil {
		return sum, matrixErrorf(opDot, err)
	}
	for t := range x {
		sum += x[t] * y[t]
	}

	return sum, nil
}
