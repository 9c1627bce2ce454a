// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep float data integral so products are exact and bit-comparable.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// MustDense builds an r×c *Dense from buf or fails the test.
func MustDense[T matrix.Number](tb testing.TB, buf []T, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(buf, r, c)
	require.NoError(tb, err)

	return m
}

// RandomDense returns an r×c float64 matrix with small integral entries in
// [-9, 9], seeded for reproducibility.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = float64(rng.Intn(19) - 9)
	}

	return MustDense(tb, buf, r, c)
}

// NaiveCell computes Σ_t A[i,t]*B[t,j] through the public accessors.
func NaiveCell[T matrix.Number](tb testing.TB, a, b *matrix.Dense[T], i, j int) T {
	tb.Helper()
	var sum T
	for t := 0; t < a.Cols(); t++ {
		av, err := a.At(i, t)
		require.NoError(tb, err)
		bv, err := b.At(t, j)
		require.NoError(tb, err)
		sum += av * bv
	}

	return sum
}
