// SPDX-License-Identifier: MIT
// Package worker: exposes internals to the external test package.

package worker

// NewIntPoolWithKernel starts a pool that evaluates every task with kernel
// instead of matrix.Dot, so tests can make a task panic.
func NewIntPoolWithKernel(size int, kernel func(x, y []int) (int, error), opts ...Option) (*Pool[int], error) {
	return newPool(size, kernel, opts...)
}
