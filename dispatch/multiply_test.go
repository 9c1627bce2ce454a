// SPDX-License-Identifier: MIT
// Package dispatch_test exercises the concurrent engine against the
// sequential oracle.
package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matmul/dispatch"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/worker"
)

// randomDense fills an r×c matrix with small integers so float products stay exact.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = float64(rng.Intn(21) - 10)
	}
	m, err := matrix.New(buf, r, c)
	require.NoError(t, err)

	return m
}

// settle waits until the goroutine count is back at (or below) baseline.
func settle(t testing.TB, baseline int) {
	t.Helper()
	require.Eventually(t, func() bool {
		// +1: Eventually evaluates the condition on its own goroutine.
		return runtime.NumGoroutine() <= baseline+1
	}, 2*time.Second, 5*time.Millisecond, "workers left running")
}

// MultiplySuite exercises Multiply under various scenarios.
type MultiplySuite struct {
	suite.Suite
	a, b *matrix.Dense[int] // 2×3 and 3×2 fixture
}

func (s *MultiplySuite) SetupTest() {
	s.a = matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	s.b = matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)
}

// TestScenario checks the reference product and both renderings.
func (s *MultiplySuite) TestScenario() {
	c, err := dispatch.Multiply(s.a, s.b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, c.Rows())
	require.Equal(s.T(), 2, c.Cols())
	require.Equal(s.T(), "{22 28, 49 64}", c.String())
	require.Equal(s.T(), "Matrix(row=2, col=2):\n{22 28, 49 64}", fmt.Sprintf("%#v", c))
}

// TestOperatorForm mirrors the panicking a * b convenience.
func (s *MultiplySuite) TestOperatorForm() {
	c := dispatch.MustMultiply(s.a, s.b)
	require.Equal(s.T(), "Matrix(row=2, col=2):\n{22 28, 49 64}", c.Debug())

	require.Panics(s.T(), func() { dispatch.MustMultiply(s.a, s.a) })
}

// TestDimensionMismatch verifies fail-fast validation with nothing spawned.
func (s *MultiplySuite) TestDimensionMismatch() {
	b := matrix.MustNew([]int{1, 2, 3, 4}, 2, 2)
	before := runtime.NumGoroutine()

	c, err := dispatch.Multiply(s.a, b)
	require.Nil(s.T(), c)
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)

	var me *dispatch.MultiplyError
	require.True(s.T(), errors.As(err, &me))
	require.Equal(s.T(), "validate", me.Op)
	require.Equal(s.T(), -1, me.Index)
	require.LessOrEqual(s.T(), runtime.NumGoroutine(), before, "no worker may be spawned")
}

// TestNilOperand reports ErrNilMatrix.
func (s *MultiplySuite) TestNilOperand() {
	_, err := dispatch.Multiply(nil, s.b)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestOperandsUntouched ensures inputs are never mutated.
func (s *MultiplySuite) TestOperandsUntouched() {
	aBefore, bBefore := s.a.Data(), s.b.Data()
	_, err := dispatch.Multiply(s.a, s.b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), aBefore, s.a.Data())
	require.Equal(s.T(), bBefore, s.b.Data())
}

// TestDegenerateShapes covers empty outputs and an empty inner dimension.
func (s *MultiplySuite) TestDegenerateShapes() {
	c, err := dispatch.Multiply(matrix.MustNew[int](nil, 0, 3), matrix.MustNew([]int{1, 2, 3}, 3, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, c.Rows())
	require.Equal(s.T(), 1, c.Cols())
	require.Equal(s.T(), "{}", c.String())

	c, err = dispatch.Multiply(matrix.MustNew[int](nil, 2, 0), matrix.MustNew[int](nil, 0, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 0, 0, 0, 0, 0}, c.Data())
}

// TestOutputCellCountOverflow rejects m×0 * 0×n when m*n does not fit in int.
func (s *MultiplySuite) TestOutputCellCountOverflow() {
	const side = 1 << (bits.UintSize / 2)
	baseline := runtime.NumGoroutine()
	c, err := dispatch.Multiply(matrix.MustNew[int](nil, side, 0), matrix.MustNew[int](nil, 0, side))
	require.ErrorIs(s.T(), err, matrix.ErrInvalidDimensions)
	require.Nil(s.T(), c)

	var me *dispatch.MultiplyError
	require.ErrorAs(s.T(), err, &me)
	require.Equal(s.T(), "validate", me.Op)
	require.LessOrEqual(s.T(), runtime.NumGoroutine(), baseline)
}

// TestNoLeakAfterSuccess checks every per-call worker returns.
func (s *MultiplySuite) TestNoLeakAfterSuccess() {
	baseline := runtime.NumGoroutine()
	_, err := dispatch.Multiply(s.a, s.b, dispatch.WithPoolSize(16))
	require.NoError(s.T(), err)
	settle(s.T(), baseline)
}

func TestMultiplySuite(t *testing.T) {
	suite.Run(t, new(MultiplySuite))
}

func TestMultiply_MatchesSequential(t *testing.T) {
	for _, sh := range [][3]int{{1, 1, 1}, {1, 7, 1}, {5, 3, 4}, {9, 9, 9}, {16, 3, 31}, {33, 17, 2}} {
		m, k, n := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", m, k, n), func(t *testing.T) {
			a := randomDense(t, m, k, int64(31*m+k))
			b := randomDense(t, k, n, int64(17*k+n))

			want, err := matrix.MulSequential(a, b)
			require.NoError(t, err)
			got, err := dispatch.Multiply(a, b)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "concurrent %v != sequential %v", got, want)
		})
	}
}

func TestMultiply_PoolSizeInvariance(t *testing.T) {
	a := randomDense(t, 12, 7, 1)
	b := randomDense(t, 7, 10, 2)
	ref, err := dispatch.Multiply(a, b, dispatch.WithPoolSize(1))
	require.NoError(t, err)

	for _, n := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", n), func(t *testing.T) {
			got, err := dispatch.Multiply(a, b, dispatch.WithPoolSize(n))
			require.NoError(t, err)
			require.True(t, ref.Equal(got))
		})
	}
}

func TestMultiply_ElementTypes(t *testing.T) {
	f := matrix.MustNew([]float32{1, 2, 3, 4}, 2, 2)
	cf, err := dispatch.Multiply(f, f)
	require.NoError(t, err)
	require.Equal(t, "{7 10, 15 22}", cf.String())

	u := matrix.MustNew([]uint8{1, 2, 3, 4}, 2, 2)
	cu, err := dispatch.Multiply(u, u)
	require.NoError(t, err)
	require.Equal(t, []uint8{7, 10, 15, 22}, cu.Data())

	i := matrix.MustNew([]int64{-1, 2}, 1, 2)
	j := matrix.MustNew([]int64{3, 4}, 2, 1)
	ci, err := dispatch.Multiply(i, j)
	require.NoError(t, err)
	require.Equal(t, "{5}", ci.String())
}

func TestMultiply_WorkerOptions(t *testing.T) {
	a := randomDense(t, 6, 6, 3)
	want, err := matrix.MulSequential(a, a)
	require.NoError(t, err)

	got, err := dispatch.Multiply(a, a,
		dispatch.WithPoolSize(3),
		dispatch.WithWorkerOptions(worker.WithQueueDepth(0), worker.WithPinning(true)),
	)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestMultiply_CanceledContext(t *testing.T) {
	baseline := runtime.NumGoroutine()
	a := randomDense(t, 64, 8, 5)
	b := randomDense(t, 8, 64, 6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, err := dispatch.MultiplyContext(ctx, a, b)
	require.Nil(t, c)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, dispatch.ErrWorkerCommunication)
	settle(t, baseline)
}

func TestMultiply_SharedPool(t *testing.T) {
	p, err := worker.NewPool[float64](3)
	require.NoError(t, err)

	a := randomDense(t, 4, 5, 7)
	b := randomDense(t, 5, 6, 8)
	want, err := matrix.MulSequential(a, b)
	require.NoError(t, err)

	for round := 0; round < 3; round++ {
		got, err := dispatch.Multiply(a, b, dispatch.WithPool(p), dispatch.WithPoolSize(9))
		require.NoError(t, err)
		require.True(t, want.Equal(got))
	}

	p.Close()
	p.Wait()
	require.Equal(t, int64(3*4*6), p.Stats().Completed)
	require.Equal(t, 3, p.Size(), "WithPool takes precedence over WithPoolSize")

	_, err = dispatch.Multiply(a, b, dispatch.WithPool(p))
	require.ErrorIs(t, err, dispatch.ErrWorkerCommunication)
	require.ErrorIs(t, err, worker.ErrPoolClosed)
}

func TestMultiply_PoolElementTypeMismatch(t *testing.T) {
	p, err := worker.NewPool[int](1)
	require.NoError(t, err)
	defer p.Close()

	a := randomDense(t, 2, 2, 9)
	_, err = dispatch.Multiply(a, a, dispatch.WithPool(p))
	require.ErrorIs(t, err, dispatch.ErrPoolElementType)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { dispatch.WithPoolSize(0) })
	require.Panics(t, func() { dispatch.WithPoolSize(-2) })
	require.Panics(t, func() { dispatch.WithPool[int](nil) })
}

func TestMultiplyError_Format(t *testing.T) {
	e := &dispatch.MultiplyError{Op: "collect", Index: 3, Err: dispatch.ErrWorkerCommunication}
	require.Equal(t, "dispatch: collect: cell 3: dispatch: worker communication failure", e.Error())
	require.ErrorIs(t, e, dispatch.ErrWorkerCommunication)

	e = &dispatch.MultiplyError{Op: "pool", Index: -1, Err: worker.ErrInvalidPoolSize}
	require.Equal(t, "dispatch: pool: worker: pool size must be > 0", e.Error())
}
