// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/eapache/queue"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/worker"
)

// Multiply computes C = A × B on a worker pool. It is MultiplyContext with
// context.Background().
func Multiply[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return MultiplyContext(context.Background(), a, b, opts...)
}

// MustMultiply is the operator form of Multiply (A * B): it panics on error.
// Go has no operator overloading; use it only where a failure is a
// programmer error (tests, examples, literal operands).
func MustMultiply[T matrix.Number](a, b *matrix.Dense[T]) *matrix.Dense[T] {
	c, err := Multiply(a, b)
	if err != nil {
		panic(err)
	}

	return c
}

// MultiplyContext computes C = A × B with one task per output cell.
// MAIN DESCRIPTION:
//   - Dispatcher/aggregator of the engine; see the package documentation.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) and check m*n fits in int; on
//     failure return at once, nothing is spawned.
//   - Stage 2: resolve the pool (caller-owned via WithPool, else a per-call
//     pool of WithPoolSize workers, DefaultPoolSize by default).
//   - Stage 3: for idx = i*n + j in row-major order build a Task from
//     A.Row(i), B.Col(j), submit it (routed to worker idx % N) and keep its
//     completion receiver in a FIFO.
//   - Stage 4: close the per-call pool so each queue observes closure once
//     drained.
//   - Stage 5: pop receivers in ascending idx order, write each value at its
//     destination index.
//   - Stage 6: wrap the buffer in a fresh m×n Dense.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - A per-call pool is closed and all its workers have returned before
//     MultiplyContext returns, on success and on failure.
//   - Any failure is fatal to the whole call; no partial matrix is returned.
//
// Errors (all *MultiplyError):
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (Op "validate").
//   - matrix.ErrInvalidDimensions when m*n overflows int (Op "validate").
//   - worker.ErrInvalidPoolSize, ErrPoolElementType (Op "pool").
//   - ErrWorkerCommunication (+ worker.ErrPoolClosed) on refused submission
//     (Op "dispatch") or a completion channel closed without value (Op "collect").
//   - worker.ErrTaskFailed from a failed dot product (Op "collect").
//   - ctx.Err() on cancellation (Op "dispatch" or "collect").
//
// Complexity:
//   - Time O(m*k*n) spread over N workers, Space O(m*n*(k+1)) for task vectors.
func MultiplyContext[T matrix.Number](ctx context.Context, a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, &MultiplyError{Op: opValidate, Index: noCell, Err: err}
	}
	rows, cols := a.Rows(), b.Cols()
	total, err := matrix.CellCount(rows, cols)
	if err != nil {
		return nil, &MultiplyError{Op: opValidate, Index: noCell, Err: err}
	}
	if total == 0 {
		// Degenerate product: nothing to compute.
		return assemble(make([]T, 0), rows, cols)
	}

	o := gatherOptions(opts...)
	pool, owned, err := resolvePool[T](o)
	if err != nil {
		return nil, &MultiplyError{Op: opPool, Index: noCell, Err: err}
	}
	if owned {
		defer func() {
			pool.Close()
			pool.Wait()
		}()
	}

	pending, err := dispatchTasks(ctx, pool, a, b)
	if owned {
		pool.Close() // no further sends; workers exit after draining
	}
	if err != nil {
		return nil, err
	}

	out, err := collect[T](ctx, pending, total)
	if err != nil {
		return nil, err
	}

	return assemble(out, rows, cols)
}

// resolvePool returns the pool to run on and whether this call owns it.
func resolvePool[T matrix.Number](o options) (*worker.Pool[T], bool, error) {
	if o.pool != nil {
		p, ok := o.pool.(*worker.Pool[T])
		if !ok {
			var zero T
			return nil, false, fmt.Errorf("%T for %T operands: %w", o.pool, zero, ErrPoolElementType)
		}
		return p, false, nil
	}
	p, err := worker.NewPool[T](o.poolSize, o.workerOpts...)
	if err != nil {
		return nil, false, err
	}

	return p, true, nil
}

// dispatchTasks submits one task per output cell in ascending destination
// order and returns the completion receivers in the same order.
func dispatchTasks[T matrix.Number](ctx context.Context, pool *worker.Pool[T], a, b *matrix.Dense[T]) (*queue.Queue, error) {
	pending := queue.New()
	rows, cols := a.Rows(), b.Cols()
	var (
		i, j, idx int
		row, col  []T
		err       error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			idx = i*cols + j
			if row, err = a.Row(i); err != nil {
				return nil, &MultiplyError{Op: opDispatch, Index: idx, Err: err}
			}
			if col, err = b.Col(j); err != nil {
				return nil, &MultiplyError{Op: opDispatch, Index: idx, Err: err}
			}
			task, done := worker.NewTask(idx, row, col)
			if err = pool.Submit(ctx, task); err != nil {
				return nil, &MultiplyError{Op: opDispatch, Index: idx, Err: communicationError(ctx, err)}
			}
			pending.Add(done)
		}
	}

	return pending, nil
}

// collect waits on every receiver in FIFO (= destination) order and writes
// each value at its index.
func collect[T matrix.Number](ctx context.Context, pending *queue.Queue, total int) ([]T, error) {
	out := make([]T, total)
	for idx := 0; pending.Length() > 0; idx++ {
		done := pending.Remove().(<-chan worker.Result[T])
		select {
		case res, ok := <-done:
			if !ok {
				return nil, &MultiplyError{Op: opCollect, Index: idx,
					Err: fmt.Errorf("completion channel closed without a value: %w", ErrWorkerCommunication)}
			}
			if res.Err != nil {
				return nil, &MultiplyError{Op: opCollect, Index: idx, Err: res.Err}
			}
			if res.Index != idx {
				return nil, &MultiplyError{Op: opCollect, Index: idx,
					Err: fmt.Errorf("result for cell %d on channel of cell %d: %w", res.Index, idx, ErrWorkerCommunication)}
			}
			out[res.Index] = res.Value
		case <-ctx.Done():
			return nil, &MultiplyError{Op: opCollect, Index: idx, Err: ctx.Err()}
		}
	}

	return out, nil
}

// communicationError classifies a Submit failure: cancellation stays a
// context error, anything else is a worker communication failure.
func communicationError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrWorkerCommunication, err)
}

func assemble[T matrix.Number](out []T, rows, cols int) (*matrix.Dense[T], error) {
	c, err := matrix.New(out, rows, cols)
	if err != nil {
		return nil, &MultiplyError{Op: opAssemble, Index: noCell, Err: err}
	}

	return c, nil
}
