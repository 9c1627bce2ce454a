// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/worker"
)

// Engine runs many multiplications on one persistent pool, saving the spawn
// cost a per-call pool pays on every Multiply. Create it once, Close it when
// done. Engine is safe for concurrent use: tasks of concurrent calls share
// the worker queues, each call keeps its own completion channels.
type Engine[T matrix.Number] struct {
	pool *worker.Pool[T]
}

// NewEngine starts an engine with size workers.
func NewEngine[T matrix.Number](size int, opts ...worker.Option) (*Engine[T], error) {
	p, err := worker.NewPool[T](size, opts...)
	if err != nil {
		return nil, err
	}

	return &Engine[T]{pool: p}, nil
}

// Multiply computes C = A × B on the engine's pool.
// After Close every call fails with ErrWorkerCommunication (worker.ErrPoolClosed).
func (e *Engine[T]) Multiply(ctx context.Context, a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return MultiplyContext(ctx, a, b, WithPool(e.pool))
}

// Stats returns the pool counters accumulated over all calls.
func (e *Engine[T]) Stats() worker.Stats { return e.pool.Stats() }

// Size returns the number of workers.
func (e *Engine[T]) Size() int { return e.pool.Size() }

// Close shuts the pool down and waits for every worker to return.
func (e *Engine[T]) Close() {
	e.pool.Close()
	e.pool.Wait()
}
