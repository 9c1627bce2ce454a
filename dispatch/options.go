// SPDX-License-Identifier: MIT

// Package dispatch: functional configuration for Multiply.
package dispatch

import (
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/worker"
)

// DefaultPoolSize is the number of workers spawned per call when neither
// WithPoolSize nor WithPool is given.
const DefaultPoolSize = 4

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPoolSizeInvalid = "dispatch: WithPoolSize: size must be > 0"
	panicPoolNil         = "dispatch: WithPool: pool must be non-nil"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	poolSize   int             // per-call pool size; DefaultPoolSize
	pool       any             // caller-owned *worker.Pool[T]; nil → per-call pool
	workerOpts []worker.Option // applied to the per-call pool only
}

// WithPoolSize sets the number of workers of the per-call pool.
// Panics if n <= 0.
func WithPoolSize(n int) Option {
	if n <= 0 {
		panic(panicPoolSizeInvalid)
	}

	return func(o *options) { o.poolSize = n }
}

// WithPool makes Multiply run on a caller-owned pool instead of spawning one.
// The pool is neither closed nor waited on by Multiply, so it can serve many
// calls. Its element type must match the operands' (else ErrPoolElementType).
// Takes precedence over WithPoolSize. Panics if p is nil.
func WithPool[T matrix.Number](p *worker.Pool[T]) Option {
	if p == nil {
		panic(panicPoolNil)
	}

	return func(o *options) { o.pool = p }
}

// WithWorkerOptions forwards options (queue depth, pinning, logger) to the
// per-call pool.
func WithWorkerOptions(opts ...worker.Option) Option {
	return func(o *options) { o.workerOpts = append(o.workerOpts, opts...) }
}

func gatherOptions(opts ...Option) options {
	o := options{poolSize: DefaultPoolSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
