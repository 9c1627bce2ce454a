// Package matmul is a concurrent dense-matrix multiplication engine: the
// output of C = A × B is partitioned into one dot product per cell, the
// tasks are spread round-robin over a fixed pool of persistent workers, and
// the results are reassembled by destination index.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/   immutable row-major Dense[T], Dot, MulSequential (oracle), rendering
//	worker/   Task / Result, the fixed-size Pool with per-worker queues, CPU pinning
//	dispatch/ Multiply / MultiplyContext / MustMultiply, Engine, MultiplyError
//
// Quick example:
//
//	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, err := dispatch.Multiply(a, b)          // {22 28, 49 64}
//	fmt.Printf("%#v\n", c)                     // Matrix(row=2, col=2):\n{22 28, 49 64}
//
// Concurrency model: shared-nothing message passing. Row and column copies
// travel to workers inside tasks, each result comes back on the task's own
// one-shot channel, and only the aggregating goroutine writes the output.
//
//	go get github.com/katalvlaran/matmul
package matmul
