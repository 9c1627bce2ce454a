// SPDX-License-Identifier: MIT

package worker

import (
	"sync"

	"github.com/katalvlaran/matmul/matrix"
)

// Task is one unit of work: the dot product of a row vector and a column
// vector, destined for one output cell. A Task is immutable; build it with
// NewTask, hand it to exactly one Pool.Submit.
type Task[T matrix.Number] struct {
	index int         // destination index i*cols + j
	row   []T         // copy of A.Row(i)
	col   []T         // copy of B.Col(j)
	done  *oneshot[T] // private completion channel
}

// Result is the outcome of one Task. Err is non-nil (wrapping ErrTaskFailed)
// when the worker could not produce Value.
type Result[T matrix.Number] struct {
	Index int
	Value T
	Err   error
}

// oneshot delivers at most one Result and then closes the channel.
// A second delivery (the same Task submitted twice) is dropped.
type oneshot[T matrix.Number] struct {
	once sync.Once
	ch   chan Result[T]
}

func (o *oneshot[T]) deliver(res Result[T]) (delivered bool) {
	o.once.Do(func() {
		o.ch <- res // capacity one: never blocks
		close(o.ch)
		delivered = true
	})

	return delivered
}

// NewTask builds a Task for destination index idx and returns it together
// with the receiving end of its completion channel. The receiver yields
// exactly one Result and is then closed; the caller keeps it, the Task goes
// to the pool. row and col are owned by the Task from here on.
func NewTask[T matrix.Number](idx int, row, col []T) (Task[T], <-chan Result[T]) {
	o := &oneshot[T]{ch: make(chan Result[T], 1)}

	return Task[T]{index: idx, row: row, col: col, done: o}, o.ch
}

// Index returns the destination index of the task.
func (t Task[T]) Index() int { return t.index }

// valid reports whether t was built by NewTask.
func (t Task[T]) valid() bool { return t.done != nil && t.index >= 0 }
