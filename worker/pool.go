// SPDX-License-Identifier: MIT

package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/matmul/matrix"
)

// Pool is a fixed set of persistent workers, each with its own inbound queue.
// Pool is safe for concurrent use; Submit may be called from many goroutines
// and a single Pool may serve many multiplications in sequence.
type Pool[T matrix.Number] struct {
	queues []chan Task[T] // one inbound queue per worker, index == worker id
	opts   options
	kernel func(x, y []T) (T, error) // per-task computation; matrix.Dot

	mu        sync.RWMutex  // Submit holds R; Close holds W while closing queues
	closing   chan struct{} // closed by Close; unblocks pending Submit
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup // one per worker goroutine

	// statistics
	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Workers   int   // fixed pool size
	Submitted int64 // tasks accepted by Submit
	Completed int64 // results delivered (success or failure)
	Failed    int64 // results delivered with Err != nil
}

// NewPool spawns size workers and returns the running pool.
// Implementation:
//   - Stage 1: validate size > 0; else ErrInvalidPoolSize.
//   - Stage 2: gather options; allocate one buffered queue per worker.
//   - Stage 3: start one goroutine per queue.
//
// Complexity:
//   - Time O(size), Space O(size*queueDepth).
func NewPool[T matrix.Number](size int, opts ...Option) (*Pool[T], error) {
	return newPool(size, matrix.Dot[T], opts...)
}

func newPool[T matrix.Number](size int, kernel func(x, y []T) (T, error), opts ...Option) (*Pool[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewPool(%d): %w", size, ErrInvalidPoolSize)
	}
	o := gatherOptions(opts...)
	p := &Pool[T]{
		queues:  make([]chan Task[T], size),
		opts:    o,
		kernel:  kernel,
		closing: make(chan struct{}),
	}
	p.wg.Add(size)
	for id := range p.queues {
		p.queues[id] = make(chan Task[T], o.queueDepth)
		go p.run(id, p.queues[id])
	}

	return p, nil
}

// Size returns the fixed number of workers.
func (p *Pool[T]) Size() int { return len(p.queues) }

// Submit routes task to worker task.Index() % Size().
// It blocks while that worker's queue is full, until there is room, ctx is
// done (returns ctx.Err()) or the pool is closed (returns ErrPoolClosed).
// On a non-nil error the task was not accepted and its completion channel
// will never receive a value.
func (p *Pool[T]) Submit(ctx context.Context, task Task[T]) error {
	if !task.valid() {
		return fmt.Errorf("Submit: %w", ErrInvalidTask)
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return fmt.Errorf("Submit(%d): %w", task.index, ErrPoolClosed)
	}
	select {
	case p.queues[task.index%len(p.queues)] <- task:
		p.submitted.Add(1)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("Submit(%d): %w", task.index, ctx.Err())
	case <-p.closing:
		return fmt.Errorf("Submit(%d): %w", task.index, ErrPoolClosed)
	}
}

// Close stops accepting tasks and closes every worker queue. Queued tasks
// are still executed; workers exit once their queue is drained. Calling
// Close multiple times is safe.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.closing) // release Submit calls blocked on a full queue
		p.mu.Lock()      // wait until no Submit is mid-send
		for _, q := range p.queues {
			close(q)
		}
		p.mu.Unlock()
	})
}

// Wait blocks until every worker goroutine has returned. It only returns
// after Close has been called.
func (p *Pool[T]) Wait() { p.wg.Wait() }

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Workers:   len(p.queues),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}

// run is the main loop of worker id: receive until the queue is closed and
// empty, evaluating each task.
func (p *Pool[T]) run(id int, queue <-chan Task[T]) {
	defer p.wg.Done()
	if p.opts.pin {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := pinCurrentThread(id); err != nil {
			p.opts.logger.Printf("worker %d: pin: %v", id, err)
		}
	}
	for task := range queue {
		p.execute(id, task)
	}
}

// execute evaluates one task and delivers exactly one Result, recovering
// from panics so the worker survives a bad task.
func (p *Pool[T]) execute(id int, task Task[T]) {
	res := Result[T]{Index: task.index}
	defer func() {
		if r := recover(); r != nil {
			p.opts.logger.Printf("worker %d: task %d: recovered panic: %v", id, task.index, r)
			res.Err = fmt.Errorf("worker %d: task %d: panic: %v: %w", id, task.index, r, ErrTaskFailed)
		}
		if !task.done.deliver(res) {
			return // duplicate submission of an already completed task
		}
		p.completed.Add(1)
		if res.Err != nil {
			p.failed.Add(1)
		}
	}()

	v, err := p.kernel(task.row, task.col)
	if err != nil {
		res.Err = fmt.Errorf("worker %d: task %d: %w: %w", id, task.index, ErrTaskFailed, err)
		return
	}
	res.Value = v
}
