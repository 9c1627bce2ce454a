// SPDX-License-Identifier: MIT

// Package worker implements the fixed-size pool that evaluates per-cell
// dot products for the multiplication engine.
//
// What & Why:
//
//	A Pool owns N long-lived goroutines. Each worker has its own inbound
//	channel; tasks are routed statically by destination index modulo N, so
//	no queue is shared between workers and no lock sits on the hot path.
//	The price is the absence of load balancing, which is acceptable because
//	every task in one multiplication has the same cost.
//
//	A Task carries its own one-shot completion channel (capacity one). The
//	worker delivers exactly one Result on it and closes it, so the consumer
//	can tell "value", "failure" (Result.Err) and "lost" (closed, no value)
//	apart. A worker never dies because of a task: dot-product errors and
//	panics become Result.Err.
//
// Lifecycle:
//
//	p, _ := worker.NewPool[float64](4)
//	task, ch := worker.NewTask(idx, row, col)
//	_ = p.Submit(ctx, task)        // routed to worker idx % 4
//	res := <-ch
//	p.Close()                      // queues close; workers drain and exit
//	p.Wait()
//
// Workers may optionally be pinned to CPUs (WithPinning); on Linux this
// locks the goroutine to its OS thread and sets the thread affinity.
package worker
