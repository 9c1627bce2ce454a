// SPDX-License-Identifier: MIT
// Package worker: sentinel error set. Match with errors.Is.

package worker

import "errors"

var (
	// ErrInvalidPoolSize is returned by NewPool for size <= 0.
	ErrInvalidPoolSize = errors.New("worker: pool size must be > 0")

	// ErrPoolClosed is returned by Submit once Close has been called.
	ErrPoolClosed = errors.New("worker: pool is closed")

	// ErrInvalidTask rejects a zero Task (one not built by NewTask).
	ErrInvalidTask = errors.New("worker: invalid task")

	// ErrTaskFailed wraps any failure raised while a worker evaluated a task
	// (vector length mismatch, recovered panic). It travels in Result.Err.
	ErrTaskFailed = errors.New("worker: task failed")

	// ErrPinUnsupported is reported (to the pool logger) when CPU pinning is
	// requested on a platform that has no affinity support.
	ErrPinUnsupported = errors.New("worker: cpu pinning not supported on this platform")
)
