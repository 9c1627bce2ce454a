// SPDX-License-Identifier: MIT

// Package worker: functional configuration for Pool.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
package worker

import (
	"io"
	"log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultQueueDepth is the buffer size of each worker's inbound channel.
	DefaultQueueDepth = 64

	// DefaultPinning leaves workers unpinned, scheduled freely by the runtime.
	DefaultPinning = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicQueueDepthInvalid = "worker: WithQueueDepth: depth must be >= 0"
	panicLoggerNil         = "worker: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	queueDepth int         // >= 0; DefaultQueueDepth
	pin        bool        // DefaultPinning
	logger     *log.Logger // diagnostics sink; discards by default
}

// WithQueueDepth sets the inbound channel buffer of every worker.
// Zero makes Submit a rendezvous with the target worker.
// Panics if depth < 0.
func WithQueueDepth(depth int) Option {
	if depth < 0 {
		panic(panicQueueDepthInvalid)
	}

	return func(o *options) { o.queueDepth = depth }
}

// WithPinning locks each worker goroutine to its OS thread and binds that
// thread to one CPU (worker k → k-th allowed CPU, modulo the allowed set).
// Failures are logged, never fatal: an unpinned worker still computes.
func WithPinning(enabled bool) Option {
	return func(o *options) { o.pin = enabled }
}

// WithLogger routes pool diagnostics (pinning failures, recovered panics)
// to l. Task failures are still reported through Result.Err.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		queueDepth: DefaultQueueDepth,
		pin:        DefaultPinning,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
