// SPDX-License-Identifier: MIT

// Package dispatch orchestrates one concurrent matrix multiplication end to
// end: it partitions C = A × B into one task per output cell, routes each task
// to a worker round-robin by destination index, and reassembles the results.
//
// Data flow:
//
//	caller ──► Dispatcher ──Task(idx, A.Row(i), B.Col(j))──► worker idx % N
//	                                                           │ Dot
//	caller ◄── Aggregator ◄──────── one-shot Result ◄──────────┘
//
// The aggregator waits on completion channels in ascending destination order
// (creation order), which says nothing about the order in which workers
// finish. Every value is written by explicit index, so the output is
// deterministic whatever the interleaving.
//
// The only data crossing goroutines travels through channels: row/column
// copies into tasks, results out of them. The output buffer is touched by
// the aggregator alone.
//
// Any lost or failed result, any refused submission, and context
// cancellation abort the whole multiplication with a *MultiplyError; a
// partially filled matrix is never returned.
package dispatch
