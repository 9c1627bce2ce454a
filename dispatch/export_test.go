// SPDX-License-Identifier: MIT
// Package dispatch: exposes internals to the external test package.

package dispatch

import (
	"context"

	"github.com/eapache/queue"
)

// CollectInts runs the aggregator over hand-built completion channels so
// tests can inject lost and failed results.
func CollectInts(ctx context.Context, pending *queue.Queue, total int) ([]int, error) {
	return collect[int](ctx, pending, total)
}
