// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import "sync"

// disposalQueue collects handles of render targets awaiting
// destruction. Any goroutine may enqueue; only the owning thread
// drains. This is the one structure in the package mutated from
// multiple threads: cleanup hooks run on the garbage collector's
// goroutine and must never touch the native context, so they hand
// their handle over here instead.
type disposalQueue struct {
	mu      sync.Mutex
	handles []Handle
}

// enqueue adds a handle for destruction at the next drain. It never
// blocks beyond the internal mutex and is safe from any goroutine.
func (q *disposalQueue) enqueue(h Handle) {
	q.mu.Lock()
	q.handles = append(q.handles, h)
	q.mu.Unlock()
}

// drain removes and returns all pending handles. Handles enqueued
// concurrently with a drain land in the next one: the slice is swapped
// out under the lock, so no request is ever lost or returned twice.
// Draining an empty queue returns nil.
func (q *disposalQueue) drain() []Handle {
	q.mu.Lock()
	pending := q.handles
	q.handles = nil
	q.mu.Unlock()
	return pending
}
