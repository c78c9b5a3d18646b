// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import "sync/atomic"

// Handle is an opaque identifier for a render target tracked by a
// Manager. Handles stand in for native graphics objects so that
// unrelated code never holds raw object identifiers. A handle is
// unique for the lifetime of the process while its record exists and
// is never reused while a record is live.
type Handle uint64

// InvalidHandle is the zero value, representing no render target.
const InvalidHandle Handle = 0

// handleAllocator issues unique, monotonically increasing handles.
// Handles are never recycled: the 64-bit space does not exhaust in
// practice, and skipping reclamation keeps destroyed handles
// permanently distinguishable from live ones.
type handleAllocator struct {
	next atomic.Uint64
}

// Next returns a fresh handle greater than all previously issued ones.
// Safe for concurrent use, though handles are normally allocated only
// on the owning thread.
func (a *handleAllocator) Next() Handle {
	// First issued handle is 1 (0 is InvalidHandle).
	return Handle(a.next.Add(1))
}
