// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import (
	"runtime"
	"sync/atomic"
)

// Target is a rendering destination tracked by a Manager.
//
// Two kinds exist: RenderTexture owns an off-screen color attachment
// and its record, RenderWindow is a non-owning view over the window
// record. Both expose their handle and size; Dispose succeeds only on
// the owned kind.
type Target interface {
	// Handle returns the opaque registry handle of the target.
	Handle() Handle

	// Size returns the target size in pixels.
	Size() Size

	// Dispose releases the target. It is idempotent for
	// RenderTexture and always fails with ErrWindowTarget for
	// RenderWindow.
	Dispose() error
}

// RenderTexture is an off-screen render target owning a color
// attachment (and optionally a depth-stencil attachment) behind a
// registry record.
//
// A RenderTexture transitions Live to Disposed exactly once, whether
// Dispose runs on the owning thread, Release enqueues from another
// goroutine, or the cleanup hook fires because the wrapper became
// unreachable undisposed. Further Dispose or Release calls are no-ops.
type RenderTexture struct {
	m        *Manager
	handle   Handle
	size     Size
	pressure uint64

	disposed atomic.Bool
	cleanup  runtime.Cleanup
}

// releaseArgs carries what the cleanup hook needs without referencing
// the RenderTexture itself, which would keep it reachable forever.
type releaseArgs struct {
	queue  *disposalQueue
	handle Handle
}

func newRenderTexture(m *Manager, h Handle, size Size, pressure uint64) *RenderTexture {
	t := &RenderTexture{
		m:        m,
		handle:   h,
		size:     size,
		pressure: pressure,
	}
	// The hook runs on the collector's goroutine, which must never
	// touch the native context; it only parks the handle for the next
	// EndFrame drain.
	t.cleanup = runtime.AddCleanup(t, func(a releaseArgs) {
		a.queue.enqueue(a.handle)
	}, releaseArgs{queue: &m.queue, handle: h})
	return t
}

// Handle returns the opaque registry handle of the texture.
func (t *RenderTexture) Handle() Handle {
	return t.handle
}

// Size returns the texture size in pixels.
func (t *RenderTexture) Size() Size {
	return t.size
}

// MemoryPressure returns the advisory estimate of the texture's GPU
// memory footprint in bytes: color bytes-per-pixel times pixel count,
// plus 4 bytes per pixel when a depth-stencil attachment exists.
func (t *RenderTexture) MemoryPressure() uint64 {
	return t.pressure
}

// Dispose destroys the texture's native objects and removes its
// record. It must run on the owning thread. Disposing twice is a
// no-op.
func (t *RenderTexture) Dispose() error {
	if !t.disposed.CompareAndSwap(false, true) {
		return nil
	}
	t.cleanup.Stop()
	return t.m.destroy(t.handle)
}

// Release marks the texture for disposal at the next EndFrame. Unlike
// Dispose it is safe from any goroutine: it only enqueues the handle
// and never touches the native context. Releasing an already disposed
// or released texture is a no-op.
func (t *RenderTexture) Release() {
	if !t.disposed.CompareAndSwap(false, true) {
		return
	}
	t.cleanup.Stop()
	t.m.queue.enqueue(t.handle)
}

// Ensure RenderTexture implements Target.
var _ Target = (*RenderTexture)(nil)

// RenderWindow is the render target backed by the OS window
// framebuffer. It is a non-owning view: its size follows the live
// window through Manager.OnWindowResize, and it cannot be disposed.
type RenderWindow struct {
	m *Manager
}

// Handle returns the fixed handle of the window target.
func (w *RenderWindow) Handle() Handle {
	return w.m.windowHandle
}

// Size returns the current window framebuffer size. Read it on the
// owning thread; it changes only through OnWindowResize.
func (w *RenderWindow) Size() Size {
	return w.m.targets.get(w.m.windowHandle).size
}

// Dispose always fails with ErrWindowTarget. The window target is
// torn down only by its Manager, never through this path.
func (w *RenderWindow) Dispose() error {
	return w.m.destroy(w.m.windowHandle)
}

// Ensure RenderWindow implements Target.
var _ Target = (*RenderWindow)(nil)
