// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import (
	"sync"
	"testing"
)

func TestTargetInterface(t *testing.T) {
	rc := newRecordingContext()
	m := New(rc, Size{Width: 100, Height: 100})

	tex, err := m.CreateRenderTarget(Size{Width: 8, Height: 8}, FormatParams{Color: RGBA8}, nil, "")
	if err != nil {
		t.Fatalf("CreateRenderTarget() error = %v", err)
	}

	// Both wrapper kinds are usable wherever a Target is expected.
	for _, target := range []Target{tex, m.WindowTarget()} {
		if target.Handle() == InvalidHandle {
			t.Error("Target.Handle() = InvalidHandle")
		}
		if s := target.Size(); s.Width <= 0 || s.Height <= 0 {
			t.Errorf("Target.Size() = %v, want positive dimensions", s)
		}
	}
}

func TestRenderTextureConcurrentDisposeRelease(t *testing.T) {
	rc := newRecordingContext()
	m := New(rc, Size{Width: 100, Height: 100})

	// Release racing Release must enqueue at most once. (Dispose
	// itself belongs to the owning thread, so the race that matters
	// is between the cleanup path and an explicit Release.)
	tex, _ := m.CreateRenderTarget(Size{Width: 8, Height: 8}, FormatParams{Color: RGBA8}, nil, "")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tex.Release()
		}()
	}
	wg.Wait()

	if pending := m.queue.drain(); len(pending) != 1 {
		t.Errorf("queue holds %d entries after racing releases, want 1", len(pending))
	}
}

func TestRenderWindowSizeTracksResize(t *testing.T) {
	rc := newRecordingContext()
	m := New(rc, Size{Width: 320, Height: 200})

	w := m.WindowTarget()
	if w.Size() != (Size{Width: 320, Height: 200}) {
		t.Fatalf("Size() = %v, want initial window size", w.Size())
	}

	m.OnWindowResize(Size{Width: 640, Height: 400})
	if w.Size() != (Size{Width: 640, Height: 400}) {
		t.Errorf("Size() = %v after resize, want 640x400", w.Size())
	}
}

func TestWindowTargetIsShared(t *testing.T) {
	rc := newRecordingContext()
	m := New(rc, Size{Width: 100, Height: 100})

	if m.WindowTarget() != m.WindowTarget() {
		t.Error("WindowTarget() should return the same wrapper every time")
	}
}
