// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbo manages framebuffer-backed render targets for a
// real-time rendering backend.
//
// # Overview
//
// fbo owns the lifecycle of off-screen and on-screen rendering
// destinations behind stable opaque handles, so the rest of a renderer
// never touches native graphics-context object identifiers directly.
// A Manager creates render targets with a validated attachment
// configuration, tracks which target is bound to the drawing context,
// and applies destruction requests safely on the owning thread even
// when they originate elsewhere (for example from a cleanup hook that
// fires on the garbage collector's goroutine).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fbo"
//	    "github.com/gogpu/fbo/backend/gl"
//	)
//
//	m := fbo.New(gl.NewContext(), fbo.Size{Width: 1280, Height: 720})
//
//	tex, err := m.CreateRenderTarget(
//	    fbo.Size{Width: 256, Height: 256},
//	    fbo.FormatParams{Color: fbo.RGBA8, DepthStencil: true},
//	    nil, "shadow-atlas")
//	if err != nil {
//	    // zero-sized requests are rejected with *InvalidSizeError
//	}
//
//	m.Bind(tex)                // draw into the texture
//	m.Bind(m.WindowTarget())   // draw to the window
//	tex.Dispose()              // owning thread, idempotent
//	m.EndFrame()               // once per frame: drain deferred disposals
//
// # Threading Model
//
// One designated owning thread performs all native graphics-context
// operations; the native context is not thread-safe. Everything on
// Manager except the disposal queue assumes that thread. The only
// cross-thread entry points are RenderTexture.Release and the cleanup
// hook behind it, which merely enqueue a handle. The owning thread
// drains the queue once per frame in EndFrame.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Manager, Target, RenderTexture, RenderWindow
//   - Core: handle allocation, record registry, format table,
//     binding cache, deferred disposal queue
//   - Backends: backend/gl (go-gl), plus any NativeContext
//     implementation supplied by the host
//
// # Error Model
//
// Precondition failures (zero-sized create) and misuse (disposing the
// window target) are returned as error values. Internal invariant
// violations panic: an incomplete framebuffer after correct
// construction, or a lookup of a handle that was already destroyed,
// indicates a bug or a stale handle, and the native state can no
// longer be trusted.
package fbo
