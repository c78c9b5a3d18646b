// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

// Manager owns every render target of one native graphics context:
// the registry of live records, the binding cache, the deferred
// disposal queue and the singular window target. Construct one Manager
// per context with New and keep it on the owning thread; apart from
// the disposal queue none of its state is safe to touch elsewhere.
type Manager struct {
	native  NativeContext
	targets *registry
	queue   disposalQueue
	handles handleAllocator

	windowHandle Handle
	window       *RenderWindow

	// Binding cache. bound is the handle whose target was last bound
	// for drawing; redundant Bind calls for it are elided. boundValid
	// is false before the first Bind and after the bound target is
	// destroyed.
	bound      Handle
	boundValid bool
}

// New creates a Manager over a native context and registers the
// window target. windowSize must mirror the live window framebuffer;
// keep it current through OnWindowResize. The window record is the
// only one whose backing store is implicit (framebuffer 0) and the
// only one the Manager itself tears down.
func New(native NativeContext, windowSize Size) *Manager {
	m := &Manager{
		native:  native,
		targets: newRegistry(),
	}
	m.windowHandle = m.handles.Next()
	m.targets.insert(m.windowHandle, &record{isWindow: true, size: windowSize})
	m.window = &RenderWindow{m: m}
	return m
}

// CreateRenderTarget allocates a framebuffer-backed render target of
// the given size and attachment configuration. sample may be nil to
// use DefaultSampleParams; label, when non-empty, is attached to the
// framebuffer for debug tooling.
//
// Creation is transparent to any in-progress drawing: the context's
// bound draw/read framebuffers are saved before configuration and
// restored afterwards. A request with a non-positive dimension fails
// with *InvalidSizeError before any native allocation. An incomplete
// framebuffer after this construction recipe indicates a bug in this
// package and panics.
func (m *Manager) CreateRenderTarget(size Size, format FormatParams, sample *SampleParams, label string) (*RenderTexture, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, &InvalidSizeError{Size: size}
	}

	sp := DefaultSampleParams()
	if sample != nil {
		sp = *sample
	}

	savedDraw, savedRead := m.native.BoundFramebuffers()

	fb := m.native.CreateFramebuffer()
	m.native.BindFramebuffer(fb)
	if label != "" {
		m.native.LabelFramebuffer(fb, label)
	}

	tex := m.native.CreateTexture(format.Color.Storage(), size, sp)
	m.native.AttachColorTexture(fb, tex)

	rec := &record{
		size:         size,
		framebuffer:  fb,
		colorTexture: tex,
	}

	if format.DepthStencil {
		rec.depthStencil = m.native.CreateDepthStencilBuffer(size)
		rec.hasDepthStencil = true
		m.native.AttachDepthStencil(fb, rec.depthStencil)
	}

	if !m.native.FramebufferComplete(fb) {
		panic("fbo: framebuffer incomplete after attachment setup")
	}

	m.native.BindDrawFramebuffer(savedDraw)
	m.native.BindReadFramebuffer(savedRead)

	w, h := uint64(size.Width), uint64(size.Height)
	rec.pressure = format.Color.BytesPerPixel() * w * h
	if format.DepthStencil {
		rec.pressure += depthStencilBytesPerPixel * w * h
	}

	handle := m.handles.Next()
	m.targets.insert(handle, rec)

	Logger().Debug("render target created",
		"handle", uint64(handle),
		"size", size,
		"format", format.Color,
		"depthStencil", format.DepthStencil,
		"pressure", rec.pressure,
		"label", label)

	return newRenderTexture(m, handle, size, rec.pressure), nil
}

// WindowTarget returns the singular window target. The returned
// wrapper is shared and cannot be disposed.
func (m *Manager) WindowTarget() *RenderWindow {
	return m.window
}

// Bind makes a target the current drawing destination. Binding the
// already-bound target is elided without a native call. Binding a
// target whose handle is no longer registered panics: the caller held
// a wrapper past its disposal.
func (m *Manager) Bind(t Target) {
	h := t.Handle()
	if m.boundValid && m.bound == h {
		return
	}
	rec := m.targets.get(h)
	if rec.isWindow {
		m.native.BindFramebuffer(0)
	} else {
		m.native.BindFramebuffer(rec.framebuffer)
	}
	m.bound = h
	m.boundValid = true
}

// OnWindowResize records the new size of the window framebuffer. Only
// the window record's size changes; no native objects are allocated
// or freed. Call it from the windowing layer's resize notification.
func (m *Manager) OnWindowResize(size Size) {
	m.targets.get(m.windowHandle).size = size
}

// EndFrame drains the deferred disposal queue and destroys every
// render target released since the previous frame. Call it once per
// frame on the owning thread, outside any in-progress draw sequence.
// Handles released while the drain runs are picked up next frame.
func (m *Manager) EndFrame() {
	pending := m.queue.drain()
	for _, h := range pending {
		// The queue only ever carries texture handles, and each at
		// most once, so the error path here is unreachable.
		_ = m.destroy(h)
	}
	if len(pending) > 0 {
		Logger().Debug("disposal queue drained", "count", len(pending))
	}
}

// Targets reports the number of live render targets, the window
// target included.
func (m *Manager) Targets() int {
	return m.targets.len()
}

// TotalMemoryPressure returns the summed advisory memory estimate of
// all live render targets in bytes. The window record contributes
// nothing; its backing store is owned by the windowing system.
func (m *Manager) TotalMemoryPressure() uint64 {
	var total uint64
	for _, rec := range m.targets.records {
		total += rec.pressure
	}
	return total
}

// destroy deletes a target's native objects and removes its record.
// Destroying an absent handle is a no-op, supporting idempotent
// dispose. Destroying the window handle is refused with
// ErrWindowTarget.
func (m *Manager) destroy(h Handle) error {
	rec, ok := m.targets.lookup(h)
	if !ok {
		return nil
	}
	if rec.isWindow {
		Logger().Warn("dispose attempted on window target", "handle", uint64(h))
		return ErrWindowTarget
	}

	m.native.DeleteFramebuffer(rec.framebuffer)
	m.native.DeleteTexture(rec.colorTexture)
	if rec.hasDepthStencil {
		m.native.DeleteDepthStencilBuffer(rec.depthStencil)
	}
	m.targets.remove(h)

	// The bound target can only be gone because it was just
	// destroyed on this thread; invalidate so the next Bind reissues.
	if m.boundValid && m.bound == h {
		m.boundValid = false
	}

	Logger().Debug("render target destroyed", "handle", uint64(h), "pressure", rec.pressure)
	return nil
}
