// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import "github.com/gogpu/gputypes"

// Size is the pixel dimensions of a render target.
type Size struct {
	Width  int
	Height int
}

// SampleParams is the filtering and wrap configuration applied to a
// render target's color attachment at creation time. The field types
// come from gputypes so hosts in the gogpu ecosystem can pass their
// sampler configuration through unchanged.
type SampleParams struct {
	// MinFilter is the minification filter.
	MinFilter gputypes.FilterMode

	// MagFilter is the magnification filter.
	MagFilter gputypes.FilterMode

	// AddressU is the wrap mode along the horizontal axis.
	AddressU gputypes.AddressMode

	// AddressV is the wrap mode along the vertical axis.
	AddressV gputypes.AddressMode
}

// DefaultSampleParams returns the sampling configuration used when
// CreateRenderTarget is called with nil sample parameters: linear
// filtering, clamp-to-edge wrapping.
func DefaultSampleParams() SampleParams {
	return SampleParams{
		MinFilter: gputypes.FilterModeLinear,
		MagFilter: gputypes.FilterModeLinear,
		AddressU:  gputypes.AddressModeClampToEdge,
		AddressV:  gputypes.AddressModeClampToEdge,
	}
}

// NativeContext is the graphics context the Manager drives. It wraps
// the framebuffer-object primitives of the underlying API (backend/gl
// implements it over OpenGL). All methods are synchronous and must be
// called only from the owning thread; the native context is not
// thread-safe.
//
// Object identifiers returned by the Create methods are native names,
// never exposed outside this package. Framebuffer 0 is the window
// framebuffer provided by the windowing system.
type NativeContext interface {
	// CreateFramebuffer allocates a new framebuffer object.
	CreateFramebuffer() uint32

	// DeleteFramebuffer releases a framebuffer object.
	DeleteFramebuffer(id uint32)

	// BindFramebuffer binds a framebuffer for both drawing and
	// reading. Binding 0 selects the window framebuffer.
	BindFramebuffer(id uint32)

	// BindDrawFramebuffer binds a framebuffer for drawing only.
	BindDrawFramebuffer(id uint32)

	// BindReadFramebuffer binds a framebuffer for reading only.
	BindReadFramebuffer(id uint32)

	// BoundFramebuffers reports the currently bound draw and read
	// framebuffers, allowing callers to save and restore binding
	// state around configuration work.
	BoundFramebuffers() (draw, read uint32)

	// LabelFramebuffer attaches a debug label to a framebuffer.
	// Implementations without debug-label support may ignore it.
	LabelFramebuffer(id uint32, label string)

	// CreateTexture allocates a texture with immutable storage of the
	// given format and size and applies the sample parameters.
	CreateTexture(format StorageFormat, size Size, sample SampleParams) uint32

	// DeleteTexture releases a texture object.
	DeleteTexture(id uint32)

	// AttachColorTexture attaches a texture as color attachment 0 of
	// a framebuffer.
	AttachColorTexture(framebuffer, texture uint32)

	// CreateDepthStencilBuffer allocates a combined depth-stencil
	// renderbuffer of the given size.
	CreateDepthStencilBuffer(size Size) uint32

	// DeleteDepthStencilBuffer releases a depth-stencil renderbuffer.
	DeleteDepthStencilBuffer(id uint32)

	// AttachDepthStencil attaches a renderbuffer as the combined
	// depth-stencil attachment of a framebuffer.
	AttachDepthStencil(framebuffer, renderbuffer uint32)

	// FramebufferComplete reports whether a framebuffer has a
	// complete attachment set and can be rendered to.
	FramebufferComplete(id uint32) bool
}
