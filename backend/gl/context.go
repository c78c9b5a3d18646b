// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fbo"
)

// Init loads the OpenGL function pointers for the current context.
// Call it once on the owning thread after the context is made current
// and before constructing a Context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl: init: %w", err)
	}
	return nil
}

// Context drives the OpenGL framebuffer-object API for a Manager.
type Context struct{}

// NewContext returns a NativeContext over the current OpenGL context.
func NewContext() *Context {
	return &Context{}
}

// CreateFramebuffer allocates a framebuffer object.
func (c *Context) CreateFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

// DeleteFramebuffer releases a framebuffer object.
func (c *Context) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

// BindFramebuffer binds a framebuffer for drawing and reading.
func (c *Context) BindFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
}

// BindDrawFramebuffer binds a framebuffer for drawing only.
func (c *Context) BindDrawFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, id)
}

// BindReadFramebuffer binds a framebuffer for reading only.
func (c *Context) BindReadFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, id)
}

// BoundFramebuffers reports the current draw and read bindings.
func (c *Context) BoundFramebuffers() (draw, read uint32) {
	var d, r int32
	gl.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &d)
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &r)
	return uint32(d), uint32(r)
}

// LabelFramebuffer is a no-op: GL 3.3 core predates KHR_debug object
// labels.
func (c *Context) LabelFramebuffer(id uint32, label string) {}

// CreateTexture allocates a 2D texture with the given sized internal
// format and applies the sample parameters. The texture has a single
// mip level and undefined contents.
func (c *Context) CreateTexture(format fbo.StorageFormat, size fbo.Size, sample fbo.SampleParams) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(sample.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(sample.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, addressMode(sample.AddressU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, addressMode(sample.AddressV))

	transfer, xtype := transferFormat(format)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(size.Width), int32(size.Height), 0, transfer, xtype, nil)
	return id
}

// DeleteTexture releases a texture object.
func (c *Context) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// AttachColorTexture attaches a texture as color attachment 0.
func (c *Context) AttachColorTexture(framebuffer, texture uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)
}

// CreateDepthStencilBuffer allocates a combined depth-stencil
// renderbuffer.
func (c *Context) CreateDepthStencilBuffer(size fbo.Size) uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(size.Width), int32(size.Height))
	return id
}

// DeleteDepthStencilBuffer releases a renderbuffer object.
func (c *Context) DeleteDepthStencilBuffer(id uint32) {
	gl.DeleteRenderbuffers(1, &id)
}

// AttachDepthStencil attaches a renderbuffer as the combined
// depth-stencil attachment.
func (c *Context) AttachDepthStencil(framebuffer, renderbuffer uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, renderbuffer)
}

// FramebufferComplete reports whether a framebuffer can be rendered to.
func (c *Context) FramebufferComplete(id uint32) bool {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
	return gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
}

// filterMode maps a portable filter mode to its GL parameter. Only
// linear filtering is meaningful for render-target sampling here;
// every other mode falls back to nearest.
func filterMode(m gputypes.FilterMode) int32 {
	if m == gputypes.FilterModeLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// addressMode maps a portable address mode to its GL wrap parameter.
// Render targets are sampled edge-clamped unless repeat wrapping is
// asked for explicitly.
func addressMode(m gputypes.AddressMode) int32 {
	if m == gputypes.AddressModeClampToEdge {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

// transferFormat returns the pixel transfer format and type matching a
// sized internal format. The texture is allocated without data, so
// these only have to be a legal combination for the internal format.
func transferFormat(format fbo.StorageFormat) (transfer, xtype uint32) {
	switch format {
	case fbo.StorageRGBA16F:
		return gl.RGBA, gl.FLOAT
	case fbo.StorageR11FG11FB10F:
		return gl.RGB, gl.FLOAT
	case fbo.StorageR32F:
		return gl.RED, gl.FLOAT
	case fbo.StorageRG32F:
		return gl.RG, gl.FLOAT
	case fbo.StorageR8:
		return gl.RED, gl.UNSIGNED_BYTE
	default:
		return gl.RGBA, gl.UNSIGNED_BYTE
	}
}

// Ensure Context implements fbo.NativeContext.
var _ fbo.NativeContext = (*Context)(nil)
