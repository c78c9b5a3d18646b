// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import "fmt"

// recordingContext is a NativeContext that hands out fake object
// names and counts every native call, so tests can assert how often
// the Manager actually reached into the context.
type recordingContext struct {
	nextName uint32

	boundDraw uint32
	boundRead uint32

	bindCalls   int
	createCalls int

	framebuffers  map[uint32]bool
	textures      map[uint32]bool
	renderbuffers map[uint32]bool

	deletedFramebuffers  []uint32
	deletedTextures      []uint32
	deletedRenderbuffers []uint32

	labels map[uint32]string

	lastFormat StorageFormat
	lastSample SampleParams

	// incomplete forces FramebufferComplete to report failure.
	incomplete bool
}

func newRecordingContext() *recordingContext {
	return &recordingContext{
		framebuffers:  make(map[uint32]bool),
		textures:      make(map[uint32]bool),
		renderbuffers: make(map[uint32]bool),
		labels:        make(map[uint32]string),
	}
}

func (c *recordingContext) name() uint32 {
	c.nextName++
	return c.nextName
}

func (c *recordingContext) CreateFramebuffer() uint32 {
	c.createCalls++
	id := c.name()
	c.framebuffers[id] = true
	return id
}

func (c *recordingContext) DeleteFramebuffer(id uint32) {
	if !c.framebuffers[id] {
		panic(fmt.Sprintf("recordingContext: delete of unknown framebuffer %d", id))
	}
	delete(c.framebuffers, id)
	c.deletedFramebuffers = append(c.deletedFramebuffers, id)
}

func (c *recordingContext) BindFramebuffer(id uint32) {
	c.bindCalls++
	c.boundDraw = id
	c.boundRead = id
}

func (c *recordingContext) BindDrawFramebuffer(id uint32) {
	c.boundDraw = id
}

func (c *recordingContext) BindReadFramebuffer(id uint32) {
	c.boundRead = id
}

func (c *recordingContext) BoundFramebuffers() (draw, read uint32) {
	return c.boundDraw, c.boundRead
}

func (c *recordingContext) LabelFramebuffer(id uint32, label string) {
	c.labels[id] = label
}

func (c *recordingContext) CreateTexture(format StorageFormat, size Size, sample SampleParams) uint32 {
	c.createCalls++
	c.lastFormat = format
	c.lastSample = sample
	id := c.name()
	c.textures[id] = true
	return id
}

func (c *recordingContext) DeleteTexture(id uint32) {
	if !c.textures[id] {
		panic(fmt.Sprintf("recordingContext: delete of unknown texture %d", id))
	}
	delete(c.textures, id)
	c.deletedTextures = append(c.deletedTextures, id)
}

func (c *recordingContext) AttachColorTexture(framebuffer, texture uint32) {
	if !c.framebuffers[framebuffer] || !c.textures[texture] {
		panic("recordingContext: attach with unknown object")
	}
}

func (c *recordingContext) CreateDepthStencilBuffer(size Size) uint32 {
	c.createCalls++
	id := c.name()
	c.renderbuffers[id] = true
	return id
}

func (c *recordingContext) DeleteDepthStencilBuffer(id uint32) {
	if !c.renderbuffers[id] {
		panic(fmt.Sprintf("recordingContext: delete of unknown renderbuffer %d", id))
	}
	delete(c.renderbuffers, id)
	c.deletedRenderbuffers = append(c.deletedRenderbuffers, id)
}

func (c *recordingContext) AttachDepthStencil(framebuffer, renderbuffer uint32) {
	if !c.framebuffers[framebuffer] || !c.renderbuffers[renderbuffer] {
		panic("recordingContext: attach with unknown object")
	}
}

func (c *recordingContext) FramebufferComplete(id uint32) bool {
	return !c.incomplete && c.framebuffers[id]
}

// Ensure recordingContext implements NativeContext.
var _ NativeContext = (*recordingContext)(nil)
