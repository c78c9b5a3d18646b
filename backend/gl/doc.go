// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gl implements fbo.NativeContext over OpenGL 3.3 core using
// go-gl bindings.
//
// The package assumes a current OpenGL context on the calling thread:
// call Init once after making the context current (for example after
// glfw's MakeContextCurrent), then hand NewContext to fbo.New. Every
// method must run on that same thread; neither the context nor the
// underlying bindings are thread-safe.
package gl
