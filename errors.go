// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrWindowTarget is returned when the caller attempts to dispose
	// the window target. The window target is torn down only by the
	// Manager that owns it, never through the dispose path.
	ErrWindowTarget = errors.New("fbo: window target cannot be disposed")
)

// InvalidSizeError indicates a render-target creation request with a
// non-positive width or height. No native resources are allocated when
// this error is returned.
type InvalidSizeError struct {
	Size Size
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("fbo: invalid render target size %dx%d", e.Size.Width, e.Size.Height)
}
