// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// ColorFormat specifies the portable storage format of a render
// target's color attachment. The mapping to native storage formats is
// total over the declared constants; passing any other value is a
// programming error and panics.
type ColorFormat uint8

// Color formats.
const (
	// RGBA8 is 8-bit RGBA, normalized unsigned integer. 4 bytes/pixel.
	RGBA8 ColorFormat = iota

	// RGBA16F is 16-bit RGBA, floating point. 8 bytes/pixel.
	RGBA16F

	// RGBA8SRGB is 8-bit RGBA in sRGB color space. 4 bytes/pixel.
	RGBA8SRGB

	// R11G11B10F is packed 11/11/10-bit RGB, floating point,
	// no alpha. 4 bytes/pixel.
	R11G11B10F

	// R32F is 32-bit red channel only, floating point. 4 bytes/pixel.
	R32F

	// RG32F is 32-bit RG, floating point. 8 bytes/pixel.
	RG32F

	// R8 is 8-bit red channel only, normalized unsigned integer.
	// 1 byte/pixel.
	R8
)

// StorageFormat is a native sized internal storage format as consumed
// by NativeContext.CreateTexture. Values are the OpenGL sized internal
// format enumerants so backend/gl can pass them through unchanged.
type StorageFormat uint32

// Native storage formats.
const (
	StorageRGBA8           StorageFormat = 0x8058 // GL_RGBA8
	StorageRGBA16F         StorageFormat = 0x881A // GL_RGBA16F
	StorageSRGB8Alpha8     StorageFormat = 0x8C43 // GL_SRGB8_ALPHA8
	StorageR11FG11FB10F    StorageFormat = 0x8C3A // GL_R11F_G11F_B10F
	StorageR32F            StorageFormat = 0x822E // GL_R32F
	StorageRG32F           StorageFormat = 0x8230 // GL_RG32F
	StorageR8              StorageFormat = 0x8229 // GL_R8
	StorageDepth24Stencil8 StorageFormat = 0x88F0 // GL_DEPTH24_STENCIL8
)

// depthStencilBytesPerPixel is the fixed footprint of the combined
// depth-stencil store (24-bit depth, 8-bit stencil).
const depthStencilBytesPerPixel = 4

// FormatParams selects the attachment configuration of a render target.
type FormatParams struct {
	// Color is the storage format of the color attachment.
	Color ColorFormat

	// DepthStencil requests a combined depth-stencil attachment of
	// matching size alongside the color attachment.
	DepthStencil bool
}

// formatInfo binds a ColorFormat to its native storage format and
// per-pixel footprint.
type formatInfo struct {
	storage       StorageFormat
	bytesPerPixel uint64
	name          string
}

// colorFormats is the format table, indexed by ColorFormat. The table
// is total and injective over the declared constants.
var colorFormats = [...]formatInfo{
	RGBA8:      {StorageRGBA8, 4, "RGBA8"},
	RGBA16F:    {StorageRGBA16F, 8, "RGBA16F"},
	RGBA8SRGB:  {StorageSRGB8Alpha8, 4, "RGBA8SRGB"},
	R11G11B10F: {StorageR11FG11FB10F, 4, "R11G11B10F"},
	R32F:       {StorageR32F, 4, "R32F"},
	RG32F:      {StorageRG32F, 8, "RG32F"},
	R8:         {StorageR8, 1, "R8"},
}

func (f ColorFormat) info() formatInfo {
	if int(f) >= len(colorFormats) {
		panic(fmt.Sprintf("fbo: unknown color format %d", uint8(f)))
	}
	return colorFormats[f]
}

// Storage returns the native storage format backing f.
func (f ColorFormat) Storage() StorageFormat {
	return f.info().storage
}

// BytesPerPixel returns the per-pixel footprint of f in bytes.
func (f ColorFormat) BytesPerPixel() uint64 {
	return f.info().bytesPerPixel
}

// String returns the format name.
func (f ColorFormat) String() string {
	if int(f) >= len(colorFormats) {
		return fmt.Sprintf("ColorFormat(%d)", uint8(f))
	}
	return colorFormats[f].name
}

// TextureFormat returns the gputypes portable format corresponding to
// f, or gputypes.TextureFormatUndefined when gputypes declares no
// counterpart for it.
func (f ColorFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case RGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case R8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FromTextureFormat maps a gputypes portable format onto a
// ColorFormat. The second return value reports whether the format has
// a counterpart in this package's color-format set.
func FromTextureFormat(tf gputypes.TextureFormat) (ColorFormat, bool) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA8, true
	case gputypes.TextureFormatR8Unorm:
		return R8, true
	default:
		return 0, false
	}
}
