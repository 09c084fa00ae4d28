// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textatlas/text"
)

// GlyphRunCommand is one recorded DrawGlyphs call.
type GlyphRunCommand struct {
	Matrix    text.Matrix
	GlyphIDs  []text.GlyphID
	Positions []text.Point
	Font      text.Font
	Paint     Paint
}

// AtlasCommand is one recorded DrawAtlas call.
type AtlasCommand struct {
	Texture  Texture
	Matrices []text.Matrix
	Rects    []text.Rect
	Colors   []color.RGBA
	Alphas   []float32
}

// RecordingSurface captures the draw commands issued against its canvas
// instead of rasterizing them. It backs tests and headless atlas builds;
// GPU hosts register their own factory over it.
type RecordingSurface struct {
	width     int
	height    int
	alphaOnly bool
	canvas    *RecordingCanvas
	texture   *RecordedTexture
}

// NewRecordingSurface creates a recording surface of the given size.
func NewRecordingSurface(ctx *Context, width, height int, alphaOnly bool) *RecordingSurface {
	s := &RecordingSurface{
		width:     width,
		height:    height,
		alphaOnly: alphaOnly,
	}
	s.texture = &RecordedTexture{
		width:     uint32(width),
		height:    uint32(height),
		alphaOnly: alphaOnly,
	}
	s.canvas = &RecordingCanvas{
		ctx:     ctx,
		matrix:  text.IdentityMatrix(),
		surface: s,
	}
	return s
}

// Width returns the surface width in pixels.
func (s *RecordingSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *RecordingSurface) Height() int { return s.height }

// Canvas returns the recording canvas.
func (s *RecordingSurface) Canvas() Canvas { return s.canvas }

// Texture returns the recorded texture handle. The handle carries the
// commands that produced the page, so hosts replaying the recording can
// rasterize it later.
func (s *RecordingSurface) Texture() Texture {
	s.texture.GlyphRuns = s.canvas.GlyphRuns
	return s.texture
}

// RecordingCanvas implements Canvas by appending commands.
type RecordingCanvas struct {
	ctx     *Context
	matrix  text.Matrix
	surface *RecordingSurface

	GlyphRuns []GlyphRunCommand
	Atlases   []AtlasCommand
}

// NewRecordingCanvas returns a standalone recording canvas, e.g. for
// capturing drawAtlas batches at the draw site.
func NewRecordingCanvas(ctx *Context) *RecordingCanvas {
	return &RecordingCanvas{ctx: ctx, matrix: text.IdentityMatrix()}
}

// Matrix returns the current transform.
func (c *RecordingCanvas) Matrix() text.Matrix { return c.matrix }

// SetMatrix replaces the current transform.
func (c *RecordingCanvas) SetMatrix(m text.Matrix) { c.matrix = m }

// Concat pre-concatenates m onto the current transform, so m applies to
// drawn geometry before the existing transform.
func (c *RecordingCanvas) Concat(m text.Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// DrawGlyphs records one text run under the current transform. The slices
// are copied; callers may reuse their buffers.
func (c *RecordingCanvas) DrawGlyphs(ids []text.GlyphID, positions []text.Point, font text.Font, paint Paint) {
	if len(ids) == 0 {
		return
	}
	cmd := GlyphRunCommand{
		Matrix:    c.matrix,
		GlyphIDs:  append([]text.GlyphID(nil), ids...),
		Positions: append([]text.Point(nil), positions...),
		Font:      font,
		Paint:     paint,
	}
	c.GlyphRuns = append(c.GlyphRuns, cmd)
}

// DrawAtlas records one sprite batch.
func (c *RecordingCanvas) DrawAtlas(texture Texture, matrices []text.Matrix, rects []text.Rect, colors []color.RGBA, alphas []float32) {
	if len(matrices) == 0 {
		return
	}
	cmd := AtlasCommand{
		Texture:  texture,
		Matrices: append([]text.Matrix(nil), matrices...),
		Rects:    append([]text.Rect(nil), rects...),
		Alphas:   append([]float32(nil), alphas...),
	}
	if colors != nil {
		cmd.Colors = append([]color.RGBA(nil), colors...)
	}
	c.Atlases = append(c.Atlases, cmd)
}

// Context returns the context the canvas draws with.
func (c *RecordingCanvas) Context() *Context { return c.ctx }

// RecordedTexture is a CPU texture handle produced by a recording surface.
// It satisfies Texture without holding GPU memory; Pixmap lazily allocates
// an image of the page extent for hosts that rasterize on the CPU.
type RecordedTexture struct {
	width     uint32
	height    uint32
	alphaOnly bool
	destroyed bool

	// GlyphRuns are the commands that produced this page.
	GlyphRuns []GlyphRunCommand
}

// Width returns the texture width in pixels.
func (t *RecordedTexture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *RecordedTexture) Height() uint32 { return t.height }

// Format returns the page pixel format.
func (t *RecordedTexture) Format() gputypes.TextureFormat {
	if t.alphaOnly {
		return MaskPageFormat
	}
	return ColorPageFormat
}

// Destroy marks the handle released.
func (t *RecordedTexture) Destroy() {
	t.destroyed = true
	t.GlyphRuns = nil
}

// Destroyed reports whether Destroy was called.
func (t *RecordedTexture) Destroyed() bool { return t.destroyed }

// Pixmap allocates a CPU image of the page extent: alpha-only for mask
// pages, RGBA for color pages.
func (t *RecordedTexture) Pixmap() image.Image {
	rect := image.Rect(0, 0, int(t.width), int(t.height))
	if t.alphaOnly {
		return image.NewAlpha(rect)
	}
	return image.NewRGBA(rect)
}

func init() {
	RegisterSurfaceFactory(func(ctx *Context, width, height int, alphaOnly bool) (Surface, error) {
		return NewRecordingSurface(ctx, width, height, alphaOnly), nil
	})
}

// Interface checks.
var (
	_ Surface = (*RecordingSurface)(nil)
	_ Canvas  = (*RecordingCanvas)(nil)
	_ Texture = (*RecordedTexture)(nil)
)
