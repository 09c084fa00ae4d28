// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/textatlas/text"
)

// Paint describes how one text run is painted onto an atlas page.
type Paint struct {
	Style       text.PaintStyle
	StrokeWidth float32
	Color       color.RGBA
}

// Canvas is the 2D drawing interface the atlas drives. Surfaces provide a
// canvas for page rasterization; the host's frame canvas receives the
// drawAtlas batches.
//
// Canvases are stateful (current transform) and confined to the rendering
// thread.
type Canvas interface {
	// Matrix returns the current transform.
	Matrix() text.Matrix

	// SetMatrix replaces the current transform.
	SetMatrix(m text.Matrix)

	// Concat pre-concatenates m onto the current transform, so m applies
	// to drawn geometry first.
	Concat(m text.Matrix)

	// DrawGlyphs draws one text run: glyph indices with per-glyph
	// positions, a font, and a paint. ids and positions are parallel.
	DrawGlyphs(ids []text.GlyphID, positions []text.Point, font text.Font, paint Paint)

	// DrawAtlas draws count sprites from texture: for each i, the source
	// rectangle rects[i] transformed by matrices[i], modulated by colors[i]
	// (nil for color pages) and alphas[i]. All slices are parallel.
	DrawAtlas(texture Texture, matrices []text.Matrix, rects []text.Rect, colors []color.RGBA, alphas []float32)

	// Context returns the context the canvas draws with.
	Context() *Context
}
