// Package texttest provides fake typefaces and font managers for tests.
// Fakes report deterministic metrics derived from their configuration, so
// atlas tests can assert exact geometry without parsing font files.
package texttest

import (
	"sync/atomic"

	"github.com/gogpu/textatlas/text"
)

// nextID keeps fake typefaces unique across a test binary, matching the
// process-unique contract of real backends.
var nextID atomic.Uint32

// Typeface is a configurable fake. Glyph indices are assigned per name in
// first-lookup order starting at 1; names listed in Missing resolve to 0.
type Typeface struct {
	id    uint32
	color bool

	// GlyphWidth and GlyphHeight give every glyph the same ink bounds,
	// anchored at (BoundsX, BoundsY).
	GlyphWidth  float32
	GlyphHeight float32
	BoundsX     float32
	BoundsY     float32

	// Advance is the horizontal advance of every glyph.
	Advance float32

	// Missing names resolve to glyph index zero.
	Missing map[string]bool

	// BoundsOverride replaces the uniform bounds for specific names.
	BoundsOverride map[string]text.Rect

	names   map[string]text.GlyphID
	byIndex map[text.GlyphID]string
}

// NewTypeface creates a fake outline typeface with 10x12 glyphs.
func NewTypeface() *Typeface {
	return &Typeface{
		id:          nextID.Add(1),
		GlyphWidth:  10,
		GlyphHeight: 12,
		BoundsY:     -12,
		Advance:     11,
		names:       make(map[string]text.GlyphID),
		byIndex:     make(map[text.GlyphID]string),
	}
}

// NewColorTypeface creates a fake color (emoji) typeface.
func NewColorTypeface() *Typeface {
	tf := NewTypeface()
	tf.color = true
	return tf
}

// UniqueID implements text.Typeface.
func (t *Typeface) UniqueID() uint32 { return t.id }

// HasColor implements text.Typeface.
func (t *Typeface) HasColor() bool { return t.color }

// GlyphID implements text.Typeface.
func (t *Typeface) GlyphID(name string) text.GlyphID {
	if t.Missing[name] {
		return 0
	}
	if id, ok := t.names[name]; ok {
		return id
	}
	id := text.GlyphID(len(t.names) + 1)
	t.names[name] = id
	t.byIndex[id] = name
	return id
}

// GlyphBounds implements text.Typeface. The fake's bounds are independent
// of size, keeping test geometry exact.
func (t *Typeface) GlyphBounds(id text.GlyphID, _ float32) text.Rect {
	if id == 0 {
		return text.Rect{}
	}
	if name, ok := t.byIndex[id]; ok {
		if r, ok := t.BoundsOverride[name]; ok {
			return r
		}
	}
	return text.MakeXYWH(t.BoundsX, t.BoundsY, t.GlyphWidth, t.GlyphHeight)
}

// GlyphAdvance implements text.Typeface.
func (t *Typeface) GlyphAdvance(id text.GlyphID, _ float32, vertical bool) float32 {
	if id == 0 {
		return 0
	}
	if vertical {
		return t.GlyphHeight + 2
	}
	return t.Advance
}

// GlyphVerticalOffset implements text.Typeface.
func (t *Typeface) GlyphVerticalOffset(id text.GlyphID, size float32) text.Point {
	return text.Point{X: -t.GlyphAdvance(id, size, false) * 0.5, Y: -t.GlyphHeight}
}

// Metrics implements text.Typeface.
func (t *Typeface) Metrics(_ float32) text.FontMetrics {
	return text.FontMetrics{
		Ascent:    -t.GlyphHeight,
		Descent:   t.GlyphHeight * 0.25,
		CapHeight: t.GlyphHeight,
		XHeight:   t.GlyphHeight * 0.5,
	}
}

// GlyphPath implements text.Typeface: a rectangle matching the glyph
// bounds.
func (t *Typeface) GlyphPath(id text.GlyphID, size float32, path *text.Path) bool {
	if id == 0 || path == nil {
		return false
	}
	bounds := t.GlyphBounds(id, size)
	path.Reset()
	path.MoveTo(text.Point{X: bounds.MinX, Y: bounds.MinY})
	path.LineTo(text.Point{X: bounds.MaxX, Y: bounds.MinY})
	path.LineTo(text.Point{X: bounds.MaxX, Y: bounds.MaxY})
	path.LineTo(text.Point{X: bounds.MinX, Y: bounds.MaxY})
	path.Close()
	return true
}

// FontManager is a fake text.FontManager resolving every family to Primary
// and every fallback to Fallback.
type FontManager struct {
	// Primary is returned by TypefaceWithoutFallback, nil for none.
	Primary *Typeface

	// Fallback is returned by FallbackTypeface, nil for none.
	Fallback *Typeface
}

// TypefaceWithoutFallback implements text.FontManager.
func (m *FontManager) TypefaceWithoutFallback(_, _ string) text.Typeface {
	if m.Primary == nil {
		return nil
	}
	return m.Primary
}

// FallbackTypeface implements text.FontManager.
func (m *FontManager) FallbackTypeface(name string) (text.Typeface, text.GlyphID) {
	if m.Fallback == nil {
		return nil, 0
	}
	return m.Fallback, m.Fallback.GlyphID(name)
}

var (
	_ text.Typeface    = (*Typeface)(nil)
	_ text.FontManager = (*FontManager)(nil)
)
