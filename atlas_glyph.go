package textatlas

import "github.com/gogpu/textatlas/text"

// AtlasGlyph schedules one styled glyph bitmap for packing: a shared
// SimpleGlyph plus the paint style and stroke width it is rasterized with.
// A StrokeAndFill document glyph yields two AtlasGlyphs.
type AtlasGlyph struct {
	glyph       *text.SimpleGlyph
	strokeWidth float32
	style       text.PaintStyle
}

// NewFillAtlasGlyph schedules the fill rendition of a glyph.
func NewFillAtlasGlyph(glyph *text.SimpleGlyph) *AtlasGlyph {
	return &AtlasGlyph{glyph: glyph, style: text.PaintStyleFill}
}

// NewStrokeAtlasGlyph schedules the stroked rendition of a glyph.
func NewStrokeAtlasGlyph(glyph *text.SimpleGlyph, strokeWidth float32) *AtlasGlyph {
	return &AtlasGlyph{glyph: glyph, strokeWidth: strokeWidth, style: text.PaintStyleStroke}
}

// GlyphID returns the glyph index within the typeface.
func (g *AtlasGlyph) GlyphID() text.GlyphID { return g.glyph.GlyphID() }

// Bounds returns the glyph's ink bounds, before stroke inflation.
func (g *AtlasGlyph) Bounds() text.Rect { return g.glyph.Bounds() }

// Font returns the font the glyph was resolved with.
func (g *AtlasGlyph) Font() text.Font { return g.glyph.Font() }

// Style returns the paint style the bitmap is rasterized with.
func (g *AtlasGlyph) Style() text.PaintStyle { return g.style }

// StrokeWidth returns the stroke width, zero for fill glyphs.
func (g *AtlasGlyph) StrokeWidth() float32 { return g.strokeWidth }

// ComputeStyleKey appends the batching identity: glyphs sharing a style key
// can be drawn in one text run with one paint.
func (g *AtlasGlyph) ComputeStyleKey(key *text.BytesKey) {
	key.WriteUint32(uint32(g.style))
	key.WriteFloat32(g.strokeWidth)
	var typefaceID uint32
	if tf := g.Font().Typeface(); tf != nil {
		typefaceID = tf.UniqueID()
	}
	key.WriteUint32(typefaceID)
	key.WriteFloat32(g.Font().Size())
}

// ComputeAtlasKey appends the bitmap identity used by the locator map: the
// SimpleGlyph key followed by the style and stroke width.
func (g *AtlasGlyph) ComputeAtlasKey(key *text.BytesKey) {
	g.glyph.ComputeAtlasKey(key)
	key.WriteUint32(uint32(g.style))
	key.WriteFloat32(g.strokeWidth)
}
