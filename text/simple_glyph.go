package text

// SimpleGlyph is one glyph of a tokenized document: the glyph index, the
// UTF-8 character name it was resolved from, and the font that resolved it.
// SimpleGlyphs are created once per document build and shared between the
// document, its display glyphs, and the atlas.
//
// SimpleGlyph is immutable after construction apart from the memoized
// bounds.
type SimpleGlyph struct {
	glyphID GlyphID
	name    string
	font    Font

	bounds      Rect
	boundsValid bool
}

// NewSimpleGlyph creates a glyph record for a resolved character.
func NewSimpleGlyph(glyphID GlyphID, name string, font Font) *SimpleGlyph {
	return &SimpleGlyph{glyphID: glyphID, name: name, font: font}
}

// GlyphID returns the glyph index within the typeface.
func (g *SimpleGlyph) GlyphID() GlyphID { return g.glyphID }

// Name returns the UTF-8 character name the glyph was resolved from.
func (g *SimpleGlyph) Name() string { return g.name }

// Font returns the font the glyph was resolved with.
func (g *SimpleGlyph) Font() Font { return g.font }

// Bounds returns the glyph's ink bounds at the font size. The first call
// queries the typeface; subsequent calls return the memoized value.
func (g *SimpleGlyph) Bounds() Rect {
	if !g.boundsValid {
		g.bounds = g.font.GlyphBounds(g.glyphID)
		g.boundsValid = true
	}
	return g.bounds
}

// ComputeAtlasKey appends the glyph's bitmap identity to key: the glyph
// index with the synthesis flags folded in, then the typeface ID. The font
// size is deliberately absent; atlas bitmaps are shared across sizes and
// scaled at draw time by the atlas-wide scale.
func (g *SimpleGlyph) ComputeAtlasKey(key *BytesKey) {
	flags := uint32(g.glyphID)
	if g.font.FauxBold() {
		flags |= 1 << 16
	}
	if g.font.FauxItalic() {
		flags |= 1 << 17
	}
	key.WriteUint32(flags)
	var typefaceID uint32
	if tf := g.font.Typeface(); tf != nil {
		typefaceID = tf.UniqueID()
	}
	key.WriteUint32(typefaceID)
}
