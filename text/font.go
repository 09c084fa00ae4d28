package text

// GlyphID is a glyph index within a typeface. Zero is the missing-glyph
// (tofu) index.
type GlyphID uint16

// FontMetrics holds typeface-wide metrics at a given size, in pixels with
// y growing down: Ascent is negative (above the baseline), Descent positive.
type FontMetrics struct {
	Ascent    float32
	Descent   float32
	CapHeight float32
	XHeight   float32
}

// Typeface is a sizeless font resource. Implementations live in the gotext
// and ximage subpackages; tests use texttest fakes.
//
// Typefaces are read-only after creation and shared freely. All metric
// queries take the size in pixels and return pixel values.
type Typeface interface {
	// UniqueID returns a process-unique identifier for this typeface.
	// Identical IDs imply identical glyph outlines.
	UniqueID() uint32

	// HasColor reports whether the typeface carries color glyphs (emoji).
	HasColor() bool

	// GlyphID returns the glyph index for a character name (the UTF-8
	// bytes of one user-perceived character). Zero means no coverage.
	GlyphID(name string) GlyphID

	// GlyphBounds returns the glyph's ink bounds at the given size.
	GlyphBounds(id GlyphID, size float32) Rect

	// GlyphAdvance returns the advance at the given size. When vertical is
	// true the vertical advance is returned as a positive distance.
	GlyphAdvance(id GlyphID, size float32, vertical bool) float32

	// GlyphVerticalOffset returns the translation from the horizontal
	// origin to the vertical-layout origin for the glyph.
	GlyphVerticalOffset(id GlyphID, size float32) Point

	// Metrics returns the typeface-wide metrics at the given size.
	Metrics(size float32) FontMetrics

	// GlyphPath extracts the glyph outline at the given size into path.
	// It reports false when the glyph has no outline (bitmap glyphs,
	// missing glyphs).
	GlyphPath(id GlyphID, size float32, path *Path) bool
}

// Font pairs a typeface with a size and synthesis flags. It is a small value
// type, copied freely; the typeface itself is shared.
type Font struct {
	typeface   Typeface
	size       float32
	fauxBold   bool
	fauxItalic bool
}

// Typeface returns the typeface, which may be nil for an empty font.
func (f Font) Typeface() Typeface { return f.typeface }

// SetTypeface replaces the typeface.
func (f *Font) SetTypeface(tf Typeface) { f.typeface = tf }

// Size returns the font size in pixels.
func (f Font) Size() float32 { return f.size }

// SetSize sets the font size in pixels.
func (f *Font) SetSize(size float32) { f.size = size }

// FauxBold reports whether synthetic bolding is applied.
func (f Font) FauxBold() bool { return f.fauxBold }

// SetFauxBold toggles synthetic bolding.
func (f *Font) SetFauxBold(v bool) { f.fauxBold = v }

// FauxItalic reports whether synthetic slanting is applied.
func (f Font) FauxItalic() bool { return f.fauxItalic }

// SetFauxItalic toggles synthetic slanting.
func (f *Font) SetFauxItalic(v bool) { f.fauxItalic = v }

// GlyphID returns the glyph index for a character name, or zero when the
// font has no typeface.
func (f Font) GlyphID(name string) GlyphID {
	if f.typeface == nil {
		return 0
	}
	return f.typeface.GlyphID(name)
}

// GlyphBounds returns the glyph's ink bounds at the font size.
func (f Font) GlyphBounds(id GlyphID) Rect {
	if f.typeface == nil {
		return Rect{}
	}
	return f.typeface.GlyphBounds(id, f.size)
}

// GlyphAdvance returns the horizontal advance at the font size.
func (f Font) GlyphAdvance(id GlyphID) float32 {
	return f.glyphAdvance(id, false)
}

// GlyphVerticalAdvance returns the vertical advance at the font size.
func (f Font) GlyphVerticalAdvance(id GlyphID) float32 {
	return f.glyphAdvance(id, true)
}

func (f Font) glyphAdvance(id GlyphID, vertical bool) float32 {
	if f.typeface == nil {
		return 0
	}
	return f.typeface.GlyphAdvance(id, f.size, vertical)
}

// GlyphVerticalOffset returns the vertical-layout origin translation.
func (f Font) GlyphVerticalOffset(id GlyphID) Point {
	if f.typeface == nil {
		return Point{}
	}
	return f.typeface.GlyphVerticalOffset(id, f.size)
}

// Metrics returns the typeface metrics at the font size.
func (f Font) Metrics() FontMetrics {
	if f.typeface == nil {
		return FontMetrics{}
	}
	return f.typeface.Metrics(f.size)
}

// GlyphPath extracts the glyph outline at the font size.
func (f Font) GlyphPath(id GlyphID, path *Path) bool {
	if f.typeface == nil {
		return false
	}
	return f.typeface.GlyphPath(id, f.size, path)
}

// HasColor reports whether the underlying typeface carries color glyphs.
func (f Font) HasColor() bool {
	return f.typeface != nil && f.typeface.HasColor()
}
