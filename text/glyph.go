package text

import (
	"image/color"
)

// Glyph is a per-draw instance of a SimpleGlyph: layout metrics plus the
// styling the draw site may adjust between frames (transform, colors,
// alpha). Display glyphs are cheap and rebuilt per draw invocation; the
// underlying SimpleGlyph is shared.
type Glyph struct {
	simpleGlyph *SimpleGlyph

	// Read-only after construction.
	advance        float32
	ascent         float32
	descent        float32
	bounds         Rect
	isVertical     bool
	strokeOverFill bool
	extraMatrix    Matrix

	// Writable by the draw site.
	matrix      Matrix
	textStyle   TextStyle
	alpha       float32
	fillColor   color.RGBA
	strokeColor color.RGBA
	strokeWidth float32
}

// BuildFromText creates one display glyph per document glyph, in document
// order.
func BuildFromText(doc *GlyphDocument) []*Glyph {
	glyphs := make([]*Glyph, 0, len(doc.Glyphs))
	for _, simple := range doc.Glyphs {
		glyphs = append(glyphs, NewGlyph(simple, doc.Paint))
	}
	return glyphs
}

// NewGlyph builds a display glyph from a document glyph and its paint,
// computing the layout metrics and the vertical-layout extra matrix.
func NewGlyph(simpleGlyph *SimpleGlyph, paint TextPaint) *Glyph {
	g := &Glyph{
		simpleGlyph:    simpleGlyph,
		isVertical:     paint.IsVertical,
		strokeOverFill: paint.StrokeOverFill,
		extraMatrix:    IdentityMatrix(),
		matrix:         IdentityMatrix(),
		textStyle:      paint.Style,
		alpha:          1,
		fillColor:      paint.FillColor,
		strokeColor:    paint.StrokeColor,
		strokeWidth:    paint.StrokeWidth,
	}
	font := simpleGlyph.Font()
	metrics := font.Metrics()
	g.ascent = metrics.Ascent
	g.descent = metrics.Descent
	glyphID := simpleGlyph.GlyphID()
	g.advance = font.GlyphAdvance(glyphID)
	g.bounds = simpleGlyph.Bounds()
	name := simpleGlyph.Name()
	if name == " " {
		// Measured bounds for the space glyph sit anomalously high in some
		// fonts; the glyph is invisible anyway, so take the vertical
		// extents of "A" instead.
		if aID := font.GlyphID("A"); aID > 0 {
			aBounds := font.GlyphBounds(aID)
			g.bounds.MinY = aBounds.MinY
			g.bounds.MaxY = aBounds.MaxY
		}
	}
	if paint.IsVertical {
		if len(name) == 1 {
			// Letters, digits and punctuation are drawn rotated 90°, which
			// turns the horizontal baseline into a vertical one, then
			// shifted left by a quarter of (cap height + x-height) to
			// center the glyph in the column.
			offsetX := (metrics.CapHeight + metrics.XHeight) * 0.25
			g.extraMatrix = RotateMatrix(90).PostTranslate(-offsetX, 0)
			g.ascent += offsetX
			g.descent += offsetX
		} else {
			offset := font.GlyphVerticalOffset(glyphID)
			g.extraMatrix = g.extraMatrix.PostTranslate(offset.X, offset.Y)
			width := g.advance
			g.advance = font.GlyphVerticalAdvance(glyphID)
			g.ascent = -width * 0.5
			g.descent = width * 0.5
		}
		g.bounds = g.extraMatrix.MapRect(g.bounds)
	}
	return g
}

// SimpleGlyph returns the shared document glyph.
func (g *Glyph) SimpleGlyph() *SimpleGlyph { return g.simpleGlyph }

// GlyphID returns the glyph index within the typeface.
func (g *Glyph) GlyphID() GlyphID { return g.simpleGlyph.GlyphID() }

// Name returns the UTF-8 character name.
func (g *Glyph) Name() string { return g.simpleGlyph.Name() }

// Font returns the font the glyph was resolved with.
func (g *Glyph) Font() Font { return g.simpleGlyph.Font() }

// Advance returns the layout advance, vertical when IsVertical.
func (g *Glyph) Advance() float32 { return g.advance }

// Ascent returns the distance above the baseline (negative).
func (g *Glyph) Ascent() float32 { return g.ascent }

// Descent returns the distance below the baseline (positive).
func (g *Glyph) Descent() float32 { return g.descent }

// Bounds returns the glyph bounds mapped through the extra matrix.
func (g *Glyph) Bounds() Rect { return g.bounds }

// IsVertical reports whether the glyph is laid out vertically.
func (g *Glyph) IsVertical() bool { return g.isVertical }

// StrokeOverFill reports whether the stroke pass paints over the fill.
func (g *Glyph) StrokeOverFill() bool { return g.strokeOverFill }

// ExtraMatrix returns the vertical-layout rotation/translation applied
// before the writable transform.
func (g *Glyph) ExtraMatrix() Matrix { return g.extraMatrix }

// Matrix returns the writable transform.
func (g *Glyph) Matrix() Matrix { return g.matrix }

// SetMatrix sets the writable transform.
func (g *Glyph) SetMatrix(m Matrix) { g.matrix = m }

// Style returns the text style.
func (g *Glyph) Style() TextStyle { return g.textStyle }

// SetStyle sets the text style.
func (g *Glyph) SetStyle(s TextStyle) { g.textStyle = s }

// Alpha returns the draw alpha in [0, 1].
func (g *Glyph) Alpha() float32 { return g.alpha }

// SetAlpha sets the draw alpha.
func (g *Glyph) SetAlpha(a float32) { g.alpha = a }

// FillColor returns the fill color.
func (g *Glyph) FillColor() color.RGBA { return g.fillColor }

// SetFillColor sets the fill color.
func (g *Glyph) SetFillColor(c color.RGBA) { g.fillColor = c }

// StrokeColor returns the stroke color.
func (g *Glyph) StrokeColor() color.RGBA { return g.strokeColor }

// SetStrokeColor sets the stroke color.
func (g *Glyph) SetStrokeColor(c color.RGBA) { g.strokeColor = c }

// StrokeWidth returns the stroke width.
func (g *Glyph) StrokeWidth() float32 { return g.strokeWidth }

// SetStrokeWidth sets the stroke width.
func (g *Glyph) SetStrokeWidth(w float32) { g.strokeWidth = w }

// IsVisible reports whether drawing the glyph can produce pixels: the
// transform is invertible, the alpha non-zero, and the bounds non-empty.
func (g *Glyph) IsVisible() bool {
	return g.matrix.Invertible() && g.alpha != 0 && !g.bounds.Empty()
}

// TotalMatrix returns the extra matrix composed with the writable
// transform.
func (g *Glyph) TotalMatrix() Matrix {
	return g.extraMatrix.PostConcat(g.matrix)
}

// ComputeAtlasKey appends the underlying SimpleGlyph's bitmap identity.
func (g *Glyph) ComputeAtlasKey(key *BytesKey) {
	g.simpleGlyph.ComputeAtlasKey(key)
}
