package text

import (
	"image/color"

	"golang.org/x/text/unicode/norm"
)

// TextDocument describes one styled text value, as authored: the content
// string plus the font request and paint attributes. Animated text carries
// one TextDocument per keyframe endpoint.
type TextDocument struct {
	Text string

	FontFamily string
	FontStyle  string
	FontSize   float32
	FauxBold   bool
	FauxItalic bool

	ApplyFill   bool
	ApplyStroke bool
	FillColor   color.RGBA
	StrokeColor color.RGBA
	StrokeWidth float32

	// StrokeOverFill paints the stroke pass after the fill pass.
	StrokeOverFill bool

	Direction Direction
}

// TextPaint is the resolved paint of a document, shared by all its glyphs.
type TextPaint struct {
	Style          TextStyle
	FillColor      color.RGBA
	StrokeColor    color.RGBA
	StrokeWidth    float32
	StrokeOverFill bool
	FontFamily     string
	FontStyle      string
	FontSize       float32
	FauxBold       bool
	FauxItalic     bool
	IsVertical     bool
}

// GlyphDocument pairs a document's tokenized glyph list with its resolved
// paint.
type GlyphDocument struct {
	Glyphs []*SimpleGlyph
	Paint  TextPaint
}

// GetSimpleGlyphs tokenizes the document text into one SimpleGlyph per
// character name, in source order. A name is the UTF-8 bytes of one
// normalization boundary step, so combining sequences resolve as a unit.
// Repeated names within the document share one SimpleGlyph.
//
// Resolution per unseen name: the primary typeface for (FontFamily,
// FontStyle) when it covers the name, otherwise a fallback typeface from the
// font manager. A fallback may still report glyph index zero; the name is
// then recorded as a tofu glyph.
func GetSimpleGlyphs(doc *TextDocument) []*SimpleGlyph {
	var font Font
	font.SetFauxBold(doc.FauxBold)
	font.SetFauxItalic(doc.FauxItalic)
	font.SetSize(doc.FontSize)
	manager := GetFontManager()
	typeface := manager.TypefaceWithoutFallback(doc.FontFamily, doc.FontStyle)

	glyphMap := make(map[string]*SimpleGlyph)
	var glyphList []*SimpleGlyph
	var iter norm.Iter
	iter.InitString(norm.NFC, doc.Text)
	for !iter.Done() {
		name := string(iter.Next())
		if glyph, ok := glyphMap[name]; ok {
			glyphList = append(glyphList, glyph)
			continue
		}
		var glyphID GlyphID
		if typeface != nil {
			glyphID = typeface.GlyphID(name)
			if glyphID != 0 {
				font.SetTypeface(typeface)
			}
		}
		if glyphID == 0 {
			fallback, id := manager.FallbackTypeface(name)
			font.SetTypeface(fallback)
			glyphID = id
		}
		glyph := NewSimpleGlyph(glyphID, name, font)
		glyphMap[name] = glyph
		glyphList = append(glyphList, glyph)
	}
	return glyphList
}

// CreateGlyphDocument tokenizes a document and derives its paint.
func CreateGlyphDocument(doc *TextDocument) *GlyphDocument {
	return &GlyphDocument{
		Glyphs: GetSimpleGlyphs(doc),
		Paint:  createTextPaint(doc),
	}
}

func createTextPaint(doc *TextDocument) TextPaint {
	style := TextStyleFill
	switch {
	case doc.ApplyFill && doc.ApplyStroke:
		style = TextStyleStrokeAndFill
	case doc.ApplyStroke:
		style = TextStyleStroke
	}
	return TextPaint{
		Style:          style,
		FillColor:      doc.FillColor,
		StrokeColor:    doc.StrokeColor,
		StrokeWidth:    doc.StrokeWidth,
		StrokeOverFill: doc.StrokeOverFill,
		FontFamily:     doc.FontFamily,
		FontStyle:      doc.FontStyle,
		FontSize:       doc.FontSize,
		FauxBold:       doc.FauxBold,
		FauxItalic:     doc.FauxItalic,
		IsVertical:     doc.Direction.IsVertical(),
	}
}
