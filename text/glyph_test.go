package text_test

import (
	"image/color"
	"testing"

	"github.com/gogpu/textatlas/text"
	"github.com/gogpu/textatlas/text/texttest"
)

func installManager(t *testing.T, m text.FontManager) {
	t.Helper()
	text.SetFontManager(m)
	t.Cleanup(func() { text.SetFontManager(nil) })
}

func buildDocument(t *testing.T, doc *text.TextDocument) *text.GlyphDocument {
	t.Helper()
	glyphDoc := text.CreateGlyphDocument(doc)
	if glyphDoc == nil {
		t.Fatalf("CreateGlyphDocument returned nil")
	}
	return glyphDoc
}

func TestGlyphMetricsFromFont(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       "g",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
	})
	glyphs := text.BuildFromText(doc)
	if len(glyphs) != 1 {
		t.Fatalf("BuildFromText returned %d glyphs, want 1", len(glyphs))
	}
	g := glyphs[0]
	metrics := tf.Metrics(24)
	if g.Ascent() != metrics.Ascent || g.Descent() != metrics.Descent {
		t.Errorf("ascent/descent = (%v, %v), want (%v, %v)",
			g.Ascent(), g.Descent(), metrics.Ascent, metrics.Descent)
	}
	if g.Advance() != tf.Advance {
		t.Errorf("advance = %v, want %v", g.Advance(), tf.Advance)
	}
	if g.Alpha() != 1 {
		t.Errorf("alpha = %v, want 1", g.Alpha())
	}
}

func TestGlyphSpaceBoundsCorrection(t *testing.T) {
	tf := texttest.NewTypeface()
	tf.BoundsOverride = map[string]text.Rect{
		// Anomalously high and narrow space bounds, as some fonts report.
		" ": text.MakeXYWH(0, -40, 1, 2),
		"A": text.MakeXYWH(0, -12, 10, 12),
	}
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       " A",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
	})
	glyphs := text.BuildFromText(doc)
	space, a := glyphs[0], glyphs[1]
	if space.Bounds().MinY != a.Bounds().MinY || space.Bounds().MaxY != a.Bounds().MaxY {
		t.Errorf("space vertical bounds = (%v, %v), want A's (%v, %v)",
			space.Bounds().MinY, space.Bounds().MaxY,
			a.Bounds().MinY, a.Bounds().MaxY)
	}
	// Horizontal extent keeps the space's own values.
	if space.Bounds().MinX != 0 || space.Bounds().MaxX != 1 {
		t.Errorf("space horizontal bounds changed: %+v", space.Bounds())
	}
}

func TestGlyphVerticalSingleByte(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       "A",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
		Direction:  text.DirectionTTB,
	})
	g := text.BuildFromText(doc)[0]

	// The extra matrix rotates the horizontal baseline into a vertical
	// one: the unit x vector maps to the unit y vector.
	got := g.ExtraMatrix().Apply(text.Point{X: 1, Y: 0})
	origin := g.ExtraMatrix().Apply(text.Point{})
	dx, dy := got.X-origin.X, got.Y-origin.Y
	if !(near32(dx, 0) && near32(dy, 1)) {
		t.Errorf("extraMatrix direction = (%v, %v), want (0, 1)", dx, dy)
	}

	metrics := tf.Metrics(24)
	offsetX := (metrics.CapHeight + metrics.XHeight) * 0.25
	if g.Ascent() != metrics.Ascent+offsetX {
		t.Errorf("vertical ascent = %v, want %v", g.Ascent(), metrics.Ascent+offsetX)
	}
	if g.Descent() != metrics.Descent+offsetX {
		t.Errorf("vertical descent = %v, want %v", g.Descent(), metrics.Descent+offsetX)
	}
}

func TestGlyphVerticalMultiByte(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       "漢",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
		Direction:  text.DirectionTTB,
	})
	g := text.BuildFromText(doc)[0]

	id := tf.GlyphID("漢")
	horizontal := tf.GlyphAdvance(id, 24, false)
	if g.Advance() != tf.GlyphAdvance(id, 24, true) {
		t.Errorf("vertical advance = %v, want %v", g.Advance(), tf.GlyphAdvance(id, 24, true))
	}
	if g.Ascent() != -horizontal*0.5 || g.Descent() != horizontal*0.5 {
		t.Errorf("ascent/descent = (%v, %v), want (%v, %v)",
			g.Ascent(), g.Descent(), -horizontal*0.5, horizontal*0.5)
	}
}

func TestGlyphIsVisible(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       "A",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
	})
	g := text.BuildFromText(doc)[0]
	if !g.IsVisible() {
		t.Fatalf("fresh glyph not visible")
	}

	g.SetAlpha(0)
	if g.IsVisible() {
		t.Errorf("glyph with alpha 0 visible")
	}
	g.SetAlpha(0.5)

	g.SetMatrix(text.ScaleMatrix(0, 1))
	if g.IsVisible() {
		t.Errorf("glyph with singular matrix visible")
	}
}

func TestGlyphTotalMatrix(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:       "A",
		FontFamily: "Fake",
		FontSize:   24,
		ApplyFill:  true,
		Direction:  text.DirectionTTB,
	})
	g := text.BuildFromText(doc)[0]
	g.SetMatrix(text.TranslateMatrix(100, 50))

	want := g.Matrix().Multiply(g.ExtraMatrix())
	if g.TotalMatrix() != want {
		t.Errorf("TotalMatrix = %+v, want extra then matrix %+v", g.TotalMatrix(), want)
	}
}

func TestGlyphWritableState(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := buildDocument(t, &text.TextDocument{
		Text:        "A",
		FontFamily:  "Fake",
		FontSize:    24,
		ApplyFill:   true,
		ApplyStroke: true,
		StrokeWidth: 2,
		FillColor:   color.RGBA{R: 255, A: 255},
	})
	g := text.BuildFromText(doc)[0]
	if g.Style() != text.TextStyleStrokeAndFill {
		t.Errorf("style = %v, want StrokeAndFill", g.Style())
	}
	if g.StrokeWidth() != 2 {
		t.Errorf("strokeWidth = %v, want 2", g.StrokeWidth())
	}
	if g.FillColor() != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("fillColor = %v", g.FillColor())
	}

	g.SetStyle(text.TextStyleStroke)
	g.SetStrokeColor(color.RGBA{B: 255, A: 255})
	g.SetStrokeWidth(3)
	if g.Style() != text.TextStyleStroke || g.StrokeWidth() != 3 {
		t.Errorf("writable state not applied")
	}
}

func near32(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-5
}
