package text_test

import (
	"testing"

	"github.com/gogpu/textatlas/text"
	"github.com/gogpu/textatlas/text/texttest"
)

func TestGetSimpleGlyphsOrderAndDedup(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	glyphs := text.GetSimpleGlyphs(&text.TextDocument{
		Text:       "ABA",
		FontFamily: "Fake",
		FontSize:   12,
	})
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3 (duplicates preserved in order)", len(glyphs))
	}
	if glyphs[0].Name() != "A" || glyphs[1].Name() != "B" || glyphs[2].Name() != "A" {
		t.Errorf("names = %q %q %q, want A B A", glyphs[0].Name(), glyphs[1].Name(), glyphs[2].Name())
	}
	if glyphs[0] != glyphs[2] {
		t.Errorf("repeated character did not reuse the same SimpleGlyph")
	}
	if glyphs[0] == glyphs[1] {
		t.Errorf("distinct characters share a SimpleGlyph")
	}
}

func TestGetSimpleGlyphsFontAttributes(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	glyphs := text.GetSimpleGlyphs(&text.TextDocument{
		Text:       "A",
		FontFamily: "Fake",
		FontSize:   36,
		FauxBold:   true,
		FauxItalic: true,
	})
	font := glyphs[0].Font()
	if font.Size() != 36 || !font.FauxBold() || !font.FauxItalic() {
		t.Errorf("font = size %v bold %v italic %v, want 36 true true",
			font.Size(), font.FauxBold(), font.FauxItalic())
	}
	if font.Typeface() != text.Typeface(tf) {
		t.Errorf("primary typeface not adopted")
	}
}

func TestGetSimpleGlyphsFallback(t *testing.T) {
	primary := texttest.NewTypeface()
	primary.Missing = map[string]bool{"☃": true}
	fallback := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: primary, Fallback: fallback})

	glyphs := text.GetSimpleGlyphs(&text.TextDocument{
		Text:       "A☃",
		FontFamily: "Fake",
		FontSize:   12,
	})
	if glyphs[0].Font().Typeface() != text.Typeface(primary) {
		t.Errorf("covered character did not use the primary typeface")
	}
	if glyphs[1].Font().Typeface() != text.Typeface(fallback) {
		t.Errorf("uncovered character did not use the fallback typeface")
	}
	if glyphs[1].GlyphID() == 0 {
		t.Errorf("fallback lookup returned glyph 0 for a covered name")
	}
}

func TestGetSimpleGlyphsTofu(t *testing.T) {
	primary := texttest.NewTypeface()
	primary.Missing = map[string]bool{"☃": true}
	fallback := texttest.NewTypeface()
	fallback.Missing = map[string]bool{"☃": true}
	installManager(t, &texttest.FontManager{Primary: primary, Fallback: fallback})

	glyphs := text.GetSimpleGlyphs(&text.TextDocument{
		Text:       "☃",
		FontFamily: "Fake",
		FontSize:   12,
	})
	if len(glyphs) != 1 {
		t.Fatalf("got %d glyphs, want 1", len(glyphs))
	}
	// The name is recorded with glyph index zero rather than dropped.
	if glyphs[0].GlyphID() != 0 {
		t.Errorf("glyph id = %d, want 0 (tofu)", glyphs[0].GlyphID())
	}
}

func TestGetSimpleGlyphsNoManager(t *testing.T) {
	installManager(t, nil)

	glyphs := text.GetSimpleGlyphs(&text.TextDocument{
		Text:       "A",
		FontFamily: "Nope",
		FontSize:   12,
	})
	if len(glyphs) != 1 || glyphs[0].GlyphID() != 0 {
		t.Errorf("expected a single tofu glyph without a font manager")
	}
}

func TestCreateGlyphDocumentPaintStyles(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	tests := []struct {
		name        string
		applyFill   bool
		applyStroke bool
		want        text.TextStyle
	}{
		{"fill only", true, false, text.TextStyleFill},
		{"stroke only", false, true, text.TextStyleStroke},
		{"both", true, true, text.TextStyleStrokeAndFill},
		{"neither defaults to fill", false, false, text.TextStyleFill},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := text.CreateGlyphDocument(&text.TextDocument{
				Text:        "A",
				FontFamily:  "Fake",
				FontSize:    12,
				ApplyFill:   tt.applyFill,
				ApplyStroke: tt.applyStroke,
			})
			if doc.Paint.Style != tt.want {
				t.Errorf("style = %v, want %v", doc.Paint.Style, tt.want)
			}
		})
	}
}

func TestCreateGlyphDocumentPaintAttributes(t *testing.T) {
	tf := texttest.NewTypeface()
	installManager(t, &texttest.FontManager{Primary: tf})

	doc := text.CreateGlyphDocument(&text.TextDocument{
		Text:           "A",
		FontFamily:     "Fam",
		FontStyle:      "Bold",
		FontSize:       18,
		ApplyStroke:    true,
		StrokeWidth:    3,
		StrokeOverFill: true,
		Direction:      text.DirectionTTB,
	})
	p := doc.Paint
	if p.StrokeWidth != 3 || !p.StrokeOverFill || !p.IsVertical {
		t.Errorf("paint = %+v", p)
	}
	if p.FontFamily != "Fam" || p.FontStyle != "Bold" || p.FontSize != 18 {
		t.Errorf("font attributes not carried: %+v", p)
	}
}

func TestPropertyAnimatable(t *testing.T) {
	static := text.NewProperty(&text.TextDocument{Text: "x"})
	if static.Animatable() {
		t.Errorf("static property reports animatable")
	}
	if static.ValueAtStart().Text != "x" {
		t.Errorf("static ValueAtStart = %q", static.ValueAtStart().Text)
	}

	a := &text.TextDocument{Text: "a"}
	b := &text.TextDocument{Text: "b"}
	animated := text.NewAnimatableProperty([]*text.Keyframe[*text.TextDocument]{
		{StartValue: a, EndValue: b},
	})
	if !animated.Animatable() {
		t.Errorf("keyframed property not animatable")
	}
	if animated.ValueAtStart() != a {
		t.Errorf("animated ValueAtStart != first keyframe start")
	}
}
