package gotext

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textatlas/text"
)

func parseGoRegular(t *testing.T) *Typeface {
	t.Helper()
	tf, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular) failed: %v", err)
	}
	return tf
}

func TestParseInvalidData(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Errorf("Parse accepted garbage data")
	}
}

func TestTypefaceUniqueIDs(t *testing.T) {
	a := parseGoRegular(t)
	b := parseGoRegular(t)
	if a.UniqueID() == b.UniqueID() {
		t.Errorf("two typefaces share unique ID %d", a.UniqueID())
	}
}

func TestTypefaceGlyphLookup(t *testing.T) {
	tf := parseGoRegular(t)
	if tf.GlyphID("A") == 0 {
		t.Errorf("no glyph for A in Go Regular")
	}
	if tf.GlyphID("") != 0 {
		t.Errorf("empty name resolved to a glyph")
	}
}

func TestTypefaceBoundsAndAdvance(t *testing.T) {
	tf := parseGoRegular(t)
	const size = 24

	id := tf.GlyphID("A")
	bounds := tf.GlyphBounds(id, size)
	if bounds.Empty() {
		t.Fatalf("bounds for A are empty")
	}
	if bounds.MinY >= 0 {
		t.Errorf("bounds top = %v, want above the baseline (negative)", bounds.MinY)
	}
	if bounds.MaxY <= bounds.MinY {
		t.Errorf("bounds not y-down: %+v", bounds)
	}
	if adv := tf.GlyphAdvance(id, size, false); adv <= 0 || adv > size*2 {
		t.Errorf("advance = %v, want within (0, %v]", adv, size*2)
	}
	if vadv := tf.GlyphAdvance(id, size, true); vadv <= 0 {
		t.Errorf("vertical advance = %v, want positive", vadv)
	}
}

func TestTypefaceMetrics(t *testing.T) {
	tf := parseGoRegular(t)
	metrics := tf.Metrics(24)
	if metrics.Ascent >= 0 {
		t.Errorf("ascent = %v, want negative", metrics.Ascent)
	}
	if metrics.Descent <= 0 {
		t.Errorf("descent = %v, want positive", metrics.Descent)
	}
	if metrics.CapHeight <= 0 {
		t.Errorf("cap height = %v, want positive (probed from H)", metrics.CapHeight)
	}
	if metrics.XHeight <= 0 || metrics.XHeight >= metrics.CapHeight {
		t.Errorf("x-height = %v, want in (0, capHeight)", metrics.XHeight)
	}
}

func TestTypefaceGlyphPath(t *testing.T) {
	tf := parseGoRegular(t)
	var path text.Path
	if !tf.GlyphPath(tf.GlyphID("A"), 24, &path) {
		t.Fatalf("no outline for A")
	}
	if path.IsEmpty() {
		t.Errorf("outline for A is empty")
	}
	bounds := path.Bounds()
	if bounds.MinY >= 0 {
		t.Errorf("outline not converted to y-down: %+v", bounds)
	}
}

func TestTypefaceColorDetection(t *testing.T) {
	tf := parseGoRegular(t)
	if tf.HasColor() {
		t.Errorf("Go Regular detected as a color font")
	}
	forced, err := Parse(goregular.TTF, WithColor(true))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !forced.HasColor() {
		t.Errorf("WithColor(true) not honored")
	}
}
