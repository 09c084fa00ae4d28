// Package gotext provides a Typeface backend on go-text/typesetting. It
// supports outline and color (bitmap/SVG emoji) fonts.
package gotext

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/textatlas/text"
)

// nextUniqueID hands out process-unique typeface identifiers.
var nextUniqueID atomic.Uint32

// colorProbeRunes are sampled to detect color (emoji) fonts: a font whose
// glyphs for these resolve to bitmap or SVG data is treated as a color
// typeface.
var colorProbeRunes = []rune{'\U0001F600', '\U0001F44D', '❤'}

// Typeface implements text.Typeface over a typesetting font.Face.
//
// font.Face caches glyph lookups and is not safe for concurrent use; the
// typeface serializes access with a mutex.
type Typeface struct {
	id       uint32
	upem     float32
	hasColor bool

	mu   sync.Mutex
	face *font.Face
}

// TypefaceOption configures typeface creation.
type TypefaceOption func(*Typeface)

// WithColor overrides color-font detection.
func WithColor(hasColor bool) TypefaceOption {
	return func(t *Typeface) {
		t.hasColor = hasColor
	}
}

// Parse creates a typeface from TTF or OTF data.
func Parse(data []byte, opts ...TypefaceOption) (*Typeface, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}
	tf := &Typeface{
		id:   nextUniqueID.Add(1),
		upem: float32(face.Upem()),
		face: face,
	}
	tf.hasColor = tf.detectColor()
	for _, opt := range opts {
		opt(tf)
	}
	return tf, nil
}

// ParseFile creates a typeface from a font file path.
func ParseFile(path string, opts ...TypefaceOption) (*Typeface, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return Parse(data, opts...)
}

// detectColor probes a few emoji code points for bitmap or SVG glyph data.
func (t *Typeface) detectColor() bool {
	for _, r := range colorProbeRunes {
		gid, ok := t.face.NominalGlyph(r)
		if !ok {
			continue
		}
		switch t.face.GlyphData(gid).(type) {
		case font.GlyphBitmap, font.GlyphSVG:
			return true
		}
	}
	return false
}

// UniqueID implements text.Typeface.
func (t *Typeface) UniqueID() uint32 { return t.id }

// HasColor implements text.Typeface.
func (t *Typeface) HasColor() bool { return t.hasColor }

// scale converts font units to pixels at the given size.
func (t *Typeface) scale(size float32) float32 {
	if t.upem == 0 {
		return 0
	}
	return size / t.upem
}

// GlyphID implements text.Typeface. The name's first rune is looked up in
// the cmap; trailing combining marks do not change glyph selection.
func (t *Typeface) GlyphID(name string) text.GlyphID {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	gid, ok := t.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return text.GlyphID(gid)
}

// GlyphBounds implements text.Typeface. Extents are converted from the
// font's y-up unit space to y-down pixels.
func (t *Typeface) GlyphBounds(id text.GlyphID, size float32) text.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	extents, ok := t.face.GlyphExtents(font.GID(id))
	if !ok {
		return text.Rect{}
	}
	s := t.scale(size)
	// YBearing is the top above the baseline; Height extends downwards and
	// is negative.
	return text.Rect{
		MinX: extents.XBearing * s,
		MinY: -extents.YBearing * s,
		MaxX: (extents.XBearing + extents.Width) * s,
		MaxY: -(extents.YBearing + extents.Height) * s,
	}
}

// GlyphAdvance implements text.Typeface. Vertical advance falls back to the
// hhea line height; typesetting does not expose vmtx uniformly across
// formats.
func (t *Typeface) GlyphAdvance(id text.GlyphID, size float32, vertical bool) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.scale(size)
	if vertical {
		extents, ok := t.face.FontHExtents()
		if !ok {
			return 0
		}
		return (extents.Ascender - extents.Descender) * s
	}
	return t.face.HorizontalAdvance(font.GID(id)) * s
}

// GlyphVerticalOffset implements text.Typeface: the translation from the
// horizontal origin to a top-centered vertical origin.
func (t *Typeface) GlyphVerticalOffset(id text.GlyphID, size float32) text.Point {
	advance := t.GlyphAdvance(id, size, false)
	metrics := t.Metrics(size)
	return text.Point{X: -advance * 0.5, Y: metrics.Ascent}
}

// Metrics implements text.Typeface. Ascent is negative (above the
// baseline, y down). Cap height and x-height are probed from the "H" and
// "x" glyphs, the portable fallback when OS/2 values are absent.
func (t *Typeface) Metrics(size float32) text.FontMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.scale(size)
	var m text.FontMetrics
	if extents, ok := t.face.FontHExtents(); ok {
		m.Ascent = -extents.Ascender * s
		m.Descent = -extents.Descender * s
	}
	m.CapHeight = t.probeHeight('H') * s
	m.XHeight = t.probeHeight('x') * s
	return m
}

// probeHeight returns the top bearing of the glyph for r, in font units.
func (t *Typeface) probeHeight(r rune) float32 {
	gid, ok := t.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	extents, ok := t.face.GlyphExtents(gid)
	if !ok {
		return 0
	}
	return extents.YBearing
}

// GlyphPath implements text.Typeface, converting the glyph's outline
// segments to a y-down pixel path. Bitmap and SVG glyphs have no outline
// and report false.
func (t *Typeface) GlyphPath(id text.GlyphID, size float32, path *text.Path) bool {
	if path == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	outline, ok := t.face.GlyphData(font.GID(id)).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return false
	}
	s := t.scale(size)
	path.Reset()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			path.MoveTo(t.segPoint(seg, 0, s))
		case opentype.SegmentOpLineTo:
			path.LineTo(t.segPoint(seg, 0, s))
		case opentype.SegmentOpQuadTo:
			path.QuadTo(t.segPoint(seg, 0, s), t.segPoint(seg, 1, s))
		case opentype.SegmentOpCubeTo:
			path.CubeTo(t.segPoint(seg, 0, s), t.segPoint(seg, 1, s), t.segPoint(seg, 2, s))
		}
	}
	path.Close()
	return true
}

func (t *Typeface) segPoint(seg opentype.Segment, i int, s float32) text.Point {
	return text.Point{
		X: seg.Args[i].X * s,
		Y: -seg.Args[i].Y * s,
	}
}

var _ text.Typeface = (*Typeface)(nil)
