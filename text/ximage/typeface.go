// Package ximage provides a Typeface backend on golang.org/x/image's sfnt
// parser. It covers outline fonts only; color tables are not supported, so
// every ximage typeface reports HasColor false.
package ximage

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textatlas/text"
)

// nextUniqueID hands out process-unique typeface identifiers.
var nextUniqueID atomic.Uint32

// Typeface implements text.Typeface over an sfnt font.
//
// sfnt.Font methods take a scratch buffer and are not safe for concurrent
// use with a shared buffer; the typeface guards its buffer with a mutex.
type Typeface struct {
	font     *opentype.Font
	id       uint32
	name     string
	fullName string

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse creates a typeface from TTF or OTF data.
func Parse(data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to parse font: %w", err)
	}
	tf := &Typeface{
		font: f,
		id:   nextUniqueID.Add(1),
	}
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		tf.name = name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		tf.fullName = name
	}
	return tf, nil
}

// ParseFile creates a typeface from a font file path.
func ParseFile(path string) (*Typeface, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to read font file: %w", err)
	}
	return Parse(data)
}

// UniqueID implements text.Typeface.
func (t *Typeface) UniqueID() uint32 { return t.id }

// Name returns the family name.
func (t *Typeface) Name() string { return t.name }

// FullName returns the full font name.
func (t *Typeface) FullName() string { return t.fullName }

// HasColor implements text.Typeface. sfnt exposes no color tables.
func (t *Typeface) HasColor() bool { return false }

// GlyphID implements text.Typeface. Multi-rune names (combining sequences)
// resolve through their first rune; sfnt has no sequence lookup.
func (t *Typeface) GlyphID(name string) text.GlyphID {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, err := t.font.GlyphIndex(&t.buf, r)
	if err != nil {
		return 0
	}
	return text.GlyphID(idx)
}

// GlyphBounds implements text.Typeface.
func (t *Typeface) GlyphBounds(id text.GlyphID, size float32) text.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	bounds, _, err := t.font.GlyphBounds(&t.buf, sfnt.GlyphIndex(id), toFixed(size), font.HintingNone)
	if err != nil {
		return text.Rect{}
	}
	return text.Rect{
		MinX: fromFixed(bounds.Min.X),
		MinY: fromFixed(bounds.Min.Y),
		MaxX: fromFixed(bounds.Max.X),
		MaxY: fromFixed(bounds.Max.Y),
	}
}

// GlyphAdvance implements text.Typeface. sfnt carries no vertical metrics;
// the vertical advance falls back to the line height (ascent + descent).
func (t *Typeface) GlyphAdvance(id text.GlyphID, size float32, vertical bool) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if vertical {
		m, err := t.font.Metrics(&t.buf, toFixed(size), font.HintingNone)
		if err != nil {
			return 0
		}
		return fromFixed(m.Ascent) + fromFixed(m.Descent)
	}
	advance, err := t.font.GlyphAdvance(&t.buf, sfnt.GlyphIndex(id), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(advance)
}

// GlyphVerticalOffset implements text.Typeface: the translation from the
// horizontal origin to a top-centered vertical origin.
func (t *Typeface) GlyphVerticalOffset(id text.GlyphID, size float32) text.Point {
	advance := t.GlyphAdvance(id, size, false)
	metrics := t.Metrics(size)
	return text.Point{X: -advance * 0.5, Y: metrics.Ascent}
}

// Metrics implements text.Typeface. Ascent is returned negative (above the
// baseline, y down).
func (t *Typeface) Metrics(size float32) text.FontMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, err := t.font.Metrics(&t.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return text.FontMetrics{}
	}
	return text.FontMetrics{
		Ascent:    -fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		CapHeight: fromFixed(m.CapHeight),
		XHeight:   fromFixed(m.XHeight),
	}
}

// GlyphPath implements text.Typeface, loading the glyph's outline segments.
func (t *Typeface) GlyphPath(id text.GlyphID, size float32, path *text.Path) bool {
	if path == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	segments, err := t.font.LoadGlyph(&t.buf, sfnt.GlyphIndex(id), toFixed(size), nil)
	if err != nil || len(segments) == 0 {
		return false
	}
	path.Reset()
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			path.MoveTo(segPoint(seg, 0))
		case sfnt.SegmentOpLineTo:
			path.LineTo(segPoint(seg, 0))
		case sfnt.SegmentOpQuadTo:
			path.QuadTo(segPoint(seg, 0), segPoint(seg, 1))
		case sfnt.SegmentOpCubeTo:
			path.CubeTo(segPoint(seg, 0), segPoint(seg, 1), segPoint(seg, 2))
		}
	}
	path.Close()
	return true
}

func segPoint(seg sfnt.Segment, i int) text.Point {
	return text.Point{
		X: fromFixed(seg.Args[i].X),
		Y: fromFixed(seg.Args[i].Y),
	}
}

// toFixed converts a pixel size to 26.6 fixed point.
func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts 26.6 fixed point to float32 pixels.
func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

var _ text.Typeface = (*Typeface)(nil)
