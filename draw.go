package textatlas

import (
	"image/color"

	"github.com/gogpu/textatlas/render"
	"github.com/gogpu/textatlas/text"
)

// Text is the draw-site view of a glyph list: it measures the combined
// bounds and turns atlas locators into batched drawAtlas calls.
type Text struct {
	glyphs   []*text.Glyph
	bounds   text.Rect
	hasAlpha bool
}

// MakeText builds a Text from display glyphs. When calculatedBounds is
// non-nil it is used as the measured bounds; otherwise the bounds are the
// union of each glyph's matrix-mapped bounds, outset by the largest stroke
// width. Returns nil for an empty glyph list.
func MakeText(glyphs []*text.Glyph, calculatedBounds *text.Rect) *Text {
	if len(glyphs) == 0 {
		return nil
	}
	var bounds text.Rect
	if calculatedBounds != nil {
		bounds = *calculatedBounds
	}
	hasAlpha := false
	maxStrokeWidth := float32(0)
	for _, glyph := range glyphs {
		glyphBounds := glyph.Matrix().MapRect(glyph.Bounds())
		if calculatedBounds == nil {
			bounds = bounds.Union(glyphBounds)
		}
		if w := glyph.StrokeWidth(); w > maxStrokeWidth {
			maxStrokeWidth = w
		}
		if glyph.Alpha() != 1 {
			hasAlpha = true
		}
	}
	bounds = bounds.Outset(maxStrokeWidth, maxStrokeWidth)
	return &Text{glyphs: glyphs, bounds: bounds, hasAlpha: hasAlpha}
}

// Bounds returns the measured bounds.
func (t *Text) Bounds() text.Rect { return t.bounds }

// Glyphs returns the glyph list.
func (t *Text) Glyphs() []*text.Glyph { return t.glyphs }

// glyphPaintStyles resolves the ordered paint passes for a glyph's text
// style: fill only, stroke only, or both ordered by StrokeOverFill.
func glyphPaintStyles(glyph *text.Glyph) []text.PaintStyle {
	switch glyph.Style() {
	case text.TextStyleFill:
		return []text.PaintStyle{text.PaintStyleFill}
	case text.TextStyleStroke:
		return []text.PaintStyle{text.PaintStyleStroke}
	default:
		if glyph.StrokeOverFill() {
			return []text.PaintStyle{text.PaintStyleFill, text.PaintStyleStroke}
		}
		return []text.PaintStyle{text.PaintStyleStroke, text.PaintStyleFill}
	}
}

// atlasBatch accumulates drawAtlas parameters for one page.
type atlasBatch struct {
	pageIndex int
	matrices  []text.Matrix
	rects     []text.Rect
	colors    []color.RGBA
	alphas    []float32
}

func (b *atlasBatch) flush(canvas render.Canvas, atlas *TextAtlas, colorGlyph bool) {
	if len(b.matrices) == 0 {
		return
	}
	var texture render.Texture
	if colorGlyph {
		texture = atlas.ColorAtlasTexture(b.pageIndex)
	} else {
		texture = atlas.MaskAtlasTexture(b.pageIndex)
	}
	var colors []color.RGBA
	if !colorGlyph {
		colors = b.colors
	}
	canvas.DrawAtlas(texture, b.matrices, b.rects, colors, b.alphas)
	*b = atlasBatch{}
}

// Draw regenerates the atlas if needed and emits the mask pass followed by
// the color pass.
func (t *Text) Draw(canvas render.Canvas, atlas *TextAtlas, renderCache render.RenderCache) {
	if atlas == nil {
		return
	}
	atlas.GenerateIfNeeded(canvas.Context(), renderCache)
	t.drawPass(canvas, atlas, false)
	t.drawPass(canvas, atlas, true)
}

// drawPass walks the visible glyphs of one color class in order, resolving
// each paint style to a locator and flushing the accumulated batch whenever
// the page changes.
func (t *Text) drawPass(canvas render.Canvas, atlas *TextAtlas, colorGlyph bool) {
	var batch atlasBatch
	for _, glyph := range t.glyphs {
		if !glyph.IsVisible() || colorGlyph != glyph.Font().HasColor() {
			continue
		}
		var locator AtlasLocator
		for _, style := range glyphPaintStyles(glyph) {
			if !atlas.GetLocator(glyph, style, &locator) {
				continue
			}
			if batch.pageIndex != locator.PageIndex {
				batch.flush(canvas, atlas, colorGlyph)
				batch.pageIndex = locator.PageIndex
			}
			strokeWidth := float32(0)
			drawColor := glyph.FillColor()
			if style == text.PaintStyleStroke {
				strokeWidth = glyph.StrokeWidth()
				drawColor = glyph.StrokeColor()
			}
			// Map the atlas rectangle back onto the glyph's
			// pre-extraMatrix bounds inflated by the stroke, then through
			// the glyph's total transform.
			invertedExtra, _ := glyph.ExtraMatrix().Invert()
			originBounds := invertedExtra.MapRect(glyph.Bounds())
			matrix := text.IdentityMatrix().
				PostScale(
					(originBounds.Width()+strokeWidth*2)/locator.Location.Width(),
					(originBounds.Height()+strokeWidth*2)/locator.Location.Height(),
				).
				PostTranslate(originBounds.X()-strokeWidth, originBounds.Y()-strokeWidth).
				PostConcat(glyph.TotalMatrix())
			batch.matrices = append(batch.matrices, matrix)
			batch.rects = append(batch.rects, locator.Location)
			batch.colors = append(batch.colors, drawColor)
			batch.alphas = append(batch.alphas, glyph.Alpha())
		}
	}
	batch.flush(canvas, atlas, colorGlyph)
}
