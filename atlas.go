package textatlas

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/textatlas/internal/log"
	"github.com/gogpu/textatlas/render"
	"github.com/gogpu/textatlas/text"
)

// AtlasLocator identifies a glyph bitmap inside an atlas: the page it lives
// on and its rectangle in page pixel space. Locators are not stable across
// atlas regenerations; draw sites re-query every frame.
type AtlasLocator struct {
	PageIndex int
	Location  text.Rect
}

// TextRun is one canvas draw call on a page at unit scale: parallel glyph
// index and position arrays sharing a font and paint.
type TextRun struct {
	paint     render.Paint
	font      text.Font
	glyphIDs  []text.GlyphID
	positions []text.Point
}

// Page is one atlas texture under construction or built: the text runs
// that rasterize it, its pixel extent, and the retained texture.
type Page struct {
	textRuns []*TextRun
	width    int
	height   int
	texture  render.Texture
}

// Texture returns the page texture, nil when surface creation failed.
func (p *Page) Texture() render.Texture { return p.texture }

// Width returns the page width in pixels.
func (p *Page) Width() int { return p.width }

// Height returns the page height in pixels.
func (p *Page) Height() int { return p.height }

// Atlas lays out one color class of AtlasGlyphs onto pages and retains the
// page textures together with the locator map.
type Atlas struct {
	pages         []*Page
	glyphLocators map[string]AtlasLocator
}

// MakeAtlas builds an atlas from glyphs sorted by the caller. It returns
// nil when glyphs is empty. scale is the rasterization scale;
// maxTextureSize bounds page extents in device pixels; alphaOnly selects
// the mask page format.
func MakeAtlas(ctx *render.Context, scale float32, glyphs []*AtlasGlyph, maxTextureSize int, alphaOnly bool) *Atlas {
	if len(glyphs) == 0 {
		return nil
	}
	atlas := &Atlas{glyphLocators: make(map[string]AtlasLocator)}
	atlas.initPages(glyphs, scale, maxTextureSize)
	atlas.draw(ctx, scale, alphaOnly)
	log.Logger().Debug("textatlas: atlas built",
		"glyphs", len(glyphs), "pages", len(atlas.pages), "scale", scale, "alphaOnly", alphaOnly)
	return atlas
}

// createTextRun starts a run carrying the group's paint and font.
func createTextRun(glyph *AtlasGlyph) *TextRun {
	run := &TextRun{font: glyph.Font()}
	run.paint.Style = glyph.Style()
	if glyph.Style() == text.PaintStyleStroke {
		run.paint.StrokeWidth = glyph.StrokeWidth()
	}
	return run
}

// initPages groups the glyphs by style key in encounter order, so each
// group becomes one text run per page, and packs every glyph's padded
// pixel rect. When a placement would grow the pack beyond
// floor(maxTextureSize/scale) on either axis, the current page is closed at
// the extent snapshotted before the placement and a fresh page and packer
// take over.
func (a *Atlas) initPages(glyphs []*AtlasGlyph, scale float32, maxTextureSize int) {
	var styleKeys []string
	styleMap := make(map[string][]*AtlasGlyph)
	for _, glyph := range glyphs {
		var styleKey text.BytesKey
		glyph.ComputeStyleKey(&styleKey)
		key := styleKey.String()
		if _, ok := styleMap[key]; !ok {
			styleKeys = append(styleKeys, key)
		}
		styleMap[key] = append(styleMap[key], glyph)
	}
	maxPageSize := int(math32.Floor(float32(maxTextureSize) / scale))
	pack := NewRectanglePack()
	page := &Page{}
	pageIndex := 0
	for _, key := range styleKeys {
		group := styleMap[key]
		textRun := createTextRun(group[0])
		for _, glyph := range group {
			bounds := glyph.Bounds()
			glyphWidth := int(bounds.Width())
			glyphHeight := int(bounds.Height())
			strokeInset := 0
			if glyph.Style() == text.PaintStyleStroke {
				strokeInset = int(math32.Ceil(glyph.StrokeWidth()))
			}
			x := bounds.X() - float32(strokeInset)
			y := bounds.Y() - float32(strokeInset)
			width := glyphWidth + strokeInset*2
			height := glyphHeight + strokeInset*2
			packWidth := pack.Width()
			packHeight := pack.Height()
			point := pack.AddRect(width, height)
			if pack.Width() > maxPageSize || pack.Height() > maxPageSize {
				page.textRuns = append(page.textRuns, textRun)
				page.width = int(math32.Ceil(float32(packWidth) * scale))
				page.height = int(math32.Ceil(float32(packHeight) * scale))
				a.pages = append(a.pages, page)
				textRun = createTextRun(group[0])
				page = &Page{}
				pack.Reset()
				point = pack.AddRect(width, height)
				pageIndex++
			}
			textRun.glyphIDs = append(textRun.glyphIDs, glyph.GlyphID())
			textRun.positions = append(textRun.positions, text.Point{X: -x + point.X, Y: -y + point.Y})
			locator := AtlasLocator{
				PageIndex: pageIndex,
				Location:  text.MakeXYWH(point.X, point.Y, float32(width), float32(height)).Scale(scale, scale),
			}
			var atlasKey text.BytesKey
			glyph.ComputeAtlasKey(&atlasKey)
			a.glyphLocators[atlasKey.String()] = locator
		}
		page.textRuns = append(page.textRuns, textRun)
	}
	page.width = int(math32.Ceil(float32(pack.Width()) * scale))
	page.height = int(math32.Ceil(float32(pack.Height()) * scale))
	a.pages = append(a.pages, page)
}

// drawTextRuns issues one DrawGlyphs call per run at the atlas scale,
// restoring the canvas transform between runs and before returning.
func drawTextRuns(canvas render.Canvas, textRuns []*TextRun, scale float32) {
	totalMatrix := canvas.Matrix()
	for _, run := range textRuns {
		canvas.SetMatrix(totalMatrix)
		canvas.Concat(text.ScaleMatrix(scale, scale))
		canvas.DrawGlyphs(run.glyphIDs, run.positions, run.font, run.paint)
	}
	canvas.SetMatrix(totalMatrix)
}

// draw rasterizes every page into a fresh surface and retains the
// resulting texture. A failed surface leaves the page without a texture;
// that page renders nothing.
func (a *Atlas) draw(ctx *render.Context, scale float32, alphaOnly bool) {
	for _, page := range a.pages {
		surface := render.MakeSurface(ctx, page.width, page.height, alphaOnly)
		if surface == nil {
			continue
		}
		drawTextRuns(surface.Canvas(), page.textRuns, scale)
		page.texture = surface.Texture()
	}
}

// computeDisplayAtlasKey builds the locator key for a display glyph and
// style, mirroring AtlasGlyph.ComputeAtlasKey: fill lookups use stroke
// width zero regardless of the glyph's current stroke width.
func computeDisplayAtlasKey(glyph *text.Glyph, style text.PaintStyle, key *text.BytesKey) {
	glyph.ComputeAtlasKey(key)
	key.WriteUint32(uint32(style))
	if style == text.PaintStyleFill {
		key.WriteFloat32(0)
	} else {
		key.WriteFloat32(glyph.StrokeWidth())
	}
}

// GetLocator reports whether the atlas holds a bitmap for (glyph, style)
// and copies its locator into locator when non-nil.
func (a *Atlas) GetLocator(glyph *text.Glyph, style text.PaintStyle, locator *AtlasLocator) bool {
	var key text.BytesKey
	computeDisplayAtlasKey(glyph, style, &key)
	found, ok := a.glyphLocators[key.String()]
	if !ok {
		return false
	}
	if locator != nil {
		*locator = found
	}
	return true
}

// PageCount returns the number of pages.
func (a *Atlas) PageCount() int { return len(a.pages) }

// PageTexture returns the texture of the page at index, nil when out of
// range or when the page's surface failed.
func (a *Atlas) PageTexture(index int) render.Texture {
	if index < 0 || index >= len(a.pages) {
		return nil
	}
	return a.pages[index].texture
}
