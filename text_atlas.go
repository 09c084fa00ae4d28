package textatlas

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/gogpu/textatlas/internal/log"
	"github.com/gogpu/textatlas/render"
	"github.com/gogpu/textatlas/text"
)

// scaleEpsilon is the scale delta above which both atlases regenerate.
const scaleEpsilon = 0.01

// TextAtlas owns the mask and color atlases of one text asset. It collects
// the distinct documents of a possibly animated text property, splits their
// glyphs by typeface colorness, and rebuilds both atlases whenever the
// rendering scale moves by more than scaleEpsilon.
type TextAtlas struct {
	assetID uint32
	glyphs  map[*text.TextDocument]*text.GlyphDocument
	scale   float32

	maskGlyphs  []*AtlasGlyph
	colorGlyphs []*AtlasGlyph
	maskAtlas   *Atlas
	colorAtlas  *Atlas
}

// Make collects the distinct text documents of sourceText and prepares the
// atlas glyph sets. For an animated property it takes the first keyframe's
// start value and every keyframe's end value; otherwise the value at time
// zero. It returns nil when there are no documents.
func Make(assetID uint32, sourceText *text.Property[*text.TextDocument]) *TextAtlas {
	if sourceText == nil {
		return nil
	}
	glyphs := make(map[*text.TextDocument]*text.GlyphDocument)
	if sourceText.Animatable() {
		doc := sourceText.Keyframes[0].StartValue
		glyphs[doc] = text.CreateGlyphDocument(doc)
		for _, keyframe := range sourceText.Keyframes {
			doc = keyframe.EndValue
			glyphs[doc] = text.CreateGlyphDocument(doc)
		}
	} else if doc := sourceText.Value; doc != nil {
		glyphs[doc] = text.CreateGlyphDocument(doc)
	}
	if len(glyphs) == 0 {
		return nil
	}
	atlas := &TextAtlas{assetID: assetID, glyphs: glyphs, scale: 1}
	atlas.initAtlasGlyphs()
	return atlas
}

// initAtlasGlyphs expands every document glyph into its styled atlas
// glyphs, splitting by typeface colorness. Color typefaces only ever get a
// fill rendition. Duplicates are dropped by atlas key with a linear scan;
// the key population is small in practice.
func (t *TextAtlas) initAtlasGlyphs() {
	var atlasKeys []string
	seen := func(key string) bool {
		for _, k := range atlasKeys {
			if k == key {
				return true
			}
		}
		return false
	}
	for _, doc := range t.glyphs {
		paint := doc.Paint
		for _, glyph := range doc.Glyphs {
			hasColor := glyph.Font().HasColor()
			if !hasColor {
				if paint.Style == text.TextStyleStroke || paint.Style == text.TextStyleStrokeAndFill {
					atlasGlyph := NewStrokeAtlasGlyph(glyph, paint.StrokeWidth)
					var key text.BytesKey
					atlasGlyph.ComputeAtlasKey(&key)
					if !seen(key.String()) {
						t.maskGlyphs = append(t.maskGlyphs, atlasGlyph)
						atlasKeys = append(atlasKeys, key.String())
					}
				}
			}
			if paint.Style == text.TextStyleFill || paint.Style == text.TextStyleStrokeAndFill {
				atlasGlyph := NewFillAtlasGlyph(glyph)
				var key text.BytesKey
				atlasGlyph.ComputeAtlasKey(&key)
				if !seen(key.String()) {
					if hasColor {
						t.colorGlyphs = append(t.colorGlyphs, atlasGlyph)
					} else {
						t.maskGlyphs = append(t.maskGlyphs, atlasGlyph)
					}
					atlasKeys = append(atlasKeys, key.String())
				}
			}
		}
	}
	sortAtlasGlyphs(t.maskGlyphs)
	sortAtlasGlyphs(t.colorGlyphs)
}

// sortAtlasGlyphs orders glyphs largest first so the online packer sees big
// rectangles early, which improves packing density. A glyph sorts before
// another when its area, its width or its height is larger.
func sortAtlasGlyphs(glyphs []*AtlasGlyph) {
	if len(glyphs) == 0 {
		return
	}
	sort.SliceStable(glyphs, func(i, j int) bool {
		a := glyphs[i].Bounds()
		b := glyphs[j].Bounds()
		return a.Width()*a.Height() > b.Width()*b.Height() ||
			a.Width() > b.Width() ||
			a.Height() > b.Height()
	})
}

// AssetID returns the asset this atlas belongs to.
func (t *TextAtlas) AssetID() uint32 { return t.assetID }

// Scale returns the scale both atlases were last built at.
func (t *TextAtlas) Scale() float32 { return t.scale }

// GlyphDocument returns the tokenized document for a collected
// TextDocument, nil when the document was not part of this atlas.
func (t *TextAtlas) GlyphDocument(doc *text.TextDocument) *text.GlyphDocument {
	return t.glyphs[doc]
}

// GenerateIfNeeded builds any missing atlas and rebuilds both when the
// render cache reports a scale differing from the current one by more than
// scaleEpsilon. Old page textures are released on rebuild.
func (t *TextAtlas) GenerateIfNeeded(ctx *render.Context, renderCache render.RenderCache) {
	scale := renderCache.AssetMaxScale(t.assetID)
	scaleChanged := math32.Abs(t.scale-scale) > scaleEpsilon
	noAtlas := t.maskAtlas == nil && t.colorAtlas == nil
	maxTextureSize := ctx.Caps().MaxTextureSize
	if t.maskAtlas == nil || scaleChanged {
		releaseAtlas(t.maskAtlas)
		t.maskAtlas = MakeAtlas(ctx, scale, t.maskGlyphs, maxTextureSize, true)
	}
	if t.colorAtlas == nil || scaleChanged {
		releaseAtlas(t.colorAtlas)
		t.colorAtlas = MakeAtlas(ctx, scale, t.colorGlyphs, maxTextureSize, false)
	}
	if scaleChanged {
		log.Logger().Debug("textatlas: regenerated", "assetID", t.assetID,
			"oldScale", t.scale, "newScale", scale)
	}
	if scaleChanged || noAtlas {
		t.scale = scale
	}
}

// releaseAtlas destroys the page textures of a replaced atlas.
func releaseAtlas(a *Atlas) {
	if a == nil {
		return
	}
	for _, page := range a.pages {
		if page.texture != nil {
			page.texture.Destroy()
		}
	}
}

// Release destroys all page textures. The atlas is unusable afterwards.
func (t *TextAtlas) Release() {
	releaseAtlas(t.maskAtlas)
	releaseAtlas(t.colorAtlas)
	t.maskAtlas = nil
	t.colorAtlas = nil
}

// GetLocator resolves (glyph, style) in the atlas matching the glyph's
// typeface colorness. It reports false when that atlas is absent or has no
// entry; querying the wrong color class is a normal miss, not an error.
func (t *TextAtlas) GetLocator(glyph *text.Glyph, style text.PaintStyle, locator *AtlasLocator) bool {
	if glyph.Font().HasColor() {
		return t.colorAtlas != nil && t.colorAtlas.GetLocator(glyph, style, locator)
	}
	return t.maskAtlas != nil && t.maskAtlas.GetLocator(glyph, style, locator)
}

// MaskAtlasTexture returns the mask page texture at pageIndex, nil when out
// of range.
func (t *TextAtlas) MaskAtlasTexture(pageIndex int) render.Texture {
	if t.maskAtlas == nil {
		return nil
	}
	return t.maskAtlas.PageTexture(pageIndex)
}

// ColorAtlasTexture returns the color page texture at pageIndex, nil when
// out of range.
func (t *TextAtlas) ColorAtlasTexture(pageIndex int) render.Texture {
	if t.colorAtlas == nil {
		return nil
	}
	return t.colorAtlas.PageTexture(pageIndex)
}
