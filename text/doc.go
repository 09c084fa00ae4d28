// Package text provides the glyph and document model for atlas-based text
// rendering: typeface and font abstractions, simple glyphs tokenized from
// text documents, display glyphs with per-draw styling, and the byte-sequence
// keys used to identify glyph bitmaps across atlas rebuilds.
//
// The package is backend-agnostic. Concrete Typeface implementations live in
// the gotext (go-text/typesetting) and ximage (golang.org/x/image)
// subpackages and are resolved through a FontManager.
package text
