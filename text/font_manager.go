package text

import "sync"

// FontManager resolves typefaces for documents. Implementations typically
// front a platform font registry; tests install a texttest fake.
type FontManager interface {
	// TypefaceWithoutFallback resolves (family, style) exactly, returning
	// nil when the family is not registered. No fallback is attempted.
	TypefaceWithoutFallback(family, style string) Typeface

	// FallbackTypeface returns a typeface able to render the given
	// character name, together with the glyph index in that typeface.
	// The glyph index may be zero when no registered typeface covers the
	// name; the returned typeface is then used for the tofu glyph.
	FallbackTypeface(name string) (Typeface, GlyphID)
}

var (
	fontManagerMu sync.RWMutex
	fontManager   FontManager = emptyFontManager{}
)

// SetFontManager installs the process-wide font manager used during
// document tokenization. Pass nil to restore the default empty manager.
func SetFontManager(m FontManager) {
	fontManagerMu.Lock()
	defer fontManagerMu.Unlock()
	if m == nil {
		m = emptyFontManager{}
	}
	fontManager = m
}

// GetFontManager returns the current font manager.
func GetFontManager() FontManager {
	fontManagerMu.RLock()
	defer fontManagerMu.RUnlock()
	return fontManager
}

// emptyFontManager resolves nothing. Documents tokenized against it produce
// tofu glyphs with nil typefaces.
type emptyFontManager struct{}

func (emptyFontManager) TypefaceWithoutFallback(string, string) Typeface { return nil }

func (emptyFontManager) FallbackTypeface(string) (Typeface, GlyphID) { return nil, 0 }
