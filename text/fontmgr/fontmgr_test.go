package fontmgr

import (
	"testing"

	"github.com/gogpu/textatlas/text"
	"github.com/gogpu/textatlas/text/texttest"
)

// newManager builds a manager over a small private cache so tests do not
// touch the process-wide one.
func newManager() (*Manager, *text.TypefaceCache) {
	cache := text.NewTypefaceCacheWithConfig(text.TypefaceCacheConfig{
		MaxEntries: 16,
		PurgeCount: 4,
	})
	return New(WithCache(cache)), cache
}

func TestManagerExactResolution(t *testing.T) {
	m, _ := newManager()
	regular := texttest.NewTypeface()
	bold := texttest.NewTypeface()
	m.RegisterTypeface("Sans", "Regular", regular)
	m.RegisterTypeface("Sans", "Bold", bold)

	if got := m.TypefaceWithoutFallback("Sans", "Bold"); got != text.Typeface(bold) {
		t.Errorf("resolved %v, want the bold face", got)
	}
	if got := m.TypefaceWithoutFallback("Sans", "Black"); got != nil {
		t.Errorf("unregistered style resolved to %v, want nil", got)
	}
	if got := m.TypefaceWithoutFallback("Serif", "Regular"); got != nil {
		t.Errorf("unregistered family resolved to %v, want nil", got)
	}
}

func TestManagerFallbackOrder(t *testing.T) {
	m, _ := newManager()
	first := texttest.NewTypeface()
	first.Missing = map[string]bool{"☃": true}
	second := texttest.NewTypeface()
	m.RegisterFallback(first)
	m.RegisterFallback(second)

	tf, id := m.FallbackTypeface("A")
	if tf != text.Typeface(first) || id == 0 {
		t.Errorf("fallback for covered name = %v/%d, want first face", tf, id)
	}
	tf, id = m.FallbackTypeface("☃")
	if tf != text.Typeface(second) || id == 0 {
		t.Errorf("fallback skipped to %v/%d, want second face", tf, id)
	}
}

func TestManagerFallbackTofu(t *testing.T) {
	m, _ := newManager()
	only := texttest.NewTypeface()
	only.Missing = map[string]bool{"☃": true}
	m.RegisterFallback(only)

	tf, id := m.FallbackTypeface("☃")
	if tf != text.Typeface(only) || id != 0 {
		t.Errorf("uncovered name = %v/%d, want last fallback with glyph 0", tf, id)
	}
}

func TestManagerFallbackNoneRegistered(t *testing.T) {
	m, _ := newManager()
	tf, id := m.FallbackTypeface("A")
	if tf != nil || id != 0 {
		t.Errorf("empty manager returned %v/%d", tf, id)
	}
}

func TestManagerFallbackMemoized(t *testing.T) {
	m, cache := newManager()
	fallback := texttest.NewTypeface()
	m.RegisterFallback(fallback)

	if cache.Len() != 0 {
		t.Fatalf("cache not empty initially")
	}
	m.FallbackTypeface("A")
	if cache.Len() != 1 {
		t.Fatalf("fallback hit not cached, Len = %d", cache.Len())
	}
	// The second resolution is served from the cache.
	m.FallbackTypeface("A")
	hits, _, _ := cache.Stats()
	if hits == 0 {
		t.Errorf("repeated fallback did not hit the cache")
	}
}

func TestManagerIgnoresNilRegistrations(t *testing.T) {
	m, _ := newManager()
	m.RegisterTypeface("Sans", "Regular", nil)
	m.RegisterFallback(nil)
	if m.TypefaceWithoutFallback("Sans", "Regular") != nil {
		t.Errorf("nil registration resolved")
	}
	if tf, _ := m.FallbackTypeface("A"); tf != nil {
		t.Errorf("nil fallback resolved to %v", tf)
	}
}
