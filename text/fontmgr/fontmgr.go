// Package fontmgr provides a registry-backed FontManager: hosts register
// typefaces per (family, style) plus an ordered fallback list, and document
// tokenization resolves against it. Fallback hits are memoized in the
// process-wide typeface cache.
package fontmgr

import (
	"sync"

	"github.com/gogpu/textatlas/text"
)

type familyKey struct {
	family string
	style  string
}

// Manager implements text.FontManager over registered typefaces.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	families  map[familyKey]text.Typeface
	fallbacks []text.Typeface
	cache     *text.TypefaceCache
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithCache overrides the typeface cache used for fallback memoization.
// The default is the process-wide cache.
func WithCache(cache *text.TypefaceCache) ManagerOption {
	return func(m *Manager) {
		if cache != nil {
			m.cache = cache
		}
	}
}

// New creates an empty manager.
func New(opts ...ManagerOption) *Manager {
	m := &Manager{
		families: make(map[familyKey]text.Typeface),
		cache:    text.GetGlobalTypefaceCache(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterTypeface binds a typeface to an exact (family, style) pair.
func (m *Manager) RegisterTypeface(family, style string, tf text.Typeface) {
	if tf == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.families[familyKey{family: family, style: style}] = tf
}

// RegisterFallback appends a typeface to the fallback list. Fallbacks are
// consulted in registration order.
func (m *Manager) RegisterFallback(tf text.Typeface) {
	if tf == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, tf)
}

// TypefaceWithoutFallback implements text.FontManager.
func (m *Manager) TypefaceWithoutFallback(family, style string) text.Typeface {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.families[familyKey{family: family, style: style}]
}

// FallbackTypeface implements text.FontManager: the cached typeface
// covering the name if one is known, otherwise the first registered
// fallback covering it. The last fallback is returned with glyph index zero
// when nothing covers the name, so the caller records a tofu glyph.
func (m *Manager) FallbackTypeface(name string) (text.Typeface, text.GlyphID) {
	if cached := m.cache.FindByPredicate(func(tf text.Typeface) bool {
		return tf.GlyphID(name) != 0
	}); cached != nil {
		return cached, cached.GlyphID(name)
	}
	m.mu.RLock()
	fallbacks := m.fallbacks
	m.mu.RUnlock()
	for _, tf := range fallbacks {
		if id := tf.GlyphID(name); id != 0 {
			m.cache.Add(tf)
			return tf, id
		}
	}
	if len(fallbacks) > 0 {
		return fallbacks[len(fallbacks)-1], 0
	}
	return nil, 0
}

var _ text.FontManager = (*Manager)(nil)
