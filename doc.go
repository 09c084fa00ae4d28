// Package textatlas builds and maintains glyph texture atlases for animated
// text rendering.
//
// Given one or more text documents (possibly animated across keyframes), it
// rasterizes each distinct styled glyph once into a set of bounded GPU
// texture pages: an alpha-only mask atlas for outline glyphs and an RGBA
// color atlas for color typefaces. Locator queries map a (glyph, paint
// style) pair to the page and source rectangle holding its bitmap, and draw
// sites batch those locators into drawAtlas calls.
//
// The package consumes typefaces, surfaces and canvases through the text
// and render subpackages; it performs no font parsing or rasterization of
// its own.
package textatlas
