// Package outline renders text into an SVG document whose single path
// element traces every glyph outline.
//
// A Generator resolves a font identifier to font data (a registered name or
// a file path), parses it with one of the registered backends, and emits
// the outline of each rune with its top edge at y = 0 and the y axis growing
// downward. Parsed fonts are kept in an LRU cache per (backend, font) pair.
//
// Three backends are built in:
//
//   - "sfnt" (default): golang.org/x/image/font/sfnt, TrueType and CFF.
//   - "gotext": github.com/go-text/typesetting, TrueType and CFF.
//   - "freetype": github.com/golang/freetype/truetype, TrueType only.
//
// Generator is safe for concurrent use.
package outline
