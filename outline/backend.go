package outline

import (
	"slices"
	"sync"
)

// Backend parses font files into outline sources.
// This abstraction allows swapping the font parsing library.
type Backend interface {
	// Parse parses font data (TTF or OTF).
	Parse(data []byte) (Font, error)
}

// Font is a parsed font. Implementations must be safe for concurrent use.
type Font interface {
	// Face returns a view of the font scaled to size pixels per em.
	Face(size float64) Face
}

// Face produces scaled glyph outlines. A Face is not safe for concurrent
// use; each outline request creates its own.
type Face interface {
	// Metrics returns the ascent and descent in pixels, both positive.
	Metrics() (ascent, descent float64)

	// Glyph returns the outline of r. Runes the font lacks map to the
	// .notdef glyph.
	Glyph(r rune) (Glyph, error)
}

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "sfnt"

var backendRegistry = struct {
	sync.RWMutex
	m map[string]Backend
}{
	m: map[string]Backend{
		"sfnt":     sfntBackend{},
		"gotext":   gotextBackend{},
		"freetype": freetypeBackend{},
	},
}

// RegisterBackend registers a font parsing backend under name, replacing
// any previous registration.
func RegisterBackend(name string, b Backend) {
	backendRegistry.Lock()
	defer backendRegistry.Unlock()
	backendRegistry.m[name] = b
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backendRegistry.RLock()
	defer backendRegistry.RUnlock()
	names := make([]string, 0, len(backendRegistry.m))
	for name := range backendRegistry.m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupBackend(name string) (Backend, bool) {
	backendRegistry.RLock()
	defer backendRegistry.RUnlock()
	b, ok := backendRegistry.m[name]
	return b, ok
}
