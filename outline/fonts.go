package outline

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// DefaultFont is the identifier resolved when none is given.
const DefaultFont = "default"

var fontRegistry = struct {
	sync.RWMutex
	m map[string][]byte
}{
	m: map[string][]byte{
		DefaultFont:    goregular.TTF,
		"goregular":    goregular.TTF,
		"gobold":       gobold.TTF,
		"goitalic":     goitalic.TTF,
		"gobolditalic": gobolditalic.TTF,
		"gomedium":     gomedium.TTF,
		"gomono":       gomono.TTF,
		"gomonobold":   gomonobold.TTF,
		"gosmallcaps":  gosmallcaps.TTF,
		"lmroman":      lmroman10regular.TTF,
		"lmsans":       lmsans10regular.TTF,
		"lmmono":       lmmono10regular.TTF,
	},
}

// fontGeneration counts registry changes. Generators drop their parsed
// fonts when it moves.
var fontGeneration atomic.Uint64

// RegisterFont makes data available under name, replacing any font already
// registered there. Existing generators parse it again on their next fetch.
func RegisterFont(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	fontRegistry.Lock()
	fontRegistry.m[name] = data
	fontRegistry.Unlock()
	fontGeneration.Add(1)
	return nil
}

// Fonts returns the registered font names, sorted.
func Fonts() []string {
	fontRegistry.RLock()
	defer fontRegistry.RUnlock()
	names := make([]string, 0, len(fontRegistry.m))
	for name := range fontRegistry.m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// loadFontData resolves id to font bytes. Registered names win; anything
// that looks like a path is read from disk.
func loadFontData(id string) ([]byte, error) {
	if id == "" {
		id = DefaultFont
	}
	fontRegistry.RLock()
	data, ok := fontRegistry.m[id]
	fontRegistry.RUnlock()
	if ok {
		return data, nil
	}
	if !isFontPath(id) {
		return nil, ErrFontNotFound
	}

	data, err := os.ReadFile(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontNotFound, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return data, nil
}

func isFontPath(id string) bool {
	if strings.ContainsRune(id, filepath.Separator) || strings.ContainsRune(id, '/') {
		return true
	}
	switch strings.ToLower(filepath.Ext(id)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}
