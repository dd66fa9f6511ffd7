package outline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sdftext/internal/cache"
)

// Source produces an SVG document holding a single path element whose d
// attribute traces text set in the identified font.
type Source interface {
	FetchOutline(ctx context.Context, text, fontID string) (string, error)
}

// Generator is the built-in Source. It lays text out on a single line with
// plain advances, no kerning or shaping.
type Generator struct {
	opts  generatorOptions
	fonts *cache.Cache[fontKey, Font]
	gen   atomic.Uint64 // fontGeneration the cache was filled under
}

type fontKey struct {
	backend string
	id      string
}

var _ Source = (*Generator)(nil)

// New creates a Generator.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{
		opts:  o,
		fonts: cache.New[fontKey, Font](o.cacheSize),
	}
	g.gen.Store(fontGeneration.Load())
	return g
}

// Backend returns the configured backend name.
func (g *Generator) Backend() string { return g.opts.backend }

// FontSize returns the configured em size in pixels.
func (g *Generator) FontSize() float64 { return g.opts.size }

// FetchOutline renders text in fontID and returns the SVG document.
//
// Text is NFC-normalized first; control characters are skipped. The outline
// sits with its top at y = 0 (ascender line) and starts at x = 0. Empty text
// yields a document with empty path data.
func (g *Generator) FetchOutline(ctx context.Context, text, fontID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fontID == "" {
		fontID = DefaultFont
	}

	f, err := g.font(fontID)
	if err != nil {
		return "", err
	}
	face := f.Face(g.opts.size)
	ascent, descent := face.Metrics()

	var w pathWriter
	x := 0.0
	for _, r := range norm.NFC.String(text) {
		if unicode.IsControl(r) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		glyph, err := face.Glyph(r)
		if err != nil {
			return "", &FontError{
				FontID:  fontID,
				Backend: g.opts.backend,
				Err:     fmt.Errorf("%w: rune %q: %w", ErrOutlineGeneration, r, err),
			}
		}
		w.glyph(glyph, x, ascent)
		x += glyph.Advance
	}

	d := w.String()
	Logger().Debug("outline: generated",
		"font", fontID, "backend", g.opts.backend, "runes", len(text), "bytes", len(d))
	return document(x, ascent+descent, d, g.opts.paint), nil
}

// font returns the parsed font for id, parsing it on first use.
func (g *Generator) font(id string) (Font, error) {
	backend, ok := lookupBackend(g.opts.backend)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, g.opts.backend)
	}
	if gen := fontGeneration.Load(); g.gen.Swap(gen) != gen {
		g.fonts.Clear()
		Logger().Debug("outline: font registry changed, dropped parsed fonts")
	}

	f, err := g.fonts.GetOrLoad(fontKey{backend: g.opts.backend, id: id}, func() (Font, error) {
		data, err := loadFontData(id)
		if err != nil {
			return nil, err
		}
		f, err := backend.Parse(data)
		if err != nil {
			return nil, err
		}
		Logger().Debug("outline: parsed font", "font", id, "backend", g.opts.backend, "size", len(data))
		return f, nil
	})
	if err != nil {
		fe := &FontError{FontID: id, Backend: g.opts.backend, Err: err}
		if !errors.Is(err, ErrFontNotFound) && !errors.Is(err, ErrEmptyFontData) {
			fe.Err = fmt.Errorf("%w: %w", ErrOutlineGeneration, err)
		}
		return nil, fe
	}
	return f, nil
}

// CacheStats reports the parsed-font cache statistics.
func (g *Generator) CacheStats() cache.Stats {
	return g.fonts.Stats()
}
