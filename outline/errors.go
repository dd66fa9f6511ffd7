package outline

import (
	"errors"
	"strconv"
)

// Sentinel errors for the outline package.
var (
	// ErrFontNotFound is returned when a font identifier matches neither a
	// registered font nor a readable file.
	ErrFontNotFound = errors.New("outline: font not found")

	// ErrUnknownBackend is returned when no backend is registered under the
	// requested name.
	ErrUnknownBackend = errors.New("outline: unknown backend")

	// ErrOutlineGeneration is returned when a font loads but a glyph outline
	// cannot be produced.
	ErrOutlineGeneration = errors.New("outline: outline generation failed")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("outline: empty font data")
)

// FontError reports a failure tied to a specific font and backend.
type FontError struct {
	FontID  string
	Backend string
	Err     error
}

func (e *FontError) Error() string {
	return "outline: font " + strconv.Quote(e.FontID) + " (" + e.Backend + "): " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }
