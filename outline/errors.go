package outline

import "errors"

// Sentinel errors for the outline package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("outline: empty font data")

	// ErrMissingGlyph is returned when a font has no glyph for a rune.
	ErrMissingGlyph = errors.New("outline: no glyph for rune")
)
