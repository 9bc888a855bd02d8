package outline

import (
	"fmt"
	"os"
)

// FontSource is a loaded font file viewed as a source of glyph outlines.
// It owns every Glyph it hands out for the lifetime of the source; callers
// (the assembly session) only read them.
//
// FontSource is heavyweight and should be shared across the application.
// It is safe for concurrent use.
type FontSource struct {
	parsed ParsedFont
	name   string
	cache  *glyphCache
	config sourceConfig
}

// sourceConfig holds optional configuration for FontSource creation.
type sourceConfig struct {
	parserName string
	cacheSize  int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
		cacheSize:  defaultCacheSize,
	}
}

// SourceOption configures a FontSource during creation.
type SourceOption func(*sourceConfig)

// WithParser selects the font parsing backend by registry name
// ("ximage" by default, "gotext" for the go-text/typesetting backend).
// Unknown names fall back to the default backend.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithCacheSize sets the maximum number of cached glyph outlines.
// A size <= 0 disables caching.
func WithCacheSize(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheSize = n
	}
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The backend may retain the data slice; callers must not mutate it
// after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed: parsed,
		name:   parsed.Name(),
		config: config,
	}
	if config.cacheSize > 0 {
		s.cache = newGlyphCache(config.cacheSize)
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("outline: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name, if the backend exposes one.
func (s *FontSource) Name() string {
	return s.name
}

// UnitsPerEm returns the design units per em of the underlying font.
func (s *FontSource) UnitsPerEm() int {
	return s.parsed.UnitsPerEm()
}

// Glyph returns the extracted outline for a rune. Results are cached, and
// the returned Glyph is shared: callers must treat it as read-only.
//
// A rune the font has no mapping for returns an error wrapping
// ErrMissingGlyph; per the assembly contract that is terminal for the
// string being emitted, not a silently skipped character.
func (s *FontSource) Glyph(r rune) (*Glyph, error) {
	if s.cache != nil {
		if g, ok := s.cache.get(r); ok {
			return g, nil
		}
	}

	g, err := s.parsed.Glyph(r)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.put(r, g)
	}
	return g, nil
}
