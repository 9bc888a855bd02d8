package outline

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont over sfnt.Font.
// sfnt.Buffer is not safe for concurrent use, so all sfnt calls are
// serialized behind mu; the buffer is reused across calls to avoid
// per-glyph allocations.
type ximageFont struct {
	mu   sync.Mutex
	font *sfnt.Font
	buf  sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// Glyph implements ParsedFont.Glyph.
//
// The glyph is loaded at ppem == unitsPerEm so sfnt hands back raw design
// units, which are then divided by unitsPerEm into em units. sfnt outlines
// are y-down; the conversion flips them to this package's y-up convention.
func (f *ximageFont) Glyph(r rune) (*Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("outline: glyph index for %q: %w", r, err)
	}
	if gi == 0 {
		return nil, fmt.Errorf("outline: %q: %w", r, ErrMissingGlyph)
	}

	upem := f.font.UnitsPerEm()
	ppem := fixed.Int26_6(int32(upem) << 6)
	inv := 1.0 / float64(upem)

	segments, err := f.font.LoadGlyph(&f.buf, gi, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("outline: load glyph %q: %w", r, err)
	}

	var b contourBuilder
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(emPoint(seg.Args[0], inv))
		case sfnt.SegmentOpLineTo:
			b.LineTo(emPoint(seg.Args[0], inv))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(emPoint(seg.Args[0], inv), emPoint(seg.Args[1], inv))
		case sfnt.SegmentOpCubeTo:
			b.CubicTo(emPoint(seg.Args[0], inv), emPoint(seg.Args[1], inv), emPoint(seg.Args[2], inv))
		}
	}

	advance, err := f.font.GlyphAdvance(&f.buf, gi, ppem, 0) // no hinting
	if err != nil {
		return nil, fmt.Errorf("outline: glyph advance %q: %w", r, err)
	}

	return &Glyph{
		Rune:     r,
		Contours: b.Contours(),
		Advance:  float64(advance) / 64.0 * inv,
	}, nil
}

// emPoint converts a 26.6 fixed-point design-unit coordinate to em units,
// flipping the y axis to y-up.
func emPoint(p fixed.Point26_6, inv float64) Point {
	return Point{
		X: float64(p.X) / 64.0 * inv,
		Y: -float64(p.Y) / 64.0 * inv,
	}
}
