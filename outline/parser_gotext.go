package outline

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using go-text/typesetting.
// It handles some font flavors the sfnt backend rejects (notably CFF2)
// and shares the parsed representation with shaping layers built on
// typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: failed to parse font: %w", err)
	}
	return &gotextFont{face: face, upem: int(face.Upem())}, nil
}

// gotextFont implements ParsedFont over a typesetting font.Face.
// font.Face caches glyph data and is not safe for concurrent use, so
// calls are serialized behind mu.
type gotextFont struct {
	mu   sync.Mutex
	face *font.Face
	upem int
}

// Name implements ParsedFont.Name.
func (f *gotextFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	desc := f.face.Describe()
	return desc.Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return f.upem
}

// Glyph implements ParsedFont.Glyph.
// typesetting outlines are in font units with y already up, so the
// conversion only normalizes to em units.
func (f *gotextFont) Glyph(r rune) (*Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("outline: %q: %w", r, ErrMissingGlyph)
	}

	inv := 1.0 / float64(f.upem)

	var b contourBuilder
	if data, ok := f.face.GlyphData(gid).(font.GlyphOutline); ok {
		for _, seg := range data.Segments {
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				b.MoveTo(segPoint(seg.Args[0], inv))
			case ot.SegmentOpLineTo:
				b.LineTo(segPoint(seg.Args[0], inv))
			case ot.SegmentOpQuadTo:
				b.QuadTo(segPoint(seg.Args[0], inv), segPoint(seg.Args[1], inv))
			case ot.SegmentOpCubeTo:
				b.CubicTo(segPoint(seg.Args[0], inv), segPoint(seg.Args[1], inv), segPoint(seg.Args[2], inv))
			}
		}
	}

	advance := float64(f.face.HorizontalAdvance(gid)) * inv

	return &Glyph{
		Rune:     r,
		Contours: b.Contours(),
		Advance:  advance,
	}, nil
}

// segPoint converts a typesetting font-unit point to em units.
func segPoint(p font.SegmentPoint, inv float64) Point {
	return Point{
		X: float64(p.X) * inv,
		Y: float64(p.Y) * inv,
	}
}
