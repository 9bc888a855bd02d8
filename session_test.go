package beztess

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/beztess/outline"
)

// opoint builds an outline-space point.
func opoint(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y}
}

// triangleGlyph is a synthetic two-segment open triangle top: a line up
// to the apex and a line back down, advance 1. Small enough to check
// every emitted coordinate by hand.
func triangleGlyph(r rune) *outline.Glyph {
	return &outline.Glyph{
		Rune: r,
		Contours: []outline.Contour{{
			outline.LineSegment(opoint(0, 0), opoint(0.5, 1)),
			outline.LineSegment(opoint(0.5, 1), opoint(1, 0)),
		}},
		Advance: 1.0,
	}
}

// quadGlyph has a single quadratic segment, advance 0.5.
func quadGlyph(r rune) *outline.Glyph {
	return &outline.Glyph{
		Rune: r,
		Contours: []outline.Contour{{
			outline.QuadSegment(opoint(0, 0), opoint(0.25, 1), opoint(0.5, 0)),
		}},
		Advance: 0.5,
	}
}

// cubicGlyph has a single cubic segment, advance 0.5.
func cubicGlyph(r rune) *outline.Glyph {
	return &outline.Glyph{
		Rune: r,
		Contours: []outline.Contour{{
			outline.CubicSegment(opoint(0, 0), opoint(0.1, 1), opoint(0.4, 1), opoint(0.5, 0)),
		}},
		Advance: 0.5,
	}
}

// mapSource serves glyphs from a rune map. Unknown runes report
// outline.ErrMissingGlyph like a real font source.
type mapSource map[rune]*outline.Glyph

func (m mapSource) Glyph(r rune) (*outline.Glyph, error) {
	g, ok := m[r]
	if !ok {
		return nil, outline.ErrMissingGlyph
	}
	return g, nil
}

func TestNewSession_PanicsOnBadDegree(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewSession(DegreeLine) did not panic")
		}
	}()
	NewSession(outline.DegreeLine)
}

func TestSession_PassThrough(t *testing.T) {
	tests := []struct {
		name   string
		target outline.Degree
		glyph  *outline.Glyph
		want   []Point
	}{
		{
			name:   "quadratic into quadratic",
			target: outline.DegreeQuadratic,
			glyph:  quadGlyph('q'),
			want:   []Point{{0, 0}, {0.25, 1}, {0.5, 0}},
		},
		{
			name:   "cubic into cubic",
			target: outline.DegreeCubic,
			glyph:  cubicGlyph('c'),
			want:   []Point{{0, 0}, {0.1, 1}, {0.4, 1}, {0.5, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.target)
			adv, err := s.EmitGlyph(tt.glyph, 0)
			if err != nil {
				t.Fatalf("EmitGlyph() error = %v", err)
			}
			if adv != tt.glyph.Advance {
				t.Errorf("advance = %v, want %v", adv, tt.glyph.Advance)
			}
			checkVertices(t, s.Vertices(), tt.want)
		})
	}
}

func TestSession_LineIntoCubic(t *testing.T) {
	s := NewSession(outline.DegreeCubic)
	g := &outline.Glyph{
		Rune: 'l',
		Contours: []outline.Contour{{
			outline.LineSegment(opoint(0, 0), opoint(1, 0)),
		}},
		Advance: 1,
	}

	if _, err := s.EmitGlyph(g, 0); err != nil {
		t.Fatalf("EmitGlyph() error = %v", err)
	}

	// A line becomes a degenerate cubic with doubled endpoints.
	want := []Point{{0, 0}, {0, 0}, {1, 0}, {1, 0}}
	checkVertices(t, s.Vertices(), want)
}

func TestSession_LineIntoQuadratic(t *testing.T) {
	// Two line segments in one contour: the first emits a doubled start,
	// subsequent ones ride on the joint the previous segment emitted.
	s := NewSession(outline.DegreeQuadratic)
	if _, err := s.EmitGlyph(triangleGlyph('A'), 0); err != nil {
		t.Fatalf("EmitGlyph() error = %v", err)
	}

	want := []Point{
		{0, 0}, {0, 0}, {0.5, 1}, // first segment: [p0, p0, p1]
		{0.5, 1}, {1, 0}, // second segment: [p0, p1]
	}
	checkVertices(t, s.Vertices(), want)
}

func TestSession_LineIntoQuadratic_SecondContourRestarts(t *testing.T) {
	// The first segment of every contour re-duplicates its start.
	s := NewSession(outline.DegreeQuadratic)
	g := &outline.Glyph{
		Rune: 'i',
		Contours: []outline.Contour{
			{outline.LineSegment(opoint(0, 0), opoint(0, 1))},
			{outline.LineSegment(opoint(0, 2), opoint(0, 3))},
		},
		Advance: 0.3,
	}

	if _, err := s.EmitGlyph(g, 0); err != nil {
		t.Fatalf("EmitGlyph() error = %v", err)
	}

	want := []Point{
		{0, 0}, {0, 0}, {0, 1},
		{0, 2}, {0, 2}, {0, 3},
	}
	checkVertices(t, s.Vertices(), want)
}

func TestSession_DegreeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		target outline.Degree
		glyph  *outline.Glyph
	}{
		{"cubic into quadratic", outline.DegreeQuadratic, cubicGlyph('c')},
		{"quadratic into cubic", outline.DegreeCubic, quadGlyph('q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.target)
			_, err := s.EmitGlyph(tt.glyph, 0)
			if !errors.Is(err, ErrDegreeMismatch) {
				t.Errorf("EmitGlyph() error = %v, want ErrDegreeMismatch", err)
			}
		})
	}
}

func TestSession_EmitGlyph_Nil(t *testing.T) {
	s := NewSession(outline.DegreeCubic)
	if _, err := s.EmitGlyph(nil, 0); !errors.Is(err, ErrNilGlyph) {
		t.Errorf("EmitGlyph(nil) error = %v, want ErrNilGlyph", err)
	}
}

func TestSession_Transform(t *testing.T) {
	s := NewSession(outline.DegreeCubic,
		WithShift(-2),
		WithVerticalShift(-0.5),
		WithScale(0.5))

	if _, err := s.EmitGlyph(cubicGlyph('c'), 3); err != nil {
		t.Fatalf("EmitGlyph() error = %v", err)
	}

	// out = ((x + offset + shift) * scale, (y + vshift) * scale)
	want := []Point{
		{0.5, -0.25},
		{0.55, 0.25},
		{0.7, 0.25},
		{0.75, -0.25},
	}
	checkVertices(t, s.Vertices(), want)
}

func TestSession_EmitString_Empty(t *testing.T) {
	s := NewSession(outline.DegreeCubic)
	adv, err := s.EmitString(mapSource{}, "")
	if err != nil {
		t.Fatalf("EmitString(\"\") error = %v", err)
	}
	if adv != 0 {
		t.Errorf("advance = %v, want 0", adv)
	}
	if s.VertexCount() != 0 {
		t.Errorf("VertexCount() = %d, want 0", s.VertexCount())
	}
}

func TestSession_EmitString_AdvanceAccumulates(t *testing.T) {
	src := mapSource{
		'A': triangleGlyph('A'),
		'B': cubicGlyph('B'),
	}

	// "AB" must equal "A" followed by "B" at offset advance("A").
	whole := NewSession(outline.DegreeCubic)
	wholeAdv, err := whole.EmitString(src, "AB")
	if err != nil {
		t.Fatalf("EmitString(\"AB\") error = %v", err)
	}

	parts := NewSession(outline.DegreeCubic)
	advA, err := parts.EmitString(src, "A")
	if err != nil {
		t.Fatalf("EmitString(\"A\") error = %v", err)
	}
	if _, err := parts.EmitGlyph(src['B'], advA); err != nil {
		t.Fatalf("EmitGlyph('B') error = %v", err)
	}

	if wholeAdv != src['A'].Advance+src['B'].Advance {
		t.Errorf("total advance = %v, want %v", wholeAdv, src['A'].Advance+src['B'].Advance)
	}
	checkVertices(t, whole.Vertices(), parts.Vertices())
}

func TestSession_EmitString_MissingGlyphTerminal(t *testing.T) {
	src := mapSource{'A': triangleGlyph('A')}
	s := NewSession(outline.DegreeCubic)

	_, err := s.EmitString(src, "AZA")
	if !errors.Is(err, outline.ErrMissingGlyph) {
		t.Fatalf("EmitString() error = %v, want ErrMissingGlyph", err)
	}

	// Buffer holds exactly what was emitted before the failure.
	only := NewSession(outline.DegreeCubic)
	if _, err := only.EmitString(src, "A"); err != nil {
		t.Fatalf("EmitString(\"A\") error = %v", err)
	}
	checkVertices(t, s.Vertices(), only.Vertices())
}

func TestSession_TriangleGlyphCubic(t *testing.T) {
	// Two degree-1 segments into a cubic session: 2 patches of 4 points.
	s := NewSession(outline.DegreeCubic)
	adv, err := s.EmitString(mapSource{'A': triangleGlyph('A')}, "A")
	if err != nil {
		t.Fatalf("EmitString() error = %v", err)
	}
	if adv != 1.0 {
		t.Errorf("advance = %v, want 1.0", adv)
	}
	if s.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", s.VertexCount())
	}
	if s.PatchCount() != 2 {
		t.Errorf("PatchCount() = %d, want 2", s.PatchCount())
	}
}

func TestSession_PositionsAndReset(t *testing.T) {
	s := NewSession(outline.DegreeQuadratic)
	if _, err := s.EmitGlyph(quadGlyph('q'), 0); err != nil {
		t.Fatalf("EmitGlyph() error = %v", err)
	}

	pos := s.Positions()
	if len(pos) != s.VertexCount()*2 {
		t.Fatalf("len(Positions()) = %d, want %d", len(pos), s.VertexCount()*2)
	}
	if pos[2] != 0.25 || pos[3] != 1 {
		t.Errorf("Positions()[2:4] = [%v %v], want [0.25 1]", pos[2], pos[3])
	}

	s.Reset()
	if s.VertexCount() != 0 {
		t.Errorf("VertexCount() after Reset = %d, want 0", s.VertexCount())
	}
	if s.PatchCount() != 0 {
		t.Errorf("PatchCount() after Reset = %d, want 0", s.PatchCount())
	}
}

func TestSession_PatchSize(t *testing.T) {
	if got := NewSession(outline.DegreeQuadratic).PatchSize(); got != 3 {
		t.Errorf("quadratic PatchSize() = %d, want 3", got)
	}
	if got := NewSession(outline.DegreeCubic).PatchSize(); got != 4 {
		t.Errorf("cubic PatchSize() = %d, want 4", got)
	}
}

func checkVertices(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("vertex count = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !pointsEqual(got[i], want[i], epsilon) {
			t.Errorf("vertex[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSession_EmitString_NormalizedRuneCount(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	// Decomposed input: 'e' + combining acute, two runes before NFC.
	src := mapSource{'\u00e9': quadGlyph('\u00e9')}
	s := NewSession(outline.DegreeQuadratic)
	if _, err := s.EmitString(src, "e\u0301"); err != nil {
		t.Fatalf("EmitString() error = %v", err)
	}

	// One NFC rune looked up, one glyph emitted, and the log reports the
	// normalized count, not the input byte length.
	if s.PatchCount() != 1 {
		t.Errorf("PatchCount() = %d, want 1", s.PatchCount())
	}
	if !strings.Contains(buf.String(), "runes=1") {
		t.Errorf("log output %q missing runes=1", buf.String())
	}
}
