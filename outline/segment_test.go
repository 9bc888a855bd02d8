package outline

import "testing"

func TestDegree_ControlPoints(t *testing.T) {
	tests := []struct {
		degree Degree
		want   int
	}{
		{DegreeLine, 2},
		{DegreeQuadratic, 3},
		{DegreeCubic, 4},
	}
	for _, tt := range tests {
		if got := tt.degree.ControlPoints(); got != tt.want {
			t.Errorf("%s.ControlPoints() = %d, want %d", tt.degree, got, tt.want)
		}
	}
}

func TestDegree_Valid(t *testing.T) {
	for _, d := range []Degree{DegreeLine, DegreeQuadratic, DegreeCubic} {
		if !d.Valid() {
			t.Errorf("%s.Valid() = false", d)
		}
	}
	for _, d := range []Degree{0, 4, -1} {
		if d.Valid() {
			t.Errorf("Degree(%d).Valid() = true", d)
		}
	}
}

func TestSegment_ControlPoints(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want []Point
	}{
		{
			name: "line",
			seg:  LineSegment(Point{0, 0}, Point{1, 1}),
			want: []Point{{0, 0}, {1, 1}},
		},
		{
			name: "quadratic",
			seg:  QuadSegment(Point{0, 0}, Point{1, 2}, Point{2, 0}),
			want: []Point{{0, 0}, {1, 2}, {2, 0}},
		},
		{
			name: "cubic",
			seg:  CubicSegment(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0}),
			want: []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := tt.seg.ControlPoints()
			if len(pts) != tt.seg.Degree.ControlPoints() {
				t.Fatalf("len(ControlPoints()) = %d, want %d", len(pts), tt.seg.Degree.ControlPoints())
			}
			for i := range pts {
				if pts[i] != tt.want[i] {
					t.Errorf("ControlPoints()[%d] = %v, want %v", i, pts[i], tt.want[i])
				}
			}
			if tt.seg.Start() != tt.want[0] {
				t.Errorf("Start() = %v, want %v", tt.seg.Start(), tt.want[0])
			}
			if tt.seg.End() != tt.want[len(tt.want)-1] {
				t.Errorf("End() = %v, want %v", tt.seg.End(), tt.want[len(tt.want)-1])
			}
		})
	}
}

func TestContour_Closed(t *testing.T) {
	closed := Contour{
		LineSegment(Point{0, 0}, Point{1, 0}),
		LineSegment(Point{1, 0}, Point{0, 1}),
		LineSegment(Point{0, 1}, Point{0, 0}),
	}
	if !closed.Closed() {
		t.Error("triangle contour should be closed")
	}

	open := Contour{
		LineSegment(Point{0, 0}, Point{1, 0}),
	}
	if open.Closed() {
		t.Error("single open segment should not be closed")
	}
}

func TestGlyph_Counts(t *testing.T) {
	g := &Glyph{
		Rune: 'x',
		Contours: []Contour{
			{LineSegment(Point{0, 0}, Point{1, 1}), LineSegment(Point{1, 1}, Point{0, 0})},
			{QuadSegment(Point{0, 0}, Point{1, 1}, Point{2, 0})},
		},
		Advance: 0.6,
	}
	if g.IsEmpty() {
		t.Error("IsEmpty() = true for glyph with contours")
	}
	if got := g.SegmentCount(); got != 3 {
		t.Errorf("SegmentCount() = %d, want 3", got)
	}

	space := &Glyph{Rune: ' ', Advance: 0.25}
	if !space.IsEmpty() {
		t.Error("IsEmpty() = false for contourless glyph")
	}
}
