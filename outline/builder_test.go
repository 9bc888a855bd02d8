package outline

import "testing"

func TestContourBuilder_ClosesOpenContour(t *testing.T) {
	var b contourBuilder
	b.MoveTo(Point{0, 0})
	b.LineTo(Point{1, 0})
	b.LineTo(Point{1, 1})

	contours := b.Contours()
	if len(contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(contours))
	}

	c := contours[0]
	if len(c) != 3 {
		t.Fatalf("segments = %d, want 3 (closing line appended)", len(c))
	}
	last := c[len(c)-1]
	if last.Degree != DegreeLine {
		t.Errorf("closing segment degree = %s, want Line", last.Degree)
	}
	if last.Start() != (Point{1, 1}) || last.End() != (Point{0, 0}) {
		t.Errorf("closing segment = %v -> %v, want (1,1) -> (0,0)", last.Start(), last.End())
	}
	if !c.Closed() {
		t.Error("built contour should satisfy the closure invariant")
	}
}

func TestContourBuilder_NoZeroLengthClose(t *testing.T) {
	var b contourBuilder
	b.MoveTo(Point{0, 0})
	b.LineTo(Point{1, 0})
	b.LineTo(Point{0, 0}) // pen already back at start

	contours := b.Contours()
	if len(contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(contours))
	}
	if got := len(contours[0]); got != 2 {
		t.Errorf("segments = %d, want 2 (no synthetic close)", got)
	}
}

func TestContourBuilder_MoveToStartsNewContour(t *testing.T) {
	var b contourBuilder
	b.MoveTo(Point{0, 0})
	b.QuadTo(Point{0.5, 1}, Point{1, 0})
	b.MoveTo(Point{2, 0})
	b.CubicTo(Point{2, 1}, Point{3, 1}, Point{3, 0})

	contours := b.Contours()
	if len(contours) != 2 {
		t.Fatalf("contours = %d, want 2", len(contours))
	}
	if contours[0][0].Degree != DegreeQuadratic {
		t.Errorf("first contour segment degree = %s, want Quadratic", contours[0][0].Degree)
	}
	if contours[1][0].Degree != DegreeCubic {
		t.Errorf("second contour segment degree = %s, want Cubic", contours[1][0].Degree)
	}
	// Both open contours get their closing line.
	for i, c := range contours {
		if !c.Closed() {
			t.Errorf("contour %d not closed", i)
		}
	}
}

func TestContourBuilder_EmptyMoveToDropped(t *testing.T) {
	var b contourBuilder
	b.MoveTo(Point{0, 0})
	b.MoveTo(Point{1, 1}) // first contour had no segments
	b.LineTo(Point{2, 2})

	contours := b.Contours()
	if len(contours) != 1 {
		t.Fatalf("contours = %d, want 1 (segmentless contour dropped)", len(contours))
	}
}
