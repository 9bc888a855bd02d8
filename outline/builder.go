package outline

// contourBuilder assembles closed contours from path-style commands.
// Both extraction backends decompose their native segment streams into
// MoveTo/LineTo/QuadTo/CubicTo calls; the builder tracks the pen position
// so every Segment carries its explicit start point, and closes each
// contour with a trailing line segment when the source leaves it open.
type contourBuilder struct {
	contours []Contour
	current  Contour
	start    Point
	pen      Point
	open     bool
}

// MoveTo finishes the current contour, if any, and starts a new one at p.
func (b *contourBuilder) MoveTo(p Point) {
	b.closeCurrent()
	b.start = p
	b.pen = p
	b.open = true
}

// LineTo appends a line segment from the pen position to p.
func (b *contourBuilder) LineTo(p Point) {
	b.current = append(b.current, LineSegment(b.pen, p))
	b.pen = p
}

// QuadTo appends a quadratic segment with control point c ending at p.
func (b *contourBuilder) QuadTo(c, p Point) {
	b.current = append(b.current, QuadSegment(b.pen, c, p))
	b.pen = p
}

// CubicTo appends a cubic segment with control points c1, c2 ending at p.
func (b *contourBuilder) CubicTo(c1, c2, p Point) {
	b.current = append(b.current, CubicSegment(b.pen, c1, c2, p))
	b.pen = p
}

// closeCurrent seals the contour under construction. A contour whose pen
// did not return to its start gets an explicit closing line segment, so
// the Contour closure invariant holds for every extracted glyph.
func (b *contourBuilder) closeCurrent() {
	if !b.open {
		return
	}
	if len(b.current) > 0 {
		if b.pen != b.start {
			b.current = append(b.current, LineSegment(b.pen, b.start))
		}
		b.contours = append(b.contours, b.current)
	}
	b.current = nil
	b.open = false
}

// Contours seals any open contour and returns the finished set.
func (b *contourBuilder) Contours() []Contour {
	b.closeCurrent()
	return b.contours
}
