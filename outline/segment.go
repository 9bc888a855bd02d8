package outline

// Point is a 2D control point in em-normalized design units.
type Point struct {
	X, Y float64
}

// Degree identifies the polynomial degree of a contour segment, or the
// target patch layout of an assembly session.
type Degree int

const (
	// DegreeLine is a straight line segment (2 control points).
	DegreeLine Degree = 1

	// DegreeQuadratic is a quadratic Bezier segment (3 control points).
	DegreeQuadratic Degree = 2

	// DegreeCubic is a cubic Bezier segment (4 control points).
	DegreeCubic Degree = 3
)

// ControlPoints returns the number of control points for the degree.
func (d Degree) ControlPoints() int {
	return int(d) + 1
}

// Valid reports whether the degree is one of the supported segment degrees.
func (d Degree) Valid() bool {
	return d >= DegreeLine && d <= DegreeCubic
}

// String returns a string representation of the degree.
func (d Degree) String() string {
	switch d {
	case DegreeLine:
		return "Line"
	case DegreeQuadratic:
		return "Quadratic"
	case DegreeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is one piece of a glyph contour: a line, a quadratic Bezier or
// a cubic Bezier. The first Degree+1 entries of Points are meaningful;
// the invariant that a segment carries exactly Degree+1 control points is
// what the fixed backing array plus ControlPoints encode.
type Segment struct {
	Degree Degree
	Points [4]Point
}

// LineSegment creates a degree-1 segment from p0 to p1.
func LineSegment(p0, p1 Point) Segment {
	return Segment{Degree: DegreeLine, Points: [4]Point{p0, p1}}
}

// QuadSegment creates a degree-2 segment with control point c.
func QuadSegment(p0, c, p1 Point) Segment {
	return Segment{Degree: DegreeQuadratic, Points: [4]Point{p0, c, p1}}
}

// CubicSegment creates a degree-3 segment with control points c1, c2.
func CubicSegment(p0, c1, c2, p1 Point) Segment {
	return Segment{Degree: DegreeCubic, Points: [4]Point{p0, c1, c2, p1}}
}

// ControlPoints returns the segment's control points, exactly Degree+1 of them.
func (s Segment) ControlPoints() []Point {
	return s.Points[:s.Degree+1]
}

// Start returns the segment's first control point.
func (s Segment) Start() Point {
	return s.Points[0]
}

// End returns the segment's last control point.
func (s Segment) End() Point {
	return s.Points[s.Degree]
}

// Contour is an ordered, closed sequence of segments: each segment's end
// point coincides with the next segment's start point, and the last
// segment's end coincides with the first segment's start. One contour is
// one closed loop of a glyph outline (outer boundary or inner hole).
type Contour []Segment

// Closed reports whether the contour's joints and wrap-around point match.
// Extraction always produces closed contours; this exists for validation
// of hand-built test data.
func (c Contour) Closed() bool {
	if len(c) == 0 {
		return true
	}
	for i := 1; i < len(c); i++ {
		if c[i-1].End() != c[i].Start() {
			return false
		}
	}
	return c[len(c)-1].End() == c[0].Start()
}

// Glyph is one extracted character outline: its contours plus the
// horizontal advance to the next glyph's origin, in the same em units as
// the control points.
type Glyph struct {
	// Rune is the character this glyph was extracted for.
	Rune rune

	// Contours is the ordered set of closed outline loops.
	Contours []Contour

	// Advance is the horizontal distance to the next glyph's origin.
	Advance float64
}

// IsEmpty returns true if the glyph has no contours (e.g. a space).
func (g *Glyph) IsEmpty() bool {
	return len(g.Contours) == 0
}

// SegmentCount returns the total number of segments across all contours.
func (g *Glyph) SegmentCount() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}
