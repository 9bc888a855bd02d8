package beztess

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/beztess/outline"
)

// GlyphSource provides extracted glyph outlines per rune.
// *outline.FontSource implements GlyphSource.
type GlyphSource interface {
	Glyph(r rune) (*outline.Glyph, error)
}

// Session assembles glyph outlines into a flat, patch-aligned vertex
// buffer ready for GPU curve evaluation. It owns the output buffer and
// the per-string transform parameters: a target patch degree fixed for
// the session, a horizontal centering shift, a vertical shift and a
// uniform scale.
//
// A Session replaces process-wide assembly state: the caller owns it,
// passes it by reference, and nothing leaks between calls beyond the
// vertex buffer the caller controls through Reset. The buffer is
// append-only during assembly and must be fully rebuilt (Reset then
// re-emitted) before each consumption by the renderer; the Session does
// not guard against reuse without clearing.
//
// Session is not safe for concurrent use: assembly has exactly one
// producer, and the renderer consumes the finished buffer afterwards.
type Session struct {
	degree outline.Degree
	shift  float64
	vshift float64
	scale  float64
	verts  []Point
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithShift sets the horizontal centering shift applied to every glyph.
func WithShift(x float64) SessionOption {
	return func(s *Session) { s.shift = x }
}

// WithVerticalShift sets the session-wide vertical shift.
func WithVerticalShift(y float64) SessionOption {
	return func(s *Session) { s.vshift = y }
}

// WithScale sets the uniform scale factor. Default is 1.
func WithScale(k float64) SessionOption {
	return func(s *Session) { s.scale = k }
}

// NewSession creates a Session targeting the given patch degree.
// The target must be DegreeQuadratic or DegreeCubic — it matches the
// patch layout of the tessellation pipeline in use and holds for every
// glyph the session emits. Any other degree is a programming error and
// panics.
func NewSession(target outline.Degree, opts ...SessionOption) *Session {
	if target != outline.DegreeQuadratic && target != outline.DegreeCubic {
		panic("beztess: session target degree must be DegreeQuadratic or DegreeCubic")
	}
	s := &Session{degree: target, scale: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Degree returns the session's target patch degree.
func (s *Session) Degree() outline.Degree {
	return s.degree
}

// PatchSize returns the number of control points per emitted patch.
func (s *Session) PatchSize() int {
	return s.degree.ControlPoints()
}

// EmitGlyph appends one patch per outline segment of g to the vertex
// buffer, re-expressed at the session's target degree, in contour-then-
// segment order. Each control point is transformed as
//
//	out = ((p.x + advanceOffset + shift), (p.y + verticalShift)) * scale
//
// before being appended. advanceOffset is the running horizontal offset
// of this glyph within its string; it may be negative.
//
// Degree reconciliation: segments already at the target degree pass
// through unchanged. A line degenerates into a cubic as [p0,p0,p1,p1],
// and into a quadratic as [p0,p0,p1] for a contour's first segment or
// [p0,p1] thereafter — the trailing pair rides on the joint point the
// previous segment already emitted, and re-duplicating it would visibly
// break the contour at the joint.
//
// Returns the glyph's own advance, unmodified; accumulating it across a
// string is the caller's responsibility.
func (s *Session) EmitGlyph(g *outline.Glyph, advanceOffset float64) (float64, error) {
	if g == nil {
		return 0, ErrNilGlyph
	}

	for _, contour := range g.Contours {
		for i, seg := range contour {
			if err := s.emitSegment(seg, i == 0, advanceOffset); err != nil {
				return 0, fmt.Errorf("glyph %q: %w", g.Rune, err)
			}
		}
	}
	return g.Advance, nil
}

// emitSegment re-expresses one segment at the session's target degree and
// appends its control points. first reports whether the segment opens its
// contour's point stream.
func (s *Session) emitSegment(seg outline.Segment, first bool, advanceOffset float64) error {
	switch {
	case seg.Degree == s.degree:
		for _, p := range seg.ControlPoints() {
			s.push(p, advanceOffset)
		}

	case seg.Degree == outline.DegreeLine && s.degree == outline.DegreeCubic:
		// Degenerate cubic: control points coincide with the endpoints in
		// pairs, giving a straight line with zero curvature at both ends.
		p0, p1 := seg.Points[0], seg.Points[1]
		s.push(p0, advanceOffset)
		s.push(p0, advanceOffset)
		s.push(p1, advanceOffset)
		s.push(p1, advanceOffset)

	case seg.Degree == outline.DegreeLine && s.degree == outline.DegreeQuadratic:
		// Degenerate quadratic: the middle control collapses onto p0.
		p0, p1 := seg.Points[0], seg.Points[1]
		if first {
			s.push(p0, advanceOffset)
		}
		s.push(p0, advanceOffset)
		s.push(p1, advanceOffset)

	default:
		return fmt.Errorf("%s segment into %s session: %w", seg.Degree, s.degree, ErrDegreeMismatch)
	}
	return nil
}

// push transforms a control point into session space and appends it.
func (s *Session) push(p outline.Point, advanceOffset float64) {
	s.verts = append(s.verts, Point{
		X: (p.X + advanceOffset + s.shift) * s.scale,
		Y: (p.Y + s.vshift) * s.scale,
	})
}

// EmitString assembles every character of text in order, accumulating
// horizontal advance so successive glyphs are positioned left to right.
// The first glyph is emitted at advance offset 0; each glyph's returned
// advance is added to the running offset for the next. The session shift
// is a per-string centering constant applied uniformly to every glyph.
//
// The text is NFC-normalized before rune-wise glyph lookup. An empty
// string is a no-op returning 0. A rune the source cannot supply is
// terminal: EmitString returns the error with the buffer holding what
// was emitted before the failure.
//
// Returns the total accumulated advance, useful for scroll-reset logic
// in the caller.
func (s *Session) EmitString(src GlyphSource, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}

	var advance float64
	runes := 0
	for _, r := range norm.NFC.String(text) {
		runes++
		g, err := src.Glyph(r)
		if err != nil {
			return advance, fmt.Errorf("beztess: %w", err)
		}
		a, err := s.EmitGlyph(g, advance)
		if err != nil {
			return advance, err
		}
		advance += a
	}

	Logger().Debug("string assembled",
		"runes", runes,
		"patches", s.PatchCount(),
		"advance", advance)
	return advance, nil
}

// Vertices returns the assembled vertex buffer. The slice is owned by
// the session; callers must treat it as read-only.
func (s *Session) Vertices() []Point {
	return s.verts
}

// VertexCount returns the number of assembled vertices.
func (s *Session) VertexCount() int {
	return len(s.verts)
}

// PatchCount returns the number of complete patches in the buffer.
func (s *Session) PatchCount() int {
	return len(s.verts) / s.PatchSize()
}

// Positions returns the buffer as flat x,y float32 pairs for GPU upload.
func (s *Session) Positions() []float32 {
	out := make([]float32, 0, len(s.verts)*2)
	for _, p := range s.verts {
		out = append(out, float32(p.X), float32(p.Y))
	}
	return out
}

// Reset clears the vertex buffer, retaining its capacity. Call it before
// re-emitting a frame; consuming a buffer that mixes frames is a caller
// error the session does not detect.
func (s *Session) Reset() {
	s.verts = s.verts[:0]
}
