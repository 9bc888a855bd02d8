package beztess

import "github.com/gogpu/beztess/outline"

// Mode selects what a demo session renders.
type Mode int

const (
	// ModeQuadraticFigure renders the built-in quadratic control polygon.
	ModeQuadraticFigure Mode = iota

	// ModeCubicFigure renders the built-in cubic control polygon.
	ModeCubicFigure

	// ModeText renders a static string from a font file.
	ModeText

	// ModeScrollingText renders a string whose horizontal shift advances
	// every frame and wraps at a configured threshold.
	ModeScrollingText
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeQuadraticFigure:
		return "QuadraticFigure"
	case ModeCubicFigure:
		return "CubicFigure"
	case ModeText:
		return "Text"
	case ModeScrollingText:
		return "ScrollingText"
	default:
		return "Unknown"
	}
}

// Config is one complete session configuration, chosen by the controller
// (keyboard handler, CLI flags) and passed into the core by value. It
// replaces the original demo's process-wide mode flags.
type Config struct {
	// Mode selects the content.
	Mode Mode

	// Degree is the target patch degree for the session (2 or 3).
	Degree outline.Degree

	// Text is the string for the text modes.
	Text string

	// FontPath locates the font file for the text modes.
	FontPath string

	// Shift is the horizontal centering shift.
	Shift float64

	// VerticalShift is the session-wide vertical shift.
	VerticalShift float64

	// Scale is the uniform scale factor.
	Scale float64

	// ScrollReset is the shift threshold below which a scrolling session
	// wraps back to its home position. Only meaningful in
	// ModeScrollingText.
	ScrollReset float64
}

// NewSession builds a Session from the config's transform parameters.
// A zero Scale means unscaled.
func (c Config) NewSession() *Session {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return NewSession(c.Degree,
		WithShift(c.Shift),
		WithVerticalShift(c.VerticalShift),
		WithScale(scale))
}
