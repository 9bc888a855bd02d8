package beztess

// Scroll speed limits. Speed is expressed in shift units per frame-tick,
// scaled down by stepFactor each Step.
const (
	// DefaultScrollSpeed is the initial scrolling speed.
	DefaultScrollSpeed = 0.05

	// MinScrollSpeed is the floor Slower never goes below.
	MinScrollSpeed = 0.01

	// scrollSpeedStep is the Faster/Slower adjustment increment.
	scrollSpeedStep = 0.01

	// stepFactor damps the per-frame shift change.
	stepFactor = 0.1
)

// ScrollState drives auto-scrolling text: a horizontal shift that
// decreases every frame and wraps back to a home position once it passes
// the reset threshold. The scroll policy lives with the caller — the
// assembly session is re-invoked each frame with the current offset and
// keeps no scrolling state of its own.
type ScrollState struct {
	// Offset is the current horizontal shift, fed to the session each frame.
	Offset float64

	// Speed is the scrolling speed.
	Speed float64

	// Reset is the threshold below which the offset wraps. It is derived
	// from the string's total advance so the text fully leaves the view
	// before wrapping.
	Reset float64

	// Home is the offset the scroll wraps back to.
	Home float64
}

// NewScrollState creates a scroll starting at start and wrapping at reset.
func NewScrollState(start, reset float64) *ScrollState {
	return &ScrollState{
		Offset: start,
		Speed:  DefaultScrollSpeed,
		Reset:  reset,
		Home:   -0.3,
	}
}

// Step advances the scroll by one frame and returns the new offset.
func (s *ScrollState) Step() float64 {
	if s.Offset > s.Reset {
		s.Offset -= stepFactor * s.Speed
	} else {
		s.Offset = s.Home
	}
	return s.Offset
}

// Faster increases the scrolling speed.
func (s *ScrollState) Faster() {
	s.Speed += scrollSpeedStep
}

// Slower decreases the scrolling speed, clamped at MinScrollSpeed.
func (s *ScrollState) Slower() {
	s.Speed -= scrollSpeedStep
	if s.Speed < MinScrollSpeed {
		s.Speed = MinScrollSpeed
	}
}
