package beztess

import "errors"

// Sentinel errors for the root package.
var (
	// ErrDegreeMismatch is returned when a segment's degree cannot be
	// reconciled with the session's target degree. Extraction only
	// produces degrees 1-3 and sessions target 2 or 3, so hitting this
	// signals an internal consistency error, not a user-facing condition.
	ErrDegreeMismatch = errors.New("beztess: segment degree does not match session target")

	// ErrNilGlyph is returned when EmitGlyph is handed a nil glyph.
	ErrNilGlyph = errors.New("beztess: nil glyph")
)
