package group

import "errors"

// Errors shared across the engine. Packages wrap these with context
// using fmt.Errorf("%w: ..."), so callers can test with errors.Is.
var (
	// ErrEncoding reports input that fails to decode to the expected
	// fixed-width structure (bad hex, wrong length).
	ErrEncoding = errors.New("malformed encoding")

	// ErrInvalidScalar reports a well-formed encoding that is not a
	// canonical scalar in [0, order).
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrInvalidPoint reports a well-formed encoding that does not
	// decode to a usable curve point.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrBackendUnavailable reports that a requested backend has not
	// been registered.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
