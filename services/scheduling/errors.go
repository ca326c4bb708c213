package scheduling

import "errors"

var (
	// ErrUpstream indicates the scheduling provider returned a non-success
	// status or the call timed out.
	ErrUpstream = errors.New("scheduling provider unavailable")

	// ErrInvalidTimeFormat indicates a user-supplied date or time string did
	// not parse.
	ErrInvalidTimeFormat = errors.New("invalid date/time format")
)
