package relay

import "errors"

var (
	// ErrInvalidReference reports a reference time outside the recording
	// span or inconsistent delay bounds.
	ErrInvalidReference = errors.New("invalid relay reference")

	// ErrInsufficientData reports an empty trip channel or a channel whose
	// length differs from the time base.
	ErrInsufficientData = errors.New("insufficient relay data")
)
