package saturation

import "errors"

var (
	// ErrInvalidWindow reports a window size outside its valid domain or a
	// sample sequence inconsistent with the time base.
	ErrInvalidWindow = errors.New("invalid saturation window")

	// ErrInvalidReference reports a threshold outside its valid domain.
	ErrInvalidReference = errors.New("invalid saturation threshold")
)
