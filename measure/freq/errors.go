package freq

import "errors"

var (
	// ErrInvalidReference reports a nominal frequency or sample rate outside
	// its valid domain.
	ErrInvalidReference = errors.New("invalid frequency reference")

	// ErrInsufficientData reports a signal too short or too quiet to
	// estimate a frequency from.
	ErrInsufficientData = errors.New("insufficient frequency data")
)
