package sag

import "errors"

var (
	// ErrInvalidReference reports a nominal voltage or threshold ratio
	// outside its valid domain.
	ErrInvalidReference = errors.New("invalid sag/swell reference")

	// ErrMismatchedLength reports a sample sequence whose length differs
	// from the time base.
	ErrMismatchedLength = errors.New("samples and time base must have same length")
)
