package rms

import "errors"

// ErrInvalidWindow reports a window size that is non-positive or larger than
// the available sample count.
var ErrInvalidWindow = errors.New("invalid RMS window")
