package record

import "errors"

var (
	// ErrChannelNotFound reports a channel ID absent from the recording.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrMalformedRecording reports structural problems detected at
	// construction, such as mismatched channel lengths or a non-increasing
	// time base.
	ErrMalformedRecording = errors.New("malformed recording")
)
