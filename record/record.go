// Package record provides the in-memory view of a power-system disturbance
// recording: a shared time base, analog waveform channels, and digital status
// channels, all validated once at construction so downstream analysis can
// assume structural consistency.
package record

import (
	"fmt"
	"sort"
	"strings"
)

// Recording is an immutable view of a disturbance recording. All channels
// share one time base; every sample sequence has the same length as the time
// base. Channel IDs are matched case-insensitively with surrounding
// whitespace ignored.
type Recording struct {
	time    []float64
	analog  map[string][]float64
	digital map[string][]int

	// Display names in insertion-independent (sorted) order, keyed by the
	// normalized ID.
	analogNames  map[string]string
	digitalNames map[string]string
}

// New builds a Recording from a time base and channel maps. It validates that
// the time base is non-empty and strictly increasing and that every channel
// has exactly one sample per time-base entry. Duplicate IDs (after
// normalization) are rejected.
func New(timeBase []float64, analog map[string][]float64, digital map[string][]int) (*Recording, error) {
	if len(timeBase) == 0 {
		return nil, fmt.Errorf("%w: empty time base", ErrMalformedRecording)
	}

	for i := 1; i < len(timeBase); i++ {
		if timeBase[i] <= timeBase[i-1] {
			return nil, fmt.Errorf("%w: time base not increasing at index %d", ErrMalformedRecording, i)
		}
	}

	rec := &Recording{
		time:         timeBase,
		analog:       make(map[string][]float64, len(analog)),
		digital:      make(map[string][]int, len(digital)),
		analogNames:  make(map[string]string, len(analog)),
		digitalNames: make(map[string]string, len(digital)),
	}

	for id, samples := range analog {
		key := normalizeID(id)
		if _, exists := rec.analog[key]; exists {
			return nil, fmt.Errorf("%w: duplicate analog channel %q", ErrMalformedRecording, id)
		}

		if len(samples) != len(timeBase) {
			return nil, fmt.Errorf("%w: analog channel %q has %d samples, time base has %d",
				ErrMalformedRecording, id, len(samples), len(timeBase))
		}

		rec.analog[key] = samples
		rec.analogNames[key] = strings.TrimSpace(id)
	}

	for id, samples := range digital {
		key := normalizeID(id)
		if _, exists := rec.digital[key]; exists {
			return nil, fmt.Errorf("%w: duplicate digital channel %q", ErrMalformedRecording, id)
		}

		if len(samples) != len(timeBase) {
			return nil, fmt.Errorf("%w: digital channel %q has %d samples, time base has %d",
				ErrMalformedRecording, id, len(samples), len(timeBase))
		}

		rec.digital[key] = samples
		rec.digitalNames[key] = strings.TrimSpace(id)
	}

	return rec, nil
}

// Time returns the shared time base in seconds. The returned slice must not
// be modified.
func (r *Recording) Time() []float64 {
	return r.time
}

// Len returns the number of samples in the time base.
func (r *Recording) Len() int {
	return len(r.time)
}

// Analog returns the sample sequence of the analog channel with the given ID.
func (r *Recording) Analog(id string) ([]float64, error) {
	samples, ok := r.analog[normalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: analog channel %q", ErrChannelNotFound, id)
	}

	return samples, nil
}

// Digital returns the sample sequence of the digital channel with the given
// ID. Samples are 0/1 status values.
func (r *Recording) Digital(id string) ([]int, error) {
	samples, ok := r.digital[normalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: digital channel %q", ErrChannelNotFound, id)
	}

	return samples, nil
}

// AnalogIDs returns the analog channel display names in sorted order.
func (r *Recording) AnalogIDs() []string {
	return sortedNames(r.analogNames)
}

// DigitalIDs returns the digital channel display names in sorted order.
func (r *Recording) DigitalIDs() []string {
	return sortedNames(r.digitalNames)
}

func sortedNames(names map[string]string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
