// Package rms computes sliding-window root-mean-square estimates of sampled
// waveforms. The windowed RMS is the foundational primitive for sag, swell,
// and saturation detection: it tracks the short-term energy level of an AC
// signal instead of its instantaneous value, which oscillates through zero.
package rms

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Compute returns the sliding-window RMS of samples using valid-window
// semantics: output value i covers samples[i : i+windowSize], so the output
// has length len(samples) - windowSize + 1. No value is produced for windows
// that would extend past either end of the input.
//
// Output value i corresponds to time-base index i + windowSize - 1 (the
// window's right edge); see [AlignTime].
func Compute(samples []float64, windowSize int) ([]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidWindow, windowSize)
	}

	if windowSize > len(samples) {
		return nil, fmt.Errorf("%w: window size %d exceeds sample count %d",
			ErrInvalidWindow, windowSize, len(samples))
	}

	sq := make([]float64, len(samples))
	vecmath.MulBlock(sq, samples, samples)

	out := make([]float64, len(samples)-windowSize+1)
	norm := 1.0 / float64(windowSize)

	var sum float64
	for i := 0; i < windowSize; i++ {
		sum += sq[i]
	}

	out[0] = math.Sqrt(sum * norm)

	for i := 1; i < len(out); i++ {
		sum += sq[i+windowSize-1] - sq[i-1]
		if sum < 0 {
			// Guard against cancellation drift in the running sum.
			sum = 0
		}

		out[i] = math.Sqrt(sum * norm)
	}

	return out, nil
}

// AlignTime returns the portion of the time base corresponding to a
// valid-window RMS series of the given window size: entry i is the time of
// the window's right edge, timeBase[i+windowSize-1]. The result aliases the
// input slice.
func AlignTime(timeBase []float64, windowSize int) ([]float64, error) {
	if windowSize <= 0 || windowSize > len(timeBase) {
		return nil, fmt.Errorf("%w: window size %d for time base of length %d",
			ErrInvalidWindow, windowSize, len(timeBase))
	}

	return timeBase[windowSize-1:], nil
}

// Tracker maintains a sliding-window RMS estimate incrementally, one sample
// at a time. It produces the same values as [Compute] once the window has
// filled.
type Tracker struct {
	window     []float64 // squared samples, ring buffer
	writeIdx   int
	runningSum float64
	count      int
}

// NewTracker creates a Tracker with the given window size. A non-positive
// size is rejected.
func NewTracker(windowSize int) (*Tracker, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidWindow, windowSize)
	}

	return &Tracker{window: make([]float64, windowSize)}, nil
}

// Push adds one sample to the window.
func (t *Tracker) Push(sample float64) {
	sq := sample * sample

	old := t.window[t.writeIdx]
	t.window[t.writeIdx] = sq
	t.writeIdx = (t.writeIdx + 1) % len(t.window)

	t.runningSum += sq - old
	if t.runningSum < 0 {
		t.runningSum = 0
	}

	if t.count < len(t.window) {
		t.count++
	}
}

// Full reports whether a complete window has been accumulated.
func (t *Tracker) Full() bool {
	return t.count == len(t.window)
}

// Value returns the RMS over the samples currently in the window. Before the
// window has filled it averages over the samples seen so far; with no samples
// it returns 0.
func (t *Tracker) Value() float64 {
	if t.count == 0 {
		return 0
	}

	return math.Sqrt(t.runningSum / float64(t.count))
}

// Reset clears all accumulated state, allowing the Tracker to be reused.
func (t *Tracker) Reset() {
	for i := range t.window {
		t.window[i] = 0
	}

	t.writeIdx = 0
	t.runningSum = 0
	t.count = 0
}
