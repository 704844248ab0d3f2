// Package testutil provides deterministic waveform builders and tolerance
// helpers for detector tests.
package testutil

import "math"

// TimeBase returns n uniformly spaced timestamps starting at 0 with the
// given sample rate.
func TimeBase(sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}

	return out
}

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// NominalSine generates a sine whose windowed RMS over whole cycles equals
// rmsLevel (amplitude = rmsLevel * sqrt(2)).
func NominalSine(freqHz, sampleRate, rmsLevel float64, length int) []float64 {
	return Sine(freqHz, sampleRate, rmsLevel*math.Sqrt2, length)
}

// Level is one constant-magnitude segment of a stepped signal.
type Level struct {
	Value float64
	Count int
}

// Steps concatenates constant segments, e.g. a 120-unit level dropping to 80
// and recovering. Constant-magnitude signals give exact windowed RMS values,
// which keeps event-boundary expectations precise.
func Steps(levels ...Level) []float64 {
	n := 0
	for _, l := range levels {
		n += l.Count
	}

	out := make([]float64, 0, n)
	for _, l := range levels {
		for i := 0; i < l.Count; i++ {
			out = append(out, l.Value)
		}
	}

	return out
}

// TripChannel returns a digital status channel of length n that is 0 before
// index onFrom and 1 from it onward. A negative onFrom yields all zeros.
func TripChannel(n, onFrom int) []int {
	out := make([]int, n)
	if onFrom < 0 {
		return out
	}

	for i := onFrom; i < n; i++ {
		out[i] = 1
	}

	return out
}

// Clip returns a copy of samples with every value limited to [-limit, limit],
// mimicking the flattened waveform of a saturated current transformer.
func Clip(samples []float64, limit float64) []float64 {
	out := make([]float64, len(samples))

	for i, x := range samples {
		switch {
		case x > limit:
			out[i] = limit
		case x < -limit:
			out[i] = -limit
		default:
			out[i] = x
		}
	}

	return out
}
