// Package freq checks a recording's line frequency: a pure metadata
// comparison against the expected nominal value, a zero-crossing scan that
// flags intervals where the waveform-derived frequency deviates from
// nominal, and an FFT-based estimate of the dominant frequency.
package freq

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultToleranceHz = 1.0

// Deviation describes a declared frequency outside the expected tolerance.
type Deviation struct {
	DeclaredHz float64
	ExpectedHz float64
	DeltaHz    float64
}

// CheckDeclared compares a declared nominal frequency against the expected
// value. It reports a Deviation when the declared value is zero or differs
// from the expected value by more than toleranceHz (default 1 Hz when <= 0).
// The second return value is false when the declared frequency is within
// tolerance.
func CheckDeclared(declaredHz, expectedHz, toleranceHz float64) (Deviation, bool) {
	if toleranceHz <= 0 {
		toleranceHz = defaultToleranceHz
	}

	delta := declaredHz - expectedHz
	if declaredHz == 0 || math.Abs(delta) > toleranceHz {
		return Deviation{
			DeclaredHz: declaredHz,
			ExpectedHz: expectedHz,
			DeltaHz:    delta,
		}, true
	}

	return Deviation{}, false
}

// DeviationEvent is one interval where the waveform-derived frequency
// deviates from nominal beyond the threshold.
type DeviationEvent struct {
	Time        float64
	FrequencyHz float64
}

// DetectDeviations estimates the instantaneous frequency from pairs of
// zero crossings one full cycle apart (two sign changes) and reports every
// estimate further than thresholdHz from nominalHz. A threshold <= 0
// defaults to 1 Hz.
func DetectDeviations(samples, timeBase []float64, nominalHz, thresholdHz float64) ([]DeviationEvent, error) {
	if nominalHz <= 0 {
		return nil, fmt.Errorf("%w: nominal frequency must be > 0: %g", ErrInvalidReference, nominalHz)
	}

	if len(samples) != len(timeBase) {
		return nil, fmt.Errorf("%w: %d samples, %d time-base entries",
			ErrInsufficientData, len(samples), len(timeBase))
	}

	if thresholdHz <= 0 {
		thresholdHz = defaultToleranceHz
	}

	crossings := zeroCrossings(samples)

	var events []DeviationEvent

	for i := 0; i+2 < len(crossings); i++ {
		dt := timeBase[crossings[i+2]] - timeBase[crossings[i]]
		if dt <= 0 {
			continue
		}

		f := 1.0 / dt
		if math.Abs(f-nominalHz) > thresholdHz {
			events = append(events, DeviationEvent{
				Time:        timeBase[crossings[i]],
				FrequencyHz: f,
			})
		}
	}

	return events, nil
}

// zeroCrossings returns the indices preceding each sign change.
func zeroCrossings(samples []float64) []int {
	var out []int

	for i := 1; i < len(samples); i++ {
		if samples[i-1]*samples[i] < 0 {
			out = append(out, i-1)
		}
	}

	return out
}

// EstimateSpectral returns the dominant frequency of the signal in Hz,
// computed from the peak magnitude bin of an FFT with parabolic
// interpolation between neighboring bins.
func EstimateSpectral(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidReference, sampleRate)
	}

	if len(samples) < 4 {
		return 0, fmt.Errorf("%w: need at least 4 samples, got %d", ErrInsufficientData, len(samples))
	}

	fftSize := nextPowerOf2(len(samples))

	in := make([]complex128, fftSize)
	for i, x := range samples {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("fft forward: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	// Skip the DC bin when locating the peak.
	peakBin := 1
	for i := 2; i < binCount; i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	if mag[peakBin] == 0 {
		return 0, fmt.Errorf("%w: silent signal", ErrInsufficientData)
	}

	binHz := sampleRate / float64(fftSize)

	return (float64(peakBin) + peakOffset(mag, peakBin)) * binHz, nil
}

// peakOffset refines the peak bin position by fitting a parabola through the
// peak and its neighbors, returning a fractional offset in [-0.5, 0.5].
func peakOffset(mag []float64, bin int) float64 {
	if bin <= 0 || bin >= len(mag)-1 {
		return 0
	}

	a, b, c := mag[bin-1], mag[bin], mag[bin+1]

	denom := a - 2*b + c
	if denom == 0 {
		return 0
	}

	offset := 0.5 * (a - c) / denom
	if offset < -0.5 {
		offset = -0.5
	} else if offset > 0.5 {
		offset = 0.5
	}

	return offset
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
