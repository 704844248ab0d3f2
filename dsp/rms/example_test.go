package rms_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-power/dsp/rms"
)

func ExampleCompute() {
	sampleRate := 1000.0
	amplitude := 170.0

	signal := make([]float64, 200)
	for i := range signal {
		t := float64(i) / sampleRate
		signal[i] = amplitude * math.Sin(2*math.Pi*60*t)
	}

	// 50 samples hold exactly three 60 Hz cycles at 1 kHz, so every window
	// measures the analytic RMS of the sine.
	values, err := rms.Compute(signal, 50)
	if err != nil {
		panic(err)
	}

	fmt.Printf("windows: %d\n", len(values))
	fmt.Printf("RMS: %.2f (analytic %.2f)\n", values[0], amplitude/math.Sqrt2)
	// Output:
	// windows: 151
	// RMS: 120.21 (analytic 120.21)
}

func ExampleTracker() {
	tracker, err := rms.NewTracker(4)
	if err != nil {
		panic(err)
	}

	for _, v := range []float64{3, 3, 3, 3} {
		tracker.Push(v)
	}

	fmt.Printf("full: %v, RMS: %.1f\n", tracker.Full(), tracker.Value())
	// Output:
	// full: true, RMS: 3.0
}
