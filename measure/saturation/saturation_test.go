package saturation

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-power/internal/testutil"
)

// 50 Hz current sampled at 5 kHz: 100 samples per cycle. Hard-clipping the
// 1000-unit waveform at 300 yields ~40-sample plateaus, well above the
// 16-sample analysis window, while the undistorted waveform never drops
// below twice the flatness threshold in any elevated window.
const (
	sampleRate = 5000.0
	lineFreq   = 50.0
	amplitude  = 1000.0
	clipLevel  = 300.0
)

func config() Config {
	return Config{
		WindowSize:           16,
		FlatnessThreshold:    0.002,
		HighCurrentThreshold: 200,
	}
}

func TestDetect_CleanSineIsNotFlagged(t *testing.T) {
	samples := testutil.Sine(lineFreq, sampleRate, amplitude, 2000)
	timeBase := testutil.TimeBase(sampleRate, 2000)

	events, err := Detect(samples, timeBase, config())
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDetect_ClippedSineIsFlagged(t *testing.T) {
	samples := testutil.Clip(testutil.Sine(lineFreq, sampleRate, amplitude, 2000), clipLevel)
	timeBase := testutil.TimeBase(sampleRate, 2000)

	events, err := Detect(samples, timeBase, config())
	if err != nil {
		t.Fatal(err)
	}

	// 20 cycles, one plateau per half-cycle.
	if len(events) != 40 {
		t.Fatalf("got %d events, want 40", len(events))
	}

	for i, e := range events {
		// Dead-flat plateaus score zero variability.
		testutil.RequireNear(t, e.Severity, 0, 1e-12)

		if e.StartTime > e.EndTime {
			t.Errorf("event %d: interval [%v, %v] not ordered", i, e.StartTime, e.EndTime)
		}

		if e.StartTime < timeBase[0] || e.EndTime > timeBase[len(timeBase)-1] {
			t.Errorf("event %d: interval [%v, %v] outside recording", i, e.StartTime, e.EndTime)
		}
	}
}

func TestDetect_QuiescentFlatSignalIsNotFlagged(t *testing.T) {
	// Perfectly flat but far below the high-current gate: not saturation,
	// just a quiet channel.
	samples := testutil.Steps(testutil.Level{Value: 10, Count: 500})
	timeBase := testutil.TimeBase(sampleRate, 500)

	events, err := Detect(samples, timeBase, config())
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDetect_AllZeroSignalIsNotFlagged(t *testing.T) {
	samples := make([]float64, 500)
	timeBase := testutil.TimeBase(sampleRate, 500)

	events, err := Detect(samples, timeBase, config())
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDetect_HighFlatLevelIsFlagged(t *testing.T) {
	// Elevated and dead flat for the middle segment.
	samples := testutil.Steps(
		testutil.Level{Value: 100, Count: 100},
		testutil.Level{Value: 900, Count: 100},
		testutil.Level{Value: 100, Count: 100},
	)
	timeBase := testutil.TimeBase(sampleRate, 300)

	events, err := Detect(samples, timeBase, config())
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	testutil.RequireNear(t, events[0].Severity, 0, 1e-12)
}

func TestDetect_EmptyInput(t *testing.T) {
	events, err := Detect(nil, nil, config())
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}

	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDetect_InvalidWindow(t *testing.T) {
	timeBase := testutil.TimeBase(sampleRate, 10)
	samples := testutil.Steps(testutil.Level{Value: 1, Count: 10})

	cfg := config()
	cfg.WindowSize = 1

	if _, err := Detect(samples, timeBase, cfg); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("window 1: got %v, want ErrInvalidWindow", err)
	}

	cfg = config()
	cfg.WindowSize = 11

	if _, err := Detect(samples, timeBase, cfg); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("window larger than input: got %v, want ErrInvalidWindow", err)
	}
}

func TestDetect_InvalidThreshold(t *testing.T) {
	timeBase := testutil.TimeBase(sampleRate, 10)
	samples := testutil.Steps(testutil.Level{Value: 1, Count: 10})

	cfg := config()
	cfg.HighCurrentThreshold = 0

	if _, err := Detect(samples, timeBase, cfg); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("got %v, want ErrInvalidReference", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := normalizeConfig(Config{HighCurrentThreshold: 200})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.WindowSize != defaultWindowSize {
		t.Errorf("WindowSize: got %v, want %v", cfg.WindowSize, defaultWindowSize)
	}

	if cfg.FlatnessThreshold != defaultFlatnessThreshold {
		t.Errorf("FlatnessThreshold: got %v, want %v", cfg.FlatnessThreshold, defaultFlatnessThreshold)
	}
}
