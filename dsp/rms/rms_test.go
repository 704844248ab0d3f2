package rms

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-power/internal/testutil"
)

func TestCompute_OutputLength(t *testing.T) {
	for _, tc := range []struct {
		n, window int
	}{
		{1, 1},
		{10, 1},
		{10, 10},
		{1000, 50},
		{1000, 999},
	} {
		samples := testutil.Sine(60, 1000, 1, tc.n)

		out, err := Compute(samples, tc.window)
		if err != nil {
			t.Fatalf("Compute(%d samples, window %d): %v", tc.n, tc.window, err)
		}

		if want := tc.n - tc.window + 1; len(out) != want {
			t.Errorf("Compute(%d samples, window %d): got %d values, want %d",
				tc.n, tc.window, len(out), want)
		}
	}
}

func TestCompute_ConstantSignal(t *testing.T) {
	samples := testutil.Steps(testutil.Level{Value: 3.0, Count: 100})

	out, err := Compute(samples, 10)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(out))
	for i := range want {
		want[i] = 3.0
	}

	testutil.RequireSliceNear(t, out, want, 1e-12)
}

func TestCompute_SineConvergesToAnalyticRMS(t *testing.T) {
	const (
		freq       = 60.0
		sampleRate = 1200.0 // 20 samples per cycle
		amplitude  = 10.0
	)

	samples := testutil.Sine(freq, sampleRate, amplitude, 200)

	// One full cycle per window: the RMS equals amplitude/sqrt(2).
	out, err := Compute(samples, 20)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, out)

	want := amplitude / math.Sqrt2
	for i, v := range out {
		if math.Abs(v-want) > 1e-6 {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

func TestCompute_InvalidWindow(t *testing.T) {
	for _, tc := range []struct {
		name    string
		samples []float64
		window  int
	}{
		{"empty input", nil, 5},
		{"zero window", testutil.Sine(60, 1000, 1, 10), 0},
		{"negative window", testutil.Sine(60, 1000, 1, 10), -1},
		{"window exceeds input", testutil.Sine(60, 1000, 1, 10), 11},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compute(tc.samples, tc.window); !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("got %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestAlignTime(t *testing.T) {
	timeBase := testutil.TimeBase(1000, 100)

	times, err := AlignTime(timeBase, 50)
	if err != nil {
		t.Fatal(err)
	}

	if len(times) != 51 {
		t.Fatalf("got %d entries, want 51", len(times))
	}

	// Entry 0 is the right edge of the first window.
	testutil.RequireNear(t, times[0], timeBase[49], 0)
	testutil.RequireNear(t, times[50], timeBase[99], 0)
}

func TestAlignTime_InvalidWindow(t *testing.T) {
	timeBase := testutil.TimeBase(1000, 10)

	if _, err := AlignTime(timeBase, 11); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("got %v, want ErrInvalidWindow", err)
	}

	if _, err := AlignTime(timeBase, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("got %v, want ErrInvalidWindow", err)
	}
}

func TestTracker_MatchesCompute(t *testing.T) {
	const window = 33

	samples := testutil.Sine(50, 1000, 5, 500)

	want, err := Compute(samples, window)
	if err != nil {
		t.Fatal(err)
	}

	tracker, err := NewTracker(window)
	if err != nil {
		t.Fatal(err)
	}

	var got []float64

	for _, x := range samples {
		tracker.Push(x)
		if tracker.Full() {
			got = append(got, tracker.Value())
		}
	}

	testutil.RequireSliceNear(t, got, want, 1e-9)
}

func TestTracker_PartialWindow(t *testing.T) {
	tracker, err := NewTracker(4)
	if err != nil {
		t.Fatal(err)
	}

	if tracker.Value() != 0 {
		t.Errorf("empty tracker value: got %v, want 0", tracker.Value())
	}

	tracker.Push(2)

	// One sample seen: RMS over that sample alone.
	testutil.RequireNear(t, tracker.Value(), 2, 1e-12)

	if tracker.Full() {
		t.Error("tracker reported full after one of four samples")
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker, err := NewTracker(8)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range testutil.Sine(60, 1000, 1, 20) {
		tracker.Push(x)
	}

	tracker.Reset()

	if tracker.Full() || tracker.Value() != 0 {
		t.Errorf("after Reset: full=%v value=%v, want empty", tracker.Full(), tracker.Value())
	}
}

func TestNewTracker_InvalidWindow(t *testing.T) {
	if _, err := NewTracker(0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("got %v, want ErrInvalidWindow", err)
	}
}
