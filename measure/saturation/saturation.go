// Package saturation flags intervals of current-transformer saturation in
// current waveforms. Saturation flattens the secondary waveform: the local
// sample-to-sample variability collapses while the raw magnitude stays high.
//
// This is a best-effort signature match, not a certified diagnostic: the
// detector reports windows whose normalized variability drops below a
// threshold while the current is elevated. Other flattening effects (clipped
// recorder inputs, stuck samples) produce the same signature.
package saturation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-power/internal/runlen"
)

const (
	defaultWindowSize        = 16
	defaultFlatnessThreshold = 0.05
)

// Config holds saturation detection parameters.
type Config struct {
	// WindowSize is the analysis window length in samples. Must be >= 2 to
	// form successive differences. Defaults to 16.
	WindowSize int

	// FlatnessThreshold is the normalized-variability level below which a
	// window counts as flattened. Defaults to 0.05.
	FlatnessThreshold float64

	// HighCurrentThreshold gates detection to elevated currents: a window is
	// only flagged when its peak magnitude exceeds this level. Saturation is
	// a high-current artifact, so quiescent flat intervals are ignored.
	// Must be > 0.
	HighCurrentThreshold float64
}

// Event is one contiguous flagged interval. Severity is the minimum
// normalized variability observed inside the interval; lower means flatter.
type Event struct {
	StartTime float64
	EndTime   float64
	Severity  float64
}

// Detect returns all saturation events in the given current channel. Each
// valid window (same offsets and right-edge time alignment as the RMS
// engine) is scored by the standard deviation of its successive-sample
// differences normalized by its peak magnitude; windows scoring below the
// flatness threshold while the peak exceeds the high-current threshold are
// flagged, and adjacent flagged windows merge into single events.
//
// Empty input yields an empty result; non-empty input shorter than the
// window is an error.
func Detect(samples, timeBase []float64, cfg Config) ([]Event, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, nil
	}

	if len(samples) != len(timeBase) {
		return nil, fmt.Errorf("%w: %d samples, %d time-base entries",
			ErrInvalidWindow, len(samples), len(timeBase))
	}

	if cfg.WindowSize > len(samples) {
		return nil, fmt.Errorf("%w: window size %d exceeds sample count %d",
			ErrInvalidWindow, cfg.WindowSize, len(samples))
	}

	n := len(samples) - cfg.WindowSize + 1
	scores := make([]float64, n)
	flagged := make([]bool, n)

	for i := 0; i < n; i++ {
		window := samples[i : i+cfg.WindowSize]
		score, peak := flatnessScore(window)
		scores[i] = score
		flagged[i] = peak > cfg.HighCurrentThreshold && score < cfg.FlatnessThreshold
	}

	runs := runlen.Find(n, func(i int) bool { return flagged[i] })

	events := make([]Event, 0, len(runs))

	for _, run := range runs {
		severity := scores[run.Start]
		for i := run.Start + 1; i <= run.End; i++ {
			if scores[i] < severity {
				severity = scores[i]
			}
		}

		events = append(events, Event{
			StartTime: timeBase[run.Start+cfg.WindowSize-1],
			EndTime:   timeBase[run.End+cfg.WindowSize-1],
			Severity:  severity,
		})
	}

	return events, nil
}

// flatnessScore returns the standard deviation of the window's successive
// differences divided by its peak magnitude, plus the peak itself. A peak of
// zero scores 0: an all-zero window is flat but never elevated.
func flatnessScore(window []float64) (score, peak float64) {
	for _, x := range window {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	if peak == 0 {
		return 0, 0
	}

	m := len(window) - 1

	var mean float64
	for j := 0; j < m; j++ {
		mean += window[j+1] - window[j]
	}

	mean /= float64(m)

	var sumSq float64
	for j := 0; j < m; j++ {
		d := window[j+1] - window[j] - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq/float64(m)) / peak, peak
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.WindowSize == 0 {
		cfg.WindowSize = defaultWindowSize
	}

	if cfg.WindowSize < 2 {
		return cfg, fmt.Errorf("%w: window size must be >= 2: %d", ErrInvalidWindow, cfg.WindowSize)
	}

	if cfg.FlatnessThreshold == 0 {
		cfg.FlatnessThreshold = defaultFlatnessThreshold
	}

	if cfg.FlatnessThreshold < 0 {
		return cfg, fmt.Errorf("%w: flatness threshold must be >= 0: %g", ErrInvalidReference, cfg.FlatnessThreshold)
	}

	if cfg.HighCurrentThreshold <= 0 {
		return cfg, fmt.Errorf("%w: high-current threshold must be > 0: %g",
			ErrInvalidReference, cfg.HighCurrentThreshold)
	}

	return cfg, nil
}
