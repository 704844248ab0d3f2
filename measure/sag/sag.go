// Package sag detects voltage sag and swell events in analog waveform
// channels. A sag is a contiguous interval where the sliding-window RMS
// voltage stays below a fraction of nominal; a swell is the symmetric
// above-threshold condition.
//
// No minimum-duration debounce is applied; callers needing debounce compose
// it on top of the returned events.
package sag

import (
	"fmt"

	"github.com/cwbudde/algo-power/dsp/rms"
	"github.com/cwbudde/algo-power/internal/runlen"
)

const (
	defaultSagRatio   = 0.8
	defaultSwellRatio = 1.1
	defaultWindowSize = 50
)

// Config holds sag/swell detection parameters.
type Config struct {
	// NominalVoltage is the steady-state reference level the thresholds are
	// relative to. Must be > 0.
	NominalVoltage float64

	// SagRatio scales NominalVoltage into the sag threshold. Defaults to 0.8.
	SagRatio float64

	// SwellRatio scales NominalVoltage into the swell threshold.
	// Defaults to 1.1.
	SwellRatio float64

	// WindowSize is the RMS window length in samples. Defaults to 50.
	WindowSize int
}

// Event is one detected sag or swell: a contiguous run of RMS values past
// the threshold. ExtremeRMS is the minimum RMS inside the run for sags and
// the maximum for swells.
type Event struct {
	StartTime  float64
	EndTime    float64
	ExtremeRMS float64
}

// DetectSags returns all sag events in the given voltage channel. Empty
// input yields an empty result; input shorter than the RMS window is an
// error.
func DetectSags(samples, timeBase []float64, cfg Config) ([]Event, error) {
	return detect(samples, timeBase, cfg, false)
}

// DetectSwells returns all swell events in the given voltage channel, using
// the mirrored above-threshold logic of [DetectSags].
func DetectSwells(samples, timeBase []float64, cfg Config) ([]Event, error) {
	return detect(samples, timeBase, cfg, true)
}

func detect(samples, timeBase []float64, cfg Config, swell bool) ([]Event, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, nil
	}

	if len(samples) != len(timeBase) {
		return nil, fmt.Errorf("%w: %d samples, %d time-base entries",
			ErrMismatchedLength, len(samples), len(timeBase))
	}

	series, err := rms.Compute(samples, cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	times, err := rms.AlignTime(timeBase, cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	var runs []runlen.Run
	if swell {
		runs = runlen.FindAbove(series, cfg.NominalVoltage*cfg.SwellRatio)
	} else {
		runs = runlen.FindBelow(series, cfg.NominalVoltage*cfg.SagRatio)
	}

	events := make([]Event, 0, len(runs))

	for _, run := range runs {
		extreme := series[run.Start]
		for i := run.Start + 1; i <= run.End; i++ {
			if swell && series[i] > extreme || !swell && series[i] < extreme {
				extreme = series[i]
			}
		}

		events = append(events, Event{
			StartTime:  times[run.Start],
			EndTime:    times[run.End],
			ExtremeRMS: extreme,
		})
	}

	return events, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.NominalVoltage <= 0 {
		return cfg, fmt.Errorf("%w: nominal voltage must be > 0: %g", ErrInvalidReference, cfg.NominalVoltage)
	}

	if cfg.SagRatio == 0 {
		cfg.SagRatio = defaultSagRatio
	}

	if cfg.SwellRatio == 0 {
		cfg.SwellRatio = defaultSwellRatio
	}

	if cfg.SagRatio <= 0 || cfg.SagRatio >= 1 {
		return cfg, fmt.Errorf("%w: sag ratio must be in (0,1): %g", ErrInvalidReference, cfg.SagRatio)
	}

	if cfg.SwellRatio <= 1 {
		return cfg, fmt.Errorf("%w: swell ratio must be > 1: %g", ErrInvalidReference, cfg.SwellRatio)
	}

	if cfg.WindowSize == 0 {
		cfg.WindowSize = defaultWindowSize
	}

	return cfg, nil
}
