// Package analysis orchestrates fault-pattern detection over a disturbance
// recording: it resolves channel IDs through the recording, runs the
// requested detectors with one shared configuration, and aggregates the
// typed findings into a report.
package analysis

import (
	"fmt"

	"github.com/cwbudde/algo-power/measure/freq"
	"github.com/cwbudde/algo-power/measure/relay"
	"github.com/cwbudde/algo-power/measure/sag"
	"github.com/cwbudde/algo-power/measure/saturation"
	"github.com/cwbudde/algo-power/record"
)

// Analyzer binds one Recording to an analysis configuration. It holds no
// mutable state; methods are safe to call concurrently.
type Analyzer struct {
	rec *record.Recording
	cfg Config
}

// New creates an Analyzer for the given recording.
func New(rec *record.Recording, opts ...Option) *Analyzer {
	return &Analyzer{
		rec: rec,
		cfg: ApplyOptions(opts...),
	}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// DetectSags runs sag detection on the named analog channel.
func (a *Analyzer) DetectSags(channelID string) ([]sag.Event, error) {
	samples, err := a.rec.Analog(channelID)
	if err != nil {
		return nil, err
	}

	return sag.DetectSags(samples, a.rec.Time(), a.sagConfig())
}

// DetectSwells runs swell detection on the named analog channel.
func (a *Analyzer) DetectSwells(channelID string) ([]sag.Event, error) {
	samples, err := a.rec.Analog(channelID)
	if err != nil {
		return nil, err
	}

	return sag.DetectSwells(samples, a.rec.Time(), a.sagConfig())
}

// CheckRelay evaluates the named digital trip channel against a reference
// fault time.
func (a *Analyzer) CheckRelay(channelID string, referenceTime float64) (relay.TripInfo, error) {
	samples, err := a.rec.Digital(channelID)
	if err != nil {
		return relay.TripInfo{}, err
	}

	return relay.Check(samples, a.rec.Time(), referenceTime, a.cfg.ExpectedDelay)
}

// DetectSaturation runs CT saturation detection on the named current
// channel.
func (a *Analyzer) DetectSaturation(channelID string) ([]saturation.Event, error) {
	samples, err := a.rec.Analog(channelID)
	if err != nil {
		return nil, err
	}

	return saturation.Detect(samples, a.rec.Time(), saturation.Config{
		WindowSize:           a.cfg.SaturationWindowSize,
		FlatnessThreshold:    a.cfg.FlatnessThreshold,
		HighCurrentThreshold: a.cfg.HighCurrentThreshold,
	})
}

// DetectFrequencyDeviations runs the zero-crossing frequency scan on the
// named analog channel.
func (a *Analyzer) DetectFrequencyDeviations(channelID string) ([]freq.DeviationEvent, error) {
	samples, err := a.rec.Analog(channelID)
	if err != nil {
		return nil, err
	}

	return freq.DetectDeviations(samples, a.rec.Time(),
		a.cfg.ExpectedFrequencyHz, a.cfg.FrequencyToleranceHz)
}

// Report aggregates the findings of a full fault analysis. A nil Trip means
// the relay check did not run (no sag supplied a reference time, or the trip
// channel failed to resolve).
type Report struct {
	Sags       []sag.Event
	Swells     []sag.Event
	Saturation []saturation.Event
	Trip       *relay.TripInfo

	// Problems collects per-channel failures (unknown IDs, parameter domain
	// errors). A failed channel aborts only its own analysis; the others
	// proceed.
	Problems []error
}

// Run performs the standard fault analysis: sag and swell detection on the
// voltage channel, saturation detection on the current channel, and — when a
// sag was found — a relay check on the trip channel referenced to the first
// sag's start time.
func (a *Analyzer) Run(voltageID, currentID, tripID string) Report {
	var report Report

	sags, err := a.DetectSags(voltageID)
	if err != nil {
		report.Problems = append(report.Problems, fmt.Errorf("sag detection on %q: %w", voltageID, err))
	} else {
		report.Sags = sags
	}

	swells, err := a.DetectSwells(voltageID)
	if err != nil {
		report.Problems = append(report.Problems, fmt.Errorf("swell detection on %q: %w", voltageID, err))
	} else {
		report.Swells = swells
	}

	sat, err := a.DetectSaturation(currentID)
	if err != nil {
		report.Problems = append(report.Problems, fmt.Errorf("saturation detection on %q: %w", currentID, err))
	} else {
		report.Saturation = sat
	}

	if len(report.Sags) > 0 {
		info, err := a.CheckRelay(tripID, report.Sags[0].StartTime)
		if err != nil {
			report.Problems = append(report.Problems, fmt.Errorf("relay check on %q: %w", tripID, err))
		} else {
			report.Trip = &info
		}
	}

	return report
}

func (a *Analyzer) sagConfig() sag.Config {
	return sag.Config{
		NominalVoltage: a.cfg.NominalVoltage,
		SagRatio:       a.cfg.SagRatio,
		SwellRatio:     a.cfg.SwellRatio,
		WindowSize:     a.cfg.WindowSize,
	}
}
