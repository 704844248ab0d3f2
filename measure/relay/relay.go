// Package relay evaluates protective-relay trip behavior against a reference
// fault time: when (and whether) a digital trip channel asserted, the
// latency relative to the fault, and a correctness classification.
package relay

import (
	"fmt"
)

// Classification grades a relay operation.
type Classification int

// Relay operation classifications.
const (
	// ClassMissing means the trip channel never asserted.
	ClassMissing Classification = iota

	// ClassPremature means the channel asserted at or before the reference
	// time, or faster than the lower expected-delay bound.
	ClassPremature

	// ClassOnTime means the trip delay fell within the expected bounds (or
	// a trip was simply found when no bounds were supplied).
	ClassOnTime

	// ClassLate means the trip delay exceeded the upper expected bound.
	ClassLate
)

func (c Classification) String() string {
	switch c {
	case ClassMissing:
		return "missing"
	case ClassPremature:
		return "premature"
	case ClassOnTime:
		return "on-time"
	case ClassLate:
		return "late"
	default:
		return "unknown"
	}
}

// DelayBounds is an optional expected trip-delay interval in seconds.
type DelayBounds struct {
	Min float64
	Max float64
}

// TripInfo is the result of a relay operation check. TripTime and Delay are
// meaningful only when Tripped is true; they describe the first assertion
// strictly after the reference time.
type TripInfo struct {
	Tripped        bool
	TripTime       float64
	Delay          float64
	Classification Classification
}

// Check scans a digital trip channel for the first assertion after
// referenceTime and classifies the operation. Samples are 0/1 status values
// sharing timeBase. bounds may be nil when no expected delay is known.
//
// A trip at or before the reference time classifies the operation as
// premature even when a later legitimate trip exists; in that case the later
// trip's time and delay are still reported.
func Check(samples []int, timeBase []float64, referenceTime float64, bounds *DelayBounds) (TripInfo, error) {
	if len(timeBase) == 0 {
		return TripInfo{}, fmt.Errorf("%w: empty time base", ErrInsufficientData)
	}

	if len(samples) != len(timeBase) {
		return TripInfo{}, fmt.Errorf("%w: %d samples, %d time-base entries",
			ErrInsufficientData, len(samples), len(timeBase))
	}

	if referenceTime < timeBase[0] || referenceTime > timeBase[len(timeBase)-1] {
		return TripInfo{}, fmt.Errorf("%w: reference time %g outside recording span [%g, %g]",
			ErrInvalidReference, referenceTime, timeBase[0], timeBase[len(timeBase)-1])
	}

	if bounds != nil && bounds.Max < bounds.Min {
		return TripInfo{}, fmt.Errorf("%w: delay bounds [%g, %g]", ErrInvalidReference, bounds.Min, bounds.Max)
	}

	var (
		info      TripInfo
		premature bool
	)

	for i, v := range samples {
		if v == 0 {
			continue
		}

		if timeBase[i] <= referenceTime {
			premature = true
			continue
		}

		info.Tripped = true
		info.TripTime = timeBase[i]
		info.Delay = info.TripTime - referenceTime

		break
	}

	info.Classification = classify(info, premature, bounds)

	return info, nil
}

func classify(info TripInfo, premature bool, bounds *DelayBounds) Classification {
	if premature {
		return ClassPremature
	}

	if !info.Tripped {
		return ClassMissing
	}

	if bounds == nil {
		return ClassOnTime
	}

	switch {
	case info.Delay < bounds.Min:
		return ClassPremature
	case info.Delay > bounds.Max:
		return ClassLate
	default:
		return ClassOnTime
	}
}
