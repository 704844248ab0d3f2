package record

import (
	"fmt"
	"math"
	"strings"
)

// Metadata carries the scalar header fields of a recording, as declared by
// the recorder. These are checked against the data body by the conformance
// checks; the fault detectors never read them.
type Metadata struct {
	Station      string
	RecorderID   string
	Frequency    float64 // declared nominal line frequency in Hz
	FileType     string  // declared data file encoding
	TotalCount   int     // declared total channel count
	AnalogCount  int     // declared analog channel count
	DigitalCount int     // declared digital (status) channel count
}

// Issue is a single conformance finding.
type Issue struct {
	Severity Severity
	Message  string
}

// Severity grades a conformance issue.
type Severity int

// Conformance issue severities.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// validFileTypes lists the data file encodings permitted by the recording
// format.
var validFileTypes = []string{"ASCII", "BINARY", "BINARY32", "FLOAT32"}

// CheckChannelCounts verifies that the declared total channel count equals
// the sum of the declared analog and digital counts, and that the declared
// per-kind counts match the channels actually present in the recording.
func CheckChannelCounts(meta Metadata, rec *Recording) []Issue {
	var issues []Issue

	if sum := meta.AnalogCount + meta.DigitalCount; meta.TotalCount != sum {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Message: fmt.Sprintf("mismatched channel counts: total declared %d, sum of analog and digital %d",
				meta.TotalCount, sum),
		})
	}

	if rec != nil {
		if got := len(rec.analog); got != meta.AnalogCount {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("analog channels: declared %d, found %d", meta.AnalogCount, got),
			})
		}

		if got := len(rec.digital); got != meta.DigitalCount {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("digital channels: declared %d, found %d", meta.DigitalCount, got),
			})
		}
	}

	return issues
}

// CheckFileType verifies the declared data file encoding against the set of
// valid encodings.
func CheckFileType(meta Metadata) []Issue {
	ft := strings.ToUpper(strings.TrimSpace(meta.FileType))
	for _, valid := range validFileTypes {
		if ft == valid {
			return nil
		}
	}

	return []Issue{{
		Severity: SeverityError,
		Message: fmt.Sprintf("invalid file type %q, valid types: %s",
			meta.FileType, strings.Join(validFileTypes, ", ")),
	}}
}

// CheckFrequency verifies the declared nominal frequency: zero or more than
// tolerance Hz away from the expected value is flagged. A tolerance <= 0
// defaults to 1 Hz.
func CheckFrequency(meta Metadata, expectedHz, toleranceHz float64) []Issue {
	if toleranceHz <= 0 {
		toleranceHz = 1.0
	}

	if meta.Frequency == 0 || math.Abs(meta.Frequency-expectedHz) > toleranceHz {
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("unexpected nominal frequency %g Hz (expected %g Hz)", meta.Frequency, expectedHz),
		}}
	}

	return nil
}

// Conformance runs all metadata conformance checks against a recording.
func Conformance(meta Metadata, rec *Recording, expectedHz float64) []Issue {
	var issues []Issue

	issues = append(issues, CheckChannelCounts(meta, rec)...)
	issues = append(issues, CheckFileType(meta)...)
	issues = append(issues, CheckFrequency(meta, expectedHz, 1.0)...)

	return issues
}
