package record

import (
	"strings"
	"testing"
)

func cleanMeta() Metadata {
	return Metadata{
		Station:      "SMARTSTATION",
		Frequency:    60.0,
		FileType:     "ASCII",
		TotalCount:   3,
		AnalogCount:  2,
		DigitalCount: 1,
	}
}

func TestConformance_CleanRecording(t *testing.T) {
	issues := Conformance(cleanMeta(), validRecording(t), 60.0)
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestCheckChannelCounts_TotalMismatch(t *testing.T) {
	meta := cleanMeta()
	meta.TotalCount = 5

	issues := CheckChannelCounts(meta, validRecording(t))
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}

	if issues[0].Severity != SeverityError {
		t.Errorf("Severity: got %v, want error", issues[0].Severity)
	}
}

func TestCheckChannelCounts_DeclaredVsActual(t *testing.T) {
	meta := cleanMeta()
	meta.AnalogCount = 3
	meta.TotalCount = 4

	issues := CheckChannelCounts(meta, validRecording(t))
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}

	if !strings.Contains(issues[0].Message, "declared 3, found 2") {
		t.Errorf("unexpected message: %q", issues[0].Message)
	}
}

func TestCheckFileType(t *testing.T) {
	for _, ft := range []string{"ASCII", "binary", "Binary32", "FLOAT32", " ascii "} {
		meta := Metadata{FileType: ft}
		if issues := CheckFileType(meta); len(issues) != 0 {
			t.Errorf("file type %q flagged: %v", ft, issues)
		}
	}

	meta := Metadata{FileType: "EBCDIC"}
	if issues := CheckFileType(meta); len(issues) != 1 {
		t.Errorf("invalid file type: got %d issues, want 1", len(issues))
	}
}

func TestCheckFrequency(t *testing.T) {
	if issues := CheckFrequency(Metadata{Frequency: 60}, 60, 1); len(issues) != 0 {
		t.Errorf("matching frequency flagged: %v", issues)
	}

	if issues := CheckFrequency(Metadata{Frequency: 0}, 60, 1); len(issues) != 1 {
		t.Error("zero frequency not flagged")
	}

	if issues := CheckFrequency(Metadata{Frequency: 50}, 60, 1); len(issues) != 1 {
		t.Error("50 Hz against 60 Hz not flagged")
	}

	// Tolerance <= 0 falls back to 1 Hz.
	if issues := CheckFrequency(Metadata{Frequency: 60.5}, 60, 0); len(issues) != 0 {
		t.Errorf("0.5 Hz deviation flagged under default tolerance: %v", issues)
	}
}
