package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-power/record"
)

// loadCSV reads a recording from a CSV file. The first column must be named
// "time" and holds timestamps in seconds; every further column is a channel,
// digital when its name carries a "D:" prefix, analog otherwise.
func loadCSV(path string) (*record.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: need a header row and at least one sample row", path)
	}

	header := rows[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "time") {
		return nil, fmt.Errorf("%s: first column must be \"time\"", path)
	}

	n := len(rows) - 1
	timeBase := make([]float64, n)
	analog := make(map[string][]float64)
	digital := make(map[string][]int)

	digitalCol := make([]bool, len(header))
	names := make([]string, len(header))

	for c := 1; c < len(header); c++ {
		name := strings.TrimSpace(header[c])
		if rest, ok := strings.CutPrefix(name, "D:"); ok {
			digitalCol[c] = true
			name = rest
			digital[name] = make([]int, n)
		} else {
			analog[name] = make([]float64, n)
		}

		names[c] = name
	}

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, header has %d", path, r+1, len(row), len(header))
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad timestamp %q", path, r+1, row[0])
		}

		timeBase[r-1] = t

		for c := 1; c < len(row); c++ {
			field := strings.TrimSpace(row[c])

			if digitalCol[c] {
				v, err := strconv.Atoi(field)
				if err != nil || v < 0 || v > 1 {
					return nil, fmt.Errorf("%s: row %d: bad status value %q in %q", path, r+1, field, names[c])
				}

				digital[names[c]][r-1] = v

				continue
			}

			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad sample %q in %q", path, r+1, field, names[c])
			}

			analog[names[c]][r-1] = v
		}
	}

	return record.New(timeBase, analog, digital)
}

// metaFile mirrors record.Metadata for the YAML header sidecar.
type metaFile struct {
	Station      string  `yaml:"station"`
	RecorderID   string  `yaml:"recorder_id"`
	Frequency    float64 `yaml:"frequency"`
	FileType     string  `yaml:"file_type"`
	TotalCount   int     `yaml:"total_channels"`
	AnalogCount  int     `yaml:"analog_channels"`
	DigitalCount int     `yaml:"digital_channels"`
}

// loadMeta reads recording metadata from a YAML sidecar file.
func loadMeta(path string) (record.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Metadata{}, err
	}

	var mf metaFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return record.Metadata{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return record.Metadata{
		Station:      mf.Station,
		RecorderID:   mf.RecorderID,
		Frequency:    mf.Frequency,
		FileType:     mf.FileType,
		TotalCount:   mf.TotalCount,
		AnalogCount:  mf.AnalogCount,
		DigitalCount: mf.DigitalCount,
	}, nil
}
