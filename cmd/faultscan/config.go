package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-power/analysis"
)

// thresholdFile is the YAML threshold-config schema consumed by -config.
// Zero values fall back to the analysis defaults.
type thresholdFile struct {
	NominalVoltage       float64 `yaml:"nominal_voltage"`
	SagRatio             float64 `yaml:"sag_ratio"`
	SwellRatio           float64 `yaml:"swell_ratio"`
	WindowSize           int     `yaml:"window_size"`
	SaturationWindowSize int     `yaml:"saturation_window_size"`
	FlatnessThreshold    float64 `yaml:"flatness_threshold"`
	HighCurrentThreshold float64 `yaml:"high_current_threshold"`
	ExpectedDelay        *struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"expected_delay"`
	ExpectedFrequency  float64 `yaml:"expected_frequency"`
	FrequencyTolerance float64 `yaml:"frequency_tolerance"`
}

// loadThresholds reads analyzer options from a YAML file.
func loadThresholds(path string) ([]analysis.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf thresholdFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var opts []analysis.Option

	if tf.NominalVoltage > 0 {
		opts = append(opts, analysis.WithNominalVoltage(tf.NominalVoltage))
	}

	if tf.SagRatio > 0 {
		opts = append(opts, analysis.WithSagRatio(tf.SagRatio))
	}

	if tf.SwellRatio > 0 {
		opts = append(opts, analysis.WithSwellRatio(tf.SwellRatio))
	}

	if tf.WindowSize > 0 {
		opts = append(opts, analysis.WithWindowSize(tf.WindowSize))
	}

	if tf.SaturationWindowSize > 0 {
		opts = append(opts, analysis.WithSaturationWindowSize(tf.SaturationWindowSize))
	}

	if tf.FlatnessThreshold > 0 {
		opts = append(opts, analysis.WithFlatnessThreshold(tf.FlatnessThreshold))
	}

	if tf.HighCurrentThreshold > 0 {
		opts = append(opts, analysis.WithHighCurrentThreshold(tf.HighCurrentThreshold))
	}

	if tf.ExpectedDelay != nil {
		opts = append(opts, analysis.WithExpectedDelay(tf.ExpectedDelay.Min, tf.ExpectedDelay.Max))
	}

	if tf.ExpectedFrequency > 0 {
		opts = append(opts, analysis.WithExpectedFrequency(tf.ExpectedFrequency))
	}

	if tf.FrequencyTolerance > 0 {
		opts = append(opts, analysis.WithFrequencyTolerance(tf.FrequencyTolerance))
	}

	return opts, nil
}
