package analysis

import "github.com/cwbudde/algo-power/measure/relay"

// Config defines the thresholds and window sizes shared by a full-recording
// analysis. Every value is carried explicitly into the detectors; nothing is
// read from process-wide state.
type Config struct {
	NominalVoltage       float64
	SagRatio             float64
	SwellRatio           float64
	WindowSize           int
	SaturationWindowSize int
	FlatnessThreshold    float64
	HighCurrentThreshold float64
	ExpectedDelay        *relay.DelayBounds
	ExpectedFrequencyHz  float64
	FrequencyToleranceHz float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for a 60 Hz system. The nominal
// voltage and high-current threshold have no universal default and must be
// set by the caller for sag/swell and saturation detection.
func DefaultConfig() Config {
	return Config{
		SagRatio:             0.8,
		SwellRatio:           1.1,
		WindowSize:           50,
		SaturationWindowSize: 16,
		FlatnessThreshold:    0.05,
		ExpectedFrequencyHz:  60.0,
		FrequencyToleranceHz: 1.0,
	}
}

// WithNominalVoltage sets the steady-state voltage reference.
func WithNominalVoltage(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.NominalVoltage = v
		}
	}
}

// WithSagRatio sets the sag threshold as a fraction of nominal voltage.
func WithSagRatio(ratio float64) Option {
	return func(cfg *Config) {
		if ratio > 0 {
			cfg.SagRatio = ratio
		}
	}
}

// WithSwellRatio sets the swell threshold as a fraction of nominal voltage.
func WithSwellRatio(ratio float64) Option {
	return func(cfg *Config) {
		if ratio > 0 {
			cfg.SwellRatio = ratio
		}
	}
}

// WithWindowSize sets the RMS analysis window in samples.
func WithWindowSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// WithSaturationWindowSize sets the saturation analysis window in samples.
func WithSaturationWindowSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.SaturationWindowSize = size
		}
	}
}

// WithFlatnessThreshold sets the saturation flatness threshold.
func WithFlatnessThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.FlatnessThreshold = threshold
		}
	}
}

// WithHighCurrentThreshold sets the magnitude gate for saturation detection.
func WithHighCurrentThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.HighCurrentThreshold = threshold
		}
	}
}

// WithExpectedDelay sets the expected relay trip-delay bounds in seconds.
func WithExpectedDelay(minSec, maxSec float64) Option {
	return func(cfg *Config) {
		cfg.ExpectedDelay = &relay.DelayBounds{Min: minSec, Max: maxSec}
	}
}

// WithExpectedFrequency sets the expected nominal line frequency.
func WithExpectedFrequency(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.ExpectedFrequencyHz = hz
		}
	}
}

// WithFrequencyTolerance sets the allowed nominal frequency deviation in Hz.
func WithFrequencyTolerance(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.FrequencyToleranceHz = hz
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
