package dwt

import "github.com/cwbudde/algo-wavelet/dsp/pad"

// Option configures a transform.
type Option func(*config)

type config struct {
	level   int
	mode    pad.Mode
	workers int
}

func defaultConfig() config {
	return config{
		level:   0,
		mode:    pad.ModeReflect,
		workers: 1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLevel sets the number of decomposition levels. Zero selects the
// maximum useful level for the input length; negative values are rejected
// with ErrInvalidLevel by the transform.
func WithLevel(n int) Option {
	return func(c *config) {
		c.level = n
	}
}

// WithMode sets the boundary extension applied before every analysis level.
// Defaults to pad.ModeReflect.
func WithMode(m pad.Mode) Option {
	return func(c *config) {
		if m != "" {
			c.mode = m
		}
	}
}

// WithWorkers sets how many batch rows or planes are transformed
// concurrently. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}
