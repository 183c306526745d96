package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

// DefaultDuration is the rendered signal length in seconds.
const DefaultDuration = 1.0

type config struct {
	duration   float64
	sampleRate float64
	bankOpts   []bank.Option
}

func defaultConfig() config {
	return config{
		duration:   DefaultDuration,
		sampleRate: core.DefaultSampleRate,
	}
}

// Option configures an Equalizer.
type Option func(*config)

// WithDuration sets the rendered signal length in seconds.
// Non-positive and non-finite durations are ignored.
func WithDuration(seconds float64) Option {
	return func(cfg *config) {
		if validDuration(seconds) {
			cfg.duration = seconds
		}
	}
}

// WithSampleRate sets the initial sample rate of the source and bank.
// Non-positive and non-finite rates are ignored.
func WithSampleRate(rate float64) Option {
	return func(cfg *config) {
		if core.ValidRate(rate) {
			cfg.sampleRate = rate
		}
	}
}

// WithBankOptions passes options through to the filter bank, for example a
// different order or band layout. A sample rate given here is overridden by
// the source rate.
func WithBankOptions(opts ...bank.Option) Option {
	return func(cfg *config) {
		cfg.bankOpts = append(cfg.bankOpts, opts...)
	}
}

func validDuration(seconds float64) bool {
	return seconds > 0 && !math.IsInf(seconds, 1)
}
