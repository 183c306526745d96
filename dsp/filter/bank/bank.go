package bank

import (
	"sync"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design/pass"
)

const (
	defaultOrder      = 4
	defaultSampleRate = 1000.0
)

// Bank holds the five band ranges, their enable flags, the filter order and
// the sample rate filters are designed for.
//
// Bank is safe for concurrent use. Apply and ApplyAll work on a snapshot of
// the state taken when they start; a concurrent SetSampleRate affects only
// later calls.
type Bank struct {
	mu         sync.RWMutex
	ranges     [NumBands]Range
	enabled    [NumBands]bool
	order      int
	sampleRate float64
}

type bankConfig struct {
	order      int
	sampleRate float64
	ranges     [NumBands]Range
}

func defaultBankConfig() bankConfig {
	return bankConfig{
		order:      defaultOrder,
		sampleRate: defaultSampleRate,
		ranges:     DefaultRanges(),
	}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithOrder sets the Butterworth prototype order per band. Each band filter
// has 2*n poles and runs twice. Must be >= 1; defaults to 4.
func WithOrder(n int) Option {
	return func(cfg *bankConfig) {
		if n >= 1 {
			cfg.order = n
		}
	}
}

// WithSampleRate sets the initial sample rate. Defaults to 1000 Hz.
func WithSampleRate(rate float64) Option {
	return func(cfg *bankConfig) {
		if core.ValidRate(rate) {
			cfg.sampleRate = rate
		}
	}
}

// WithRanges replaces the band ranges. The set is ignored unless every
// range has 0 <= Low < High and the ranges ascend without overlap.
func WithRanges(ranges [NumBands]Range) Option {
	return func(cfg *bankConfig) {
		if validRanges(ranges) {
			cfg.ranges = ranges
		}
	}
}

// New builds a bank with every band enabled.
func New(opts ...Option) *Bank {
	cfg := defaultBankConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	b := &Bank{
		ranges:     cfg.ranges,
		order:      cfg.order,
		sampleRate: cfg.sampleRate,
	}
	for i := range b.enabled {
		b.enabled[i] = true
	}
	return b
}

// SetEnabled turns a band on or off. Invalid indices are ignored.
func (b *Bank) SetEnabled(idx BandIndex, enabled bool) {
	if !idx.Valid() {
		return
	}
	b.mu.Lock()
	b.enabled[idx] = enabled
	b.mu.Unlock()
}

// IsEnabled reports whether a band is on. Invalid indices report false.
func (b *Bank) IsEnabled(idx BandIndex) bool {
	if !idx.Valid() {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled[idx]
}

// Enabled returns all enable flags in band order.
func (b *Bank) Enabled() [NumBands]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}

// SetSampleRate stores the rate used by subsequent Apply calls.
// The value is not validated; rates that cannot be filtered at make every
// band silent.
func (b *Bank) SetSampleRate(rate float64) {
	b.mu.Lock()
	b.sampleRate = rate
	b.mu.Unlock()
}

// SampleRate returns the stored sample rate.
func (b *Bank) SampleRate() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sampleRate
}

// Order returns the Butterworth prototype order per band.
func (b *Bank) Order() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.order
}

// Ranges returns the configured band ranges.
func (b *Bank) Ranges() [NumBands]Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ranges
}

// Plan reports how Apply would treat a band at the stored sample rate.
func (b *Bank) Plan(idx BandIndex) Plan {
	return b.snapshot().plan(idx)
}

// Apply filters in through one band at the stored sample rate and returns
// a new buffer of the same length tagged with that rate. It never modifies
// bank state; call SetSampleRate first to change the rate.
//
// Disabled, invalid, and unreachable bands return zeros. See the package
// documentation for the full edge policy.
func (b *Bank) Apply(in core.Buffer, idx BandIndex) core.Buffer {
	return b.snapshot().apply(in, idx)
}

// ApplyAll runs all five bands over in, concurrently, against one snapshot
// of the bank state. The result is identical to five Apply calls made
// without intervening state changes.
func (b *Bank) ApplyAll(in core.Buffer) [NumBands]core.Buffer {
	snap := b.snapshot()

	var out [NumBands]core.Buffer
	var wg sync.WaitGroup
	for _, idx := range AllBands() {
		wg.Add(1)
		go func(idx BandIndex) {
			defer wg.Done()
			out[idx] = snap.apply(in, idx)
		}(idx)
	}
	wg.Wait()

	return out
}

// state is an immutable copy of the bank configuration.
type state struct {
	ranges     [NumBands]Range
	enabled    [NumBands]bool
	order      int
	sampleRate float64
}

func (b *Bank) snapshot() state {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return state{
		ranges:     b.ranges,
		enabled:    b.enabled,
		order:      b.order,
		sampleRate: b.sampleRate,
	}
}

func (s state) plan(idx BandIndex) Plan {
	if !idx.Valid() {
		return Plan{Action: ActionSilence}
	}
	return planBand(idx, s.ranges[idx], s.enabled[idx], s.sampleRate)
}

func (s state) apply(in core.Buffer, idx BandIndex) core.Buffer {
	p := s.plan(idx)
	switch p.Action {
	case ActionPassThrough:
		out := in.Clone()
		out.SampleRate = s.sampleRate
		return out
	case ActionFilter:
		chain, err := pass.ButterworthBPChain(s.order, p.Low, p.High)
		if err == nil {
			return core.NewBuffer(chain.FilterZeroPhase(in.Samples), s.sampleRate)
		}
	}
	return core.ZeroBuffer(in.Len(), s.sampleRate)
}
