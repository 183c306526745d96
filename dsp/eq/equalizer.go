package eq

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/mix"
	"github.com/cwbudde/algo-eq/dsp/signal"
)

// Equalizer ties a Source, a Bank and a Mixer into one processing cycle.
// It is safe for concurrent use.
type Equalizer struct {
	mu       sync.Mutex
	source   *signal.Source
	bank     *bank.Bank
	mixer    *mix.Mixer
	duration float64
}

// New builds an equalizer with the default components, bands and unity
// gains.
func New(opts ...Option) *Equalizer {
	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	src := signal.NewSource(core.WithSampleRate(cfg.sampleRate))
	bankOpts := append(cfg.bankOpts, bank.WithSampleRate(src.SampleRate()))

	return &Equalizer{
		source:   src,
		bank:     bank.New(bankOpts...),
		mixer:    mix.New(),
		duration: cfg.duration,
	}
}

// SetComponent updates one source component. Invalid indices are ignored.
func (e *Equalizer) SetComponent(idx signal.ComponentIndex, opts ...signal.ComponentOption) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.source.SetComponent(idx, opts...)
}

// Component returns one source component and whether idx is valid.
func (e *Equalizer) Component(idx signal.ComponentIndex) (signal.Component, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source.Component(idx)
}

// SetBandEnabled turns a band on or off. Invalid indices are ignored.
func (e *Equalizer) SetBandEnabled(idx bank.BandIndex, enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bank.SetEnabled(idx, enabled)
}

// BandEnabled reports whether a band is on.
func (e *Equalizer) BandEnabled(idx bank.BandIndex) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bank.IsEnabled(idx)
}

// SetGain sets the mixer gain of a band. Invalid indices are ignored.
func (e *Equalizer) SetGain(idx bank.BandIndex, gain float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mixer.SetGain(idx, gain)
}

// Gain returns the mixer gain of a band, or 0 for an invalid index.
func (e *Equalizer) Gain(idx bank.BandIndex) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Gain(idx)
}

// SetSampleRate changes the source rate and moves the bank along with it.
// Rates the source rejects leave both unchanged. Components at or above
// the new Nyquist frequency are clamped by the source.
func (e *Equalizer) SetSampleRate(rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.source.SetSampleRate(rate)
	e.bank.SetSampleRate(e.source.SampleRate())
}

// SampleRate returns the current sample rate.
func (e *Equalizer) SampleRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source.SampleRate()
}

// SetDuration sets the rendered length in seconds. Non-positive and
// non-finite values are ignored.
func (e *Equalizer) SetDuration(seconds float64) {
	if !validDuration(seconds) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = seconds
}

// Duration returns the rendered length in seconds.
func (e *Equalizer) Duration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration
}

// Update runs one cycle: render the signal and its components, split it
// through every band at the source rate, and mix the enabled bands.
func (e *Equalizer) Update() (Frame, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	input, t := e.source.GenerateCompleteSignal(e.duration)

	f := Frame{
		Time:       t,
		Input:      input,
		Sources:    e.source.Components(),
		Enabled:    e.bank.Enabled(),
		Gains:      e.mixer.Gains(),
		SampleRate: e.source.SampleRate(),
		BandRanges: e.bank.Ranges(),
	}
	for i := range f.Components {
		f.Components[i], _ = e.source.GenerateComponent(signal.ComponentIndex(i), e.duration)
	}

	e.bank.SetSampleRate(f.SampleRate)
	for _, idx := range bank.AllBands() {
		f.BandActions[idx] = e.bank.Plan(idx).Action
	}
	f.Bands = e.bank.ApplyAll(input)

	out, err := e.mixer.MixBands(f.Bands, f.Enabled)
	if err != nil {
		return Frame{}, fmt.Errorf("eq: mix: %w", err)
	}
	f.Output = out

	return f, nil
}
