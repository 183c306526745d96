package signal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Source renders the sum of three sinusoidal components.
//
// A Source is not safe for concurrent mutation; callers that change
// components from another goroutine must serialize access.
type Source struct {
	cfg        core.ProcessorConfig
	components [NumComponents]Component
}

// NewSource creates a source with the default components.
// The sample rate defaults to core.DefaultSampleRate.
func NewSource(opts ...core.ProcessorOption) *Source {
	return &Source{
		cfg:        core.ApplyProcessorOptions(opts...),
		components: defaultComponents(),
	}
}

// SampleRate returns the current sample rate in Hz.
func (s *Source) SampleRate() float64 {
	return s.cfg.SampleRate
}

// SetSampleRate changes the sample rate. Non-positive and infinite rates
// are ignored.
//
// Components at or above the new Nyquist frequency are clamped to 95 % of
// it. The clamp overwrites the stored frequency; raising the rate again
// does not restore it.
func (s *Source) SetSampleRate(rate float64) {
	if !core.ValidRate(rate) {
		return
	}
	s.cfg.SampleRate = rate

	nyquist := core.Nyquist(rate)
	for i := range s.components {
		if s.components[i].Frequency >= nyquist {
			s.components[i].Frequency = nyquist * nyquistMargin
		}
	}
}

// SetComponent applies opts to the component at idx. Fields without an
// option keep their value. Invalid indices are ignored.
func (s *Source) SetComponent(idx ComponentIndex, opts ...ComponentOption) {
	if !idx.Valid() {
		return
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s.components[idx])
		}
	}
}

// Component returns the component at idx and whether idx is valid.
func (s *Source) Component(idx ComponentIndex) (Component, bool) {
	if !idx.Valid() {
		return Component{}, false
	}
	return s.components[idx], true
}

// Components returns a copy of all components.
func (s *Source) Components() [NumComponents]Component {
	return s.components
}

// SampleCount returns int(duration * rate), or 0 for non-positive durations.
func (s *Source) SampleCount(duration float64) int {
	n := duration * s.cfg.SampleRate
	if !(n >= 1) || math.IsInf(n, 1) {
		return 0
	}
	return int(n)
}

// TimeAxis returns SampleCount(duration) instants evenly spaced over
// [0, duration).
func (s *Source) TimeAxis(duration float64) []float64 {
	n := s.SampleCount(duration)
	t := make([]float64, n)
	if n == 0 {
		return t
	}
	step := duration / float64(n)
	for i := range t {
		t[i] = float64(i) * step
	}
	return t
}

// GenerateComponent renders one component over duration seconds and
// returns it together with its time axis. An invalid index yields two
// empty sequences.
func (s *Source) GenerateComponent(idx ComponentIndex, duration float64) (core.Buffer, []float64) {
	if !idx.Valid() {
		return core.Buffer{Samples: []float64{}, SampleRate: s.cfg.SampleRate}, []float64{}
	}
	t := s.TimeAxis(duration)
	return core.NewBuffer(render(s.components[idx], t), s.cfg.SampleRate), t
}

// GenerateCompleteSignal renders the sum of all components over duration
// seconds. Components are accumulated in index order, so the result equals
// the sum of the individual GenerateComponent outputs sample for sample.
func (s *Source) GenerateCompleteSignal(duration float64) (core.Buffer, []float64) {
	t := s.TimeAxis(duration)
	out := make([]float64, len(t))
	for i := range s.components {
		vecmath.AddBlockInPlace(out, render(s.components[i], t))
	}
	return core.NewBuffer(out, s.cfg.SampleRate), t
}

func render(c Component, t []float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * c.Frequency
	for i, ti := range t {
		out[i] = c.Amplitude * math.Sin(w*ti+c.Phase)
	}
	return out
}
