package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/window"
)

// Goertzel evaluates one DFT term over all samples processed since the
// last Reset.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !core.ValidRate(sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !(frequency >= 0 && frequency <= core.Nyquist(sampleRate)) {
		return nil, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, frequency, sampleRate)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessBlock feeds input into the analyzer.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X|² for the samples processed so far.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X| for the samples processed so far.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Frequency returns the analyzed frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// ToneAmplitude estimates the amplitude of a sinusoid at frequency in buf.
//
// The buffer is Hann-windowed before evaluation and the result is divided by
// the window's coherent gain, so the estimate does not depend on whether
// the tone completes a whole number of cycles. Separate tones closer than
// about two cycles per buffer length bleed into each other. At 0 Hz the
// result is twice the DC level.
func ToneAmplitude(buf core.Buffer, frequency float64) (float64, error) {
	g, err := NewGoertzel(frequency, buf.SampleRate)
	if err != nil {
		return 0, err
	}
	n := buf.Len()
	if n == 0 {
		return 0, nil
	}

	win := window.Generate(window.TypeHann, n, window.WithPeriodic())
	x := make([]float64, n)
	vecmath.MulBlock(x, buf.Samples, win)
	g.ProcessBlock(x)

	gain := window.CoherentGain(win) * float64(n)
	if gain == 0 {
		return 0, nil
	}
	return 2 * g.Magnitude() / gain, nil
}
