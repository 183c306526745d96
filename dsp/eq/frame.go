package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/meter"
	"github.com/cwbudde/algo-eq/dsp/signal"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

// Frame is the result of one Update. Every buffer has the same length and
// is tagged with SampleRate.
type Frame struct {
	Time       []float64
	Input      core.Buffer
	Components [signal.NumComponents]core.Buffer
	Bands      [bank.NumBands]core.Buffer
	Output     core.Buffer

	// Configuration the frame was produced with.
	SampleRate  float64
	Sources     [signal.NumComponents]signal.Component
	Enabled     [bank.NumBands]bool
	Gains       [bank.NumBands]float64
	BandRanges  [bank.NumBands]bank.Range
	BandActions [bank.NumBands]bank.Action
}

// Spectrum is a single-sided amplitude spectrum.
type Spectrum struct {
	Freqs []float64
	Mags  []float64
}

func magnitude(buf core.Buffer, maxHz float64) Spectrum {
	freqs, mags := spectrum.Magnitude(buf, maxHz)
	return Spectrum{Freqs: freqs, Mags: mags}
}

// InputSpectrum returns the input spectrum up to maxHz; maxHz <= 0 means
// up to Nyquist.
func (f Frame) InputSpectrum(maxHz float64) Spectrum {
	return magnitude(f.Input, maxHz)
}

// OutputSpectrum returns the mixed output spectrum up to maxHz.
func (f Frame) OutputSpectrum(maxHz float64) Spectrum {
	return magnitude(f.Output, maxHz)
}

// ComponentSpectrum returns the spectrum of one rendered component. An
// invalid index yields an empty spectrum.
func (f Frame) ComponentSpectrum(idx signal.ComponentIndex, maxHz float64) Spectrum {
	if !idx.Valid() {
		return Spectrum{}
	}
	return magnitude(f.Components[idx], maxHz)
}

// Levels measures the band outputs.
func (f Frame) Levels() meter.BandLevels {
	return meter.MeasureBands(f.Bands)
}

// ToneLevel compares a source component's amplitude before and after the
// equalizer.
type ToneLevel struct {
	Frequency float64
	Input     float64
	Output    float64
}

// GainDB returns the level change in dB, or NaN when the tone is absent
// from the input.
func (l ToneLevel) GainDB() float64 {
	if l.Input == 0 {
		return math.NaN()
	}
	return core.LinearToDB(l.Output / l.Input)
}

// ToneLevels estimates, for each source component, its amplitude in the
// input and in the output. The first component outside [0, Nyquist] stops
// the estimate with its error.
func (f Frame) ToneLevels() ([signal.NumComponents]ToneLevel, error) {
	var out [signal.NumComponents]ToneLevel
	for i := range f.Sources {
		l, err := f.ComponentToneLevel(signal.ComponentIndex(i))
		if err != nil {
			return out, err
		}
		out[i] = l
	}
	return out, nil
}

// ComponentToneLevel estimates one source component's amplitude in the
// input and in the output.
func (f Frame) ComponentToneLevel(idx signal.ComponentIndex) (ToneLevel, error) {
	if !idx.Valid() {
		return ToneLevel{}, fmt.Errorf("eq: invalid component %d", idx)
	}
	hz := f.Sources[idx].Frequency
	in, err := spectrum.ToneAmplitude(f.Input, hz)
	if err != nil {
		return ToneLevel{Frequency: hz}, err
	}
	out, err := spectrum.ToneAmplitude(f.Output, hz)
	if err != nil {
		return ToneLevel{Frequency: hz}, err
	}
	return ToneLevel{Frequency: hz, Input: in, Output: out}, nil
}
