package mix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

var (
	// ErrInvalidArgument is returned when Mix is not given exactly one
	// buffer and one flag per band.
	ErrInvalidArgument = errors.New("mix: invalid argument")

	// ErrLengthMismatch is returned when an enabled band buffer differs in
	// length from filtered[0].
	ErrLengthMismatch = errors.New("mix: band length mismatch")
)

// Mixer stores a linear gain per band. Gains default to 1.
type Mixer struct {
	gains [bank.NumBands]float64
}

// New creates a mixer with unity gain on every band.
func New() *Mixer {
	m := &Mixer{}
	for i := range m.gains {
		m.gains[i] = 1
	}
	return m
}

// SetGain sets the gain for a band. Any real value is accepted, including
// zero and negative gains. Invalid indices are ignored.
func (m *Mixer) SetGain(idx bank.BandIndex, gain float64) {
	if !idx.Valid() {
		return
	}
	m.gains[idx] = gain
}

// Gain returns the gain for a band, or 0 for an invalid index.
func (m *Mixer) Gain(idx bank.BandIndex) float64 {
	if !idx.Valid() {
		return 0
	}
	return m.gains[idx]
}

// Gains returns all gains in band order.
func (m *Mixer) Gains() [bank.NumBands]float64 {
	return m.gains
}

// Mix returns the sum of gain[i]*filtered[i] over every band with
// enabled[i] set. filtered and enabled must each hold exactly one entry per
// band, and every enabled buffer must match filtered[0] in length.
//
// The result takes its length and sample rate from filtered[0], so all
// bands disabled yields silence of that length. Inputs are never modified.
func (m *Mixer) Mix(filtered []core.Buffer, enabled []bool) (core.Buffer, error) {
	if len(filtered) != bank.NumBands || len(enabled) != bank.NumBands {
		return core.Buffer{}, fmt.Errorf("%w: got %d buffers and %d flags, want %d each",
			ErrInvalidArgument, len(filtered), len(enabled), bank.NumBands)
	}

	n := filtered[0].Len()
	out := core.ZeroBuffer(n, filtered[0].SampleRate)
	for i, on := range enabled {
		if !on {
			continue
		}
		if filtered[i].Len() != n {
			return core.Buffer{}, fmt.Errorf("%w: band %d has %d samples, want %d",
				ErrLengthMismatch, i, filtered[i].Len(), n)
		}
		floats.AddScaled(out.Samples, m.gains[i], filtered[i].Samples)
	}

	return out, nil
}

// MixBands is Mix for the fixed-size arrays produced by bank.Bank.ApplyAll.
func (m *Mixer) MixBands(filtered [bank.NumBands]core.Buffer, enabled [bank.NumBands]bool) (core.Buffer, error) {
	return m.Mix(filtered[:], enabled[:])
}
