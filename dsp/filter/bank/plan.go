package bank

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

const (
	// highEdgeCeiling caps the upper edge relative to Nyquist, in Hz terms.
	highEdgeCeiling = 0.99

	minNormalized = 0.001
	maxNormalized = 0.999

	// collapseWidth is the normalized width given to a band whose edges
	// crossed after clamping.
	collapseWidth = 0.001
)

// Action is what the bank does with a band at a given sample rate.
type Action int

const (
	// ActionSilence returns zeros.
	ActionSilence Action = iota
	// ActionPassThrough returns the input unchanged.
	ActionPassThrough
	// ActionFilter runs the zero-phase bandpass.
	ActionFilter
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionSilence:
		return "silence"
	case ActionPassThrough:
		return "pass-through"
	case ActionFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// Plan is the resolved treatment of one band. Low and High are normalized
// cutoffs (fractions of Nyquist) and are only set for ActionFilter.
type Plan struct {
	Action Action
	Low    float64
	High   float64
}

// planBand resolves the edge policy for one band.
func planBand(idx BandIndex, r Range, enabled bool, sampleRate float64) Plan {
	silence := Plan{Action: ActionSilence}
	if !idx.Valid() || !enabled || !core.ValidRate(sampleRate) {
		return silence
	}

	nyquist := core.Nyquist(sampleRate)
	if r.Low >= nyquist {
		return silence
	}

	high := math.Min(r.High, highEdgeCeiling*nyquist)

	lo := core.Clamp(r.Low/nyquist, minNormalized, maxNormalized)
	hi := core.Clamp(high/nyquist, minNormalized, maxNormalized)

	if hi <= lo {
		hi = lo + collapseWidth
		if hi >= maxNormalized {
			if idx == PassThroughBand {
				return Plan{Action: ActionPassThrough}
			}
			return silence
		}
	}

	return Plan{Action: ActionFilter, Low: lo, High: hi}
}
