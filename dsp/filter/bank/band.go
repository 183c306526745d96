package bank

// NumBands is the number of bands in a Bank.
const NumBands = 5

// PassThroughBand is the only band that falls back to passing its input
// through when its range cannot be represented at the current sample rate.
// Every other band goes silent in that case.
//
// TODO: make the collapse fallback uniform across bands (all pass-through
// or all silent).
const PassThroughBand BandIndex = 2

// BandIndex addresses one of the NumBands bands. Build it with
// NewBandIndex; operations given an index outside [0, NumBands) degrade to
// a no-op, false, or silence.
type BandIndex int

// NewBandIndex validates i and reports whether it addresses a band.
func NewBandIndex(i int) (BandIndex, bool) {
	idx := BandIndex(i)
	return idx, idx.Valid()
}

// Valid reports whether idx is in [0, NumBands).
func (idx BandIndex) Valid() bool {
	return idx >= 0 && idx < NumBands
}

// AllBands lists every band index in ascending order.
func AllBands() [NumBands]BandIndex {
	var out [NumBands]BandIndex
	for i := range out {
		out[i] = BandIndex(i)
	}
	return out
}

// Range is the nominal frequency interval of a band in Hz.
type Range struct {
	Low  float64
	High float64
}

// DefaultRanges returns the 100 Hz wide bands covering 0-500 Hz.
func DefaultRanges() [NumBands]Range {
	return [NumBands]Range{
		{Low: 0, High: 100},
		{Low: 101, High: 200},
		{Low: 201, High: 300},
		{Low: 301, High: 400},
		{Low: 401, High: 500},
	}
}

// validRanges reports whether ranges are non-negative, each non-empty, and
// ascending without overlap.
func validRanges(ranges [NumBands]Range) bool {
	for i, r := range ranges {
		if !(r.Low >= 0) || !(r.Low < r.High) {
			return false
		}
		if i > 0 && r.Low < ranges[i-1].High {
			return false
		}
	}
	return true
}
