package meter

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

// BandLevels summarizes the band outputs of one bank pass.
type BandLevels struct {
	Energy [bank.NumBands]float64
	RMS    [bank.NumBands]float64
	Peak   [bank.NumBands]float64
}

// MeasureBands measures every band buffer.
func MeasureBands(bands [bank.NumBands]core.Buffer) BandLevels {
	out := BandLevels{Energy: BandEnergies(bands)}
	for i, b := range bands {
		out.RMS[i] = RMS(b.Samples)
		out.Peak[i] = Peak(b.Samples)
	}
	return out
}

// EnergyBalance returns the summed energy of the band outputs divided by
// the energy of the input they were split from. For complementary bands
// that cover the whole input spectrum the ratio is near 1; energy outside
// every band lowers it. It is 0 when the input has no energy.
func EnergyBalance(input core.Buffer, bands [bank.NumBands]core.Buffer) float64 {
	in := Energy(input.Samples)
	if in == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bands {
		sum += Energy(b.Samples)
	}
	return sum / in
}

// BandEnergies returns the energy of each band buffer.
func BandEnergies(bands [bank.NumBands]core.Buffer) [bank.NumBands]float64 {
	var out [bank.NumBands]float64
	for i, b := range bands {
		out[i] = Energy(b.Samples)
	}
	return out
}
