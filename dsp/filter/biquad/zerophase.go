package biquad

import "github.com/cwbudde/algo-eq/dsp/core"

// edgeFactor times the number of filter taps gives the default odd-extension
// length used by FilterZeroPhase.
const edgeFactor = 3

// PadLen returns the number of odd-extension samples FilterZeroPhase adds
// to each end of an n-sample input. It is 3*(2*sections+1), shortened to
// n-1 for short inputs.
func (c *Chain) PadLen(n int) int {
	pad := edgeFactor * (2*len(c.sections) + 1)
	if pad > n-1 {
		pad = n - 1
	}
	if pad < 0 {
		pad = 0
	}
	return pad
}

// FilterZeroPhase filters x forward and then backward through the chain and
// returns a new slice of the same length.
//
// The effective magnitude response is |H|^2 and the phase response is zero.
// The input is extended at both ends by point reflection about its end
// samples, and each pass starts from the steady state for its first sample.
// The chain's own delay-line state is restored before returning, so repeated
// calls with the same input produce identical output.
func (c *Chain) FilterZeroPhase(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	pad := c.PadLen(n)
	ext := make([]float64, n+2*pad)
	for i := 0; i < pad; i++ {
		ext[i] = 2*x[0] - x[pad-i]
	}
	copy(ext[pad:], x)
	for i := 0; i < pad; i++ {
		ext[pad+n+i] = 2*x[n-1] - x[n-2-i]
	}

	saved := c.State()
	defer c.SetState(saved)

	c.SetState(c.SteadyState(ext[0]))
	c.ProcessBlock(ext)

	core.Reverse(ext)
	c.SetState(c.SteadyState(ext[0]))
	c.ProcessBlock(ext)
	core.Reverse(ext)

	copy(out, ext[pad:pad+n])
	return out
}
