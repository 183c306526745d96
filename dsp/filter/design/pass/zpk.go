package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// bilinearFS2 is 2*fs for the bilinear transform evaluated at fs = 2,
// which makes normalized frequency 1 correspond to Nyquist.
const bilinearFS2 = 4.0

// realTolerance decides when a pole is treated as purely real.
const realTolerance = 1e-12

// butterworthPrototype returns the poles of the order-n analog Butterworth
// lowpass with unit cutoff. There are no finite zeros and the gain is 1.
func butterworthPrototype(n int) []complex128 {
	poles := make([]complex128, 0, n)
	for m := -n + 1; m < n; m += 2 {
		theta := math.Pi * float64(m) / float64(2*n)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}
	return poles
}

// prewarp maps a normalized digital frequency to the analog frequency that
// the bilinear transform at fs = 2 sends back onto it.
func prewarp(w float64) float64 {
	return bilinearFS2 * math.Tan(math.Pi*w/2)
}

// lowpassToBandpass moves unit-cutoff lowpass poles to a band with centre
// w0 and width bw. Every pole splits into two; the transform adds
// len(poles) zeros at the origin and multiplies the gain by bw^len(poles).
func lowpassToBandpass(poles []complex128, w0, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(poles))
	w0sq := complex(w0*w0, 0)
	half := complex(bw/2, 0)
	for _, p := range poles {
		lp := p * half
		root := cmplx.Sqrt(lp*lp - w0sq)
		out = append(out, lp+root, lp-root)
	}
	return out
}

// bilinearPoles maps analog poles into the z-plane.
func bilinearPoles(poles []complex128) []complex128 {
	fs2 := complex(bilinearFS2, 0)
	out := make([]complex128, len(poles))
	for i, p := range poles {
		out[i] = (fs2 + p) / (fs2 - p)
	}
	return out
}

// bandpassDigitalGain returns the overall gain of the bilinear-mapped
// bandpass: the analog gain times 4^zeros / prod(4 - p). The analog zeros
// all sit at the origin.
func bandpassDigitalGain(analogGain float64, zeros int, poles []complex128) float64 {
	num := complex(math.Pow(bilinearFS2, float64(zeros)), 0)
	den := complex(1, 0)
	for _, p := range poles {
		den *= complex(bilinearFS2, 0) - p
	}
	return analogGain * real(num/den)
}

// bandpassSections groups z-plane poles into second-order sections. Each
// section gets the numerator 1 - z^-2, i.e. one zero at z = 1 and one at
// z = -1. Sections are ordered by increasing pole radius so the most
// resonant section runs last.
func bandpassSections(poles []complex128) ([]biquad.Coefficients, bool) {
	var complexPoles []complex128
	var realPoles []float64
	for _, p := range poles {
		switch {
		case math.Abs(imag(p)) <= realTolerance*math.Max(1, cmplx.Abs(p)):
			realPoles = append(realPoles, real(p))
		case imag(p) > 0:
			complexPoles = append(complexPoles, p)
		}
	}
	if 2*len(complexPoles)+len(realPoles) != len(poles) || len(realPoles)%2 != 0 {
		return nil, false
	}

	type pending struct {
		radius float64
		c      biquad.Coefficients
	}
	secs := make([]pending, 0, len(poles)/2)
	for _, p := range complexPoles {
		secs = append(secs, pending{
			radius: cmplx.Abs(p),
			c: biquad.Coefficients{
				B0: 1, B1: 0, B2: -1,
				A1: -2 * real(p),
				A2: real(p)*real(p) + imag(p)*imag(p),
			},
		})
	}

	sort.Float64s(realPoles)
	for i := 0; i+1 < len(realPoles); i += 2 {
		r1, r2 := realPoles[i], realPoles[i+1]
		secs = append(secs, pending{
			radius: math.Max(math.Abs(r1), math.Abs(r2)),
			c: biquad.Coefficients{
				B0: 1, B1: 0, B2: -1,
				A1: -(r1 + r2),
				A2: r1 * r2,
			},
		})
	}

	sort.SliceStable(secs, func(i, j int) bool { return secs[i].radius < secs[j].radius })

	out := make([]biquad.Coefficients, len(secs))
	for i := range secs {
		out[i] = secs[i].c
	}
	return out, true
}
