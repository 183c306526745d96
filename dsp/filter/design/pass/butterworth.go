package pass

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// ErrInvalidParams is returned for cutoffs or orders no filter can be
// designed for.
var ErrInvalidParams = errors.New("pass: invalid parameters")

// ButterworthBP designs a Butterworth bandpass.
//
// order is the prototype lowpass order; the resulting filter has 2*order
// poles arranged in order second-order sections. low and high are the -3 dB
// edges as fractions of Nyquist and must satisfy 0 < low < high < 1.
//
// The returned gain must be applied once to the cascade input, e.g. with
// biquad.WithGain.
func ButterworthBP(order int, low, high float64) ([]biquad.Coefficients, float64, error) {
	if order < 1 || !(low > 0) || !(high < 1) || !(low < high) {
		return nil, 0, ErrInvalidParams
	}

	wl := prewarp(low)
	wh := prewarp(high)
	bw := wh - wl
	w0 := math.Sqrt(wl * wh)
	if !(bw > 0) || math.IsInf(wh, 0) {
		return nil, 0, ErrInvalidParams
	}

	analog := lowpassToBandpass(butterworthPrototype(order), w0, bw)
	gain := bandpassDigitalGain(math.Pow(bw, float64(order)), order, analog)

	sections, ok := bandpassSections(bilinearPoles(analog))
	if !ok || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, 0, ErrInvalidParams
	}

	return sections, gain, nil
}

// ButterworthBPHz designs a Butterworth bandpass from edges in Hz.
func ButterworthBPHz(lowHz, highHz float64, order int, sampleRate float64) ([]biquad.Coefficients, float64, error) {
	if !(sampleRate > 0) {
		return nil, 0, ErrInvalidParams
	}
	nyquist := sampleRate / 2
	return ButterworthBP(order, lowHz/nyquist, highHz/nyquist)
}

// ButterworthBPChain is ButterworthBP wrapped into a ready-to-run cascade.
func ButterworthBPChain(order int, low, high float64) (*biquad.Chain, error) {
	sections, gain, err := ButterworthBP(order, low, high)
	if err != nil {
		return nil, err
	}
	return biquad.NewChain(sections, biquad.WithGain(gain)), nil
}

// CenterFrequency returns the normalized frequency at which a bandpass
// designed with edges low and high reaches unity gain.
func CenterFrequency(low, high float64) float64 {
	w0 := math.Sqrt(prewarp(low) * prewarp(high))
	return 2 / math.Pi * math.Atan(w0/bilinearFS2)
}
