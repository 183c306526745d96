package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// DefaultMaxFrequency is the display limit used by the equalizer frames.
const DefaultMaxFrequency = 500.0

// Magnitude returns the single-sided amplitude spectrum of buf, truncated to
// bins at or below maxHz. A non-positive maxHz keeps every bin up to
// Nyquist.
//
// Bin k sits at k*rate/n Hz and holds |X[k]|*2/n. Empty buffers and
// buffers with an invalid sample rate yield nil slices.
func Magnitude(buf core.Buffer, maxHz float64) (freqs, mags []float64) {
	n := buf.Len()
	if n == 0 || !core.ValidRate(buf.SampleRate) {
		return nil, nil
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, buf.Samples)

	bins := len(coeffs)
	if maxHz > 0 {
		bins = 0
		for bins < len(coeffs) && binFrequency(bins, n, buf.SampleRate) <= maxHz {
			bins++
		}
	}
	if bins == 0 {
		return []float64{}, []float64{}
	}

	re := make([]float64, bins)
	im := make([]float64, bins)
	for i, c := range coeffs[:bins] {
		re[i] = real(c)
		im[i] = imag(c)
	}

	abs := make([]float64, bins)
	vecmath.Magnitude(abs, re, im)
	mags = make([]float64, bins)
	vecmath.ScaleBlock(mags, abs, 2/float64(n))

	freqs = make([]float64, bins)
	for i := range freqs {
		freqs[i] = binFrequency(i, n, buf.SampleRate)
	}
	return freqs, mags
}

// Peak returns the frequency and amplitude of the largest bin in a
// Magnitude result, skipping DC. It reports false when there is no bin
// above DC.
func Peak(freqs, mags []float64) (freq, mag float64, ok bool) {
	best := -1
	for i := 1; i < len(mags) && i < len(freqs); i++ {
		if best < 0 || mags[i] > mags[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return freqs[best], mags[best], true
}

func binFrequency(i, n int, rate float64) float64 {
	return float64(i) * rate / float64(n)
}
