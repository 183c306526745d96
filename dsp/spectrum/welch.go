package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/window"
)

// Welch estimates the one-sided power spectral density of buf in units²/Hz.
//
// The buffer is cut into segments of segmentSize samples with 50 % overlap,
// each tapered by a periodic Hann window. Samples after the last full
// segment are ignored; buffers shorter than one segment are zero-padded to
// a single segment. segmentSize must be a power of two.
func Welch(buf core.Buffer, segmentSize int) (freqs, psd []float64, err error) {
	if !core.ValidRate(buf.SampleRate) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, buf.SampleRate)
	}
	if segmentSize < 2 || segmentSize&(segmentSize-1) != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSize, segmentSize)
	}

	plan, err := algofft.NewPlan64(segmentSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	win := window.Generate(window.TypeHann, segmentSize, window.WithPeriodic())
	winPower := 0.0
	for _, w := range win {
		winPower += w * w
	}

	bins := segmentSize/2 + 1
	hop := segmentSize / 2

	seg := make([]float64, segmentSize)
	in := make([]complex128, segmentSize)
	out := make([]complex128, segmentSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pow := make([]float64, bins)
	psd = make([]float64, bins)

	segments := 0
	for start := 0; start == 0 || start+segmentSize <= buf.Len(); start += hop {
		core.Zero(seg)
		copy(seg, buf.Samples[start:])
		vecmath.MulBlockInPlace(seg, win)
		for i, v := range seg {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, nil, fmt.Errorf("spectrum: fft: %w", err)
		}
		for i := 0; i < bins; i++ {
			re[i] = real(out[i])
			im[i] = imag(out[i])
		}
		vecmath.Power(pow, re, im)
		vecmath.AddBlockInPlace(psd, pow)
		segments++
	}

	scale := 1 / (buf.SampleRate * winPower * float64(segments))
	for i := range psd {
		psd[i] *= scale
		if i > 0 && i < bins-1 {
			psd[i] *= 2
		}
	}

	freqs = make([]float64, bins)
	for i := range freqs {
		freqs[i] = binFrequency(i, segmentSize, buf.SampleRate)
	}
	return freqs, psd, nil
}
