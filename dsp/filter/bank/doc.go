// Package bank provides the five-band zero-phase filter bank of the
// equalizer.
//
// Each band is a fixed frequency range routed through a Butterworth
// bandpass that is designed on demand for the bank's current sample rate
// and applied forward and backward, so band outputs line up with the input
// sample for sample.
//
// Band ranges are authored in Hz and may not fit every sample rate. Before
// designing a filter the bank re-derives each band's edges against the
// current Nyquist frequency and degrades instead of failing:
//
//   - a band starting at or above Nyquist is silent;
//   - the upper edge is held below 99 % of Nyquist;
//   - normalized edges are kept inside [0.001, 0.999];
//   - a band whose edges collapse is widened by 0.001, and if that is not
//     representable it is silent, except [PassThroughBand], which then
//     passes its input through unchanged.
//
// Basic usage:
//
//	b := bank.New(bank.WithSampleRate(2000))
//	bands := b.ApplyAll(input) // five rate-tagged buffers, in band order
package bank
