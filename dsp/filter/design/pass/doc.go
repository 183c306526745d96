// Package pass designs Butterworth pass-band filters as cascades of
// second-order sections.
//
// Designs follow the classic analog-prototype route: the normalized
// Butterworth lowpass poles are moved to the requested band with a
// lowpass-to-bandpass transform at pre-warped edge frequencies, then mapped
// to the z-plane with the bilinear transform. Cutoffs are given as
// fractions of the Nyquist frequency, in (0, 1).
package pass
