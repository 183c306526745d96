// Package signal provides the multi-tone test source that drives the
// equalizer.
//
// A [Source] holds three sinusoidal components, each with its own
// frequency, amplitude and phase, and renders them individually or summed
// at the source's sample rate. Time axes follow the half-open convention:
// N samples evenly spaced over [0, duration), never including duration.
//
// Lowering the sample rate clamps any component at or above the new
// Nyquist frequency to 95 % of it, so stored frequencies are not stable
// across rate changes.
package signal
