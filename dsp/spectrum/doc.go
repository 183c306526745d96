// Package spectrum estimates the frequency content of sample buffers.
//
// Magnitude gives the single-sided amplitude spectrum of a whole buffer,
// scaled so a sinusoid of amplitude A that completes an integer number of
// cycles reads A at its bin. Welch averages windowed segments into a power
// spectral density. Goertzel and ToneAmplitude evaluate single frequencies
// without a full transform.
package spectrum
