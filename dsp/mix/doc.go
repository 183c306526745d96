// Package mix combines band outputs into one signal.
//
// A Mixer holds one linear gain per band. Mix sums the enabled band
// buffers, each scaled by its gain, and returns a new buffer; disabled
// bands contribute nothing regardless of their content.
package mix
