// Package eq runs the five-band equalizer cycle.
//
// An Equalizer owns a signal source, a band filter bank and a mixer. Each
// call to Update renders the test signal, splits it into the five bands at
// the source's sample rate, mixes the enabled bands with their gains and
// returns everything as a Frame. Configuration calls and Update are
// serialized, so a frame always reflects one consistent configuration.
package eq
