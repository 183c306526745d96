// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters.
//
// Besides causal block processing, a [Chain] can filter a finished buffer
// forward and backward ([Chain.FilterZeroPhase]) so that the result has no
// phase shift or group delay relative to the input. Both passes start from
// steady-state initial conditions on an odd-extended copy of the input,
// which keeps edge transients small.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
