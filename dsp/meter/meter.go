// Package meter measures level and energy of sample blocks.
package meter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// ErrLengthMismatch is returned when paired blocks differ in length.
var ErrLengthMismatch = errors.New("meter: length mismatch")

// Energy returns the sum of squared samples.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return f64.DotProduct(x, x)
}

// RMS returns the root-mean-square level, or 0 for an empty block.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(Energy(x) / float64(len(x)))
}

// Mean returns the arithmetic mean, or 0 for an empty block.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return f64.Sum(x) / float64(len(x))
}

// Peak returns the largest absolute sample value.
func Peak(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// PeakDB returns Peak in dBFS.
func PeakDB(x []float64) float64 {
	return core.LinearToDB(Peak(x))
}

// RMSDB returns RMS in dBFS.
func RMSDB(x []float64) float64 {
	return core.LinearToDB(RMS(x))
}

// Correlation returns the normalized cross-correlation of a and b at zero
// lag, in [-1, 1]. It is 0 when either block has no energy.
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	ea, eb := Energy(a), Energy(b)
	if ea == 0 || eb == 0 {
		return 0, nil
	}
	return f64.DotProduct(a, b) / math.Sqrt(ea*eb), nil
}
