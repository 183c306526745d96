// Package window generates the tapering windows used by the spectrum
// estimators.
package window

import "math"

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form used for FFT framing instead of
// the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length, or nil for
// non-positive lengths. Unknown types produce a rectangular window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	denom := float64(length - 1)
	if cfg.periodic {
		denom = float64(length)
	}
	for i := range out {
		out[i] = eval(t, 2*math.Pi*float64(i)/denom)
	}
	return out
}

// eval evaluates a generalized cosine window at phase x in [0, 2*pi].
func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	default:
		return 1
	}
}

// CoherentGain returns the mean of coeffs, the amplitude scaling a window
// applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range coeffs {
		sum += w
	}
	return sum / float64(len(coeffs))
}

// EquivalentNoiseBandwidth returns the ENBW of coeffs in bins, or 0 for an
// empty or all-zero window.
func EquivalentNoiseBandwidth(coeffs []float64) float64 {
	sum, sumSq := 0.0, 0.0
	for _, w := range coeffs {
		sum += w
		sumSq += w * w
	}
	if sum == 0 {
		return 0
	}
	return float64(len(coeffs)) * sumSq / (sum * sum)
}
