package spectrum

import "errors"

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")

	// ErrInvalidFrequency is returned for frequencies outside [0, Nyquist].
	ErrInvalidFrequency = errors.New("spectrum: invalid frequency")

	// ErrInvalidSize is returned for segment sizes that are not a power of
	// two of at least 2.
	ErrInvalidSize = errors.New("spectrum: invalid segment size")
)
