package core

// Buffer is a block of mono samples tagged with the rate they were
// produced at. Every buffer passed through the equalizer carries its own
// rate; nothing downstream assumes a fixed one.
type Buffer struct {
	Samples    []float64
	SampleRate float64
}

// NewBuffer wraps samples without copying.
func NewBuffer(samples []float64, sampleRate float64) Buffer {
	return Buffer{Samples: samples, SampleRate: sampleRate}
}

// ZeroBuffer returns a silent buffer of n samples.
func ZeroBuffer(n int, sampleRate float64) Buffer {
	if n < 0 {
		n = 0
	}
	return Buffer{Samples: make([]float64, n), SampleRate: sampleRate}
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Duration returns the buffer length in seconds, or 0 for an invalid rate.
func (b Buffer) Duration() float64 {
	if !ValidRate(b.SampleRate) {
		return 0
	}
	return float64(len(b.Samples)) / b.SampleRate
}

// Clone returns a deep copy whose samples do not alias b.
func (b Buffer) Clone() Buffer {
	out := Buffer{SampleRate: b.SampleRate, Samples: make([]float64, len(b.Samples))}
	copy(out.Samples, b.Samples)
	return out
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
