package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestMagnitude_SineAmplitude(t *testing.T) {
	const rate = 1000.0
	buf := core.NewBuffer(testutil.DeterministicSine(50, rate, 0.7, 1000), rate)

	freqs, mags := Magnitude(buf, 0)
	if len(freqs) != 501 || len(mags) != 501 {
		t.Fatalf("bins = %d/%d, want 501", len(freqs), len(mags))
	}
	if freqs[50] != 50 {
		t.Fatalf("freqs[50] = %v, want 50", freqs[50])
	}
	if math.Abs(mags[50]-0.7) > 1e-9 {
		t.Fatalf("mags[50] = %v, want 0.7", mags[50])
	}
	for i, m := range mags {
		if i != 50 && m > 1e-9 {
			t.Fatalf("mags[%d] = %v, want ~0", i, m)
		}
	}
}

func TestMagnitude_MaxFrequency(t *testing.T) {
	const rate = 1000.0
	buf := core.NewBuffer(testutil.DeterministicNoise(1, 1, 1000), rate)

	freqs, mags := Magnitude(buf, 100)
	if len(freqs) != 101 || len(mags) != 101 {
		t.Fatalf("bins = %d, want 101", len(freqs))
	}
	if freqs[len(freqs)-1] != 100 {
		t.Fatalf("last bin %v Hz, want 100", freqs[len(freqs)-1])
	}

	// A limit above Nyquist keeps every bin.
	freqs, _ = Magnitude(buf, 5000)
	if len(freqs) != 501 {
		t.Fatalf("bins = %d, want 501", len(freqs))
	}
}

func TestMagnitude_OddLength(t *testing.T) {
	buf := core.NewBuffer(testutil.DeterministicNoise(2, 1, 999), 999)
	freqs, mags := Magnitude(buf, 0)
	if len(freqs) != 500 || len(mags) != 500 {
		t.Fatalf("bins = %d, want 500", len(freqs))
	}
}

func TestMagnitude_Degenerate(t *testing.T) {
	if f, m := Magnitude(core.Buffer{SampleRate: 1000}, 0); f != nil || m != nil {
		t.Fatal("empty buffer should give nil slices")
	}
	if f, m := Magnitude(core.NewBuffer([]float64{1, 2}, 0), 0); f != nil || m != nil {
		t.Fatal("invalid rate should give nil slices")
	}
	// A limit below the first non-DC bin keeps only DC.
	f, _ := Magnitude(core.NewBuffer(make([]float64, 10), 10), 0.5)
	if len(f) != 1 {
		t.Fatalf("bins = %d, want 1", len(f))
	}
}

func TestPeak(t *testing.T) {
	const rate = 2000.0
	x := testutil.DeterministicSine(30, rate, 0.5, 2000)
	for i, v := range testutil.DeterministicSine(15, rate, 0.9, 2000) {
		x[i] += v + 3 // DC offset is skipped
	}
	freqs, mags := Magnitude(core.NewBuffer(x, rate), DefaultMaxFrequency)

	f, m, ok := Peak(freqs, mags)
	if !ok || f != 15 || math.Abs(m-0.9) > 1e-9 {
		t.Fatalf("Peak = %v Hz, %v, %v; want 15 Hz, 0.9", f, m, ok)
	}
	if _, _, ok := Peak([]float64{0}, []float64{1}); ok {
		t.Fatal("Peak with only DC succeeded")
	}
}
