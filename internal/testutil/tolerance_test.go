package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff() = %v, want 1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(DC(-2, 10)); got != 2 {
		t.Fatalf("RMS() = %v, want 2", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
	if got := RMS(DeterministicSine(10, 1000, 1, 1000)); math.Abs(got-math.Sqrt2/2) > 1e-9 {
		t.Fatalf("RMS(sine) = %v, want %v", got, math.Sqrt2/2)
	}
}

func TestMiddle(t *testing.T) {
	m := Middle([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	if len(m) != 4 || m[0] != 2 || m[3] != 5 {
		t.Fatalf("Middle() = %v", m)
	}
}
