package pass

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// normRate makes biquad frequency arguments equal to normalized frequency:
// with a sample rate of 2, frequency 1 is Nyquist.
const normRate = 2.0

var bandCases = []struct {
	name      string
	low, high float64
}{
	{name: "low band at 1 kHz", low: 0.001, high: 0.2},
	{name: "mid band at 1 kHz", low: 0.402, high: 0.6},
	{name: "voice band at 2 kHz", low: 0.201, high: 0.3},
	{name: "wide", low: 0.05, high: 0.95},
	{name: "narrow near nyquist", low: 0.995, high: 0.996},
	{name: "narrow near dc", low: 0.001, high: 0.002},
}

func TestButterworthBP_SectionShape(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6} {
		sections, gain, err := ButterworthBP(order, 0.2, 0.4)
		if err != nil {
			t.Fatalf("order %d: error = %v", order, err)
		}
		if len(sections) != order {
			t.Fatalf("order %d: sections=%d, want %d", order, len(sections), order)
		}
		if gain == 0 || math.IsNaN(gain) {
			t.Fatalf("order %d: gain = %v", order, gain)
		}
		for i, s := range sections {
			if s.B0 != 1 || s.B1 != 0 || s.B2 != -1 {
				t.Fatalf("order %d section %d: numerator %v %v %v, want 1 0 -1", order, i, s.B0, s.B1, s.B2)
			}
		}
	}
}

func TestButterworthBP_AllSectionsStable(t *testing.T) {
	for _, tc := range bandCases {
		for _, order := range []int{2, 4, 8} {
			c, err := ButterworthBPChain(order, tc.low, tc.high)
			if err != nil {
				t.Fatalf("%s order %d: error = %v", tc.name, order, err)
			}
			if !c.Stable() {
				t.Fatalf("%s order %d: unstable cascade", tc.name, order)
			}
		}
	}
}

func TestButterworthBP_UnityAtCenter(t *testing.T) {
	for _, tc := range bandCases {
		c, err := ButterworthBPChain(4, tc.low, tc.high)
		if err != nil {
			t.Fatalf("%s: error = %v", tc.name, err)
		}
		fc := CenterFrequency(tc.low, tc.high)
		if fc <= tc.low || fc >= tc.high {
			t.Fatalf("%s: center %v outside (%v, %v)", tc.name, fc, tc.low, tc.high)
		}
		if mag := c.Magnitude(fc, normRate); math.Abs(mag-1) > 1e-6 {
			t.Fatalf("%s: |H(center)| = %v, want 1", tc.name, mag)
		}
	}
}

func TestButterworthBP_Minus3dBAtEdges(t *testing.T) {
	for _, tc := range bandCases {
		c, err := ButterworthBPChain(4, tc.low, tc.high)
		if err != nil {
			t.Fatalf("%s: error = %v", tc.name, err)
		}
		for _, edge := range []float64{tc.low, tc.high} {
			if mag := c.Magnitude(edge, normRate); math.Abs(mag-math.Sqrt2/2) > 1e-6 {
				t.Fatalf("%s: |H(%v)| = %v, want %v", tc.name, edge, mag, math.Sqrt2/2)
			}
		}
	}
}

func TestButterworthBP_BlocksDCAndNyquist(t *testing.T) {
	c, err := ButterworthBPChain(4, 0.2, 0.3)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	for _, f := range []float64{0, 1} {
		if mag := c.Magnitude(f, normRate); mag > 1e-9 {
			t.Fatalf("|H(%v)| = %v, want 0", f, mag)
		}
	}
}

func TestButterworthBP_HigherOrderSteeperRolloff(t *testing.T) {
	prev := math.Inf(1)
	for _, order := range []int{1, 2, 4, 6} {
		c, err := ButterworthBPChain(order, 0.2, 0.3)
		if err != nil {
			t.Fatalf("order %d: error = %v", order, err)
		}
		db := c.MagnitudeDB(0.1, normRate)
		if db >= prev {
			t.Fatalf("order %d: %.2f dB at 0.1, not below %.2f dB", order, db, prev)
		}
		prev = db
	}
}

func TestButterworthBP_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		order     int
		low, high float64
	}{
		{name: "zero order", order: 0, low: 0.1, high: 0.2},
		{name: "low at zero", order: 4, low: 0, high: 0.2},
		{name: "high at one", order: 4, low: 0.1, high: 1},
		{name: "inverted", order: 4, low: 0.3, high: 0.2},
		{name: "equal", order: 4, low: 0.3, high: 0.3},
		{name: "nan", order: 4, low: math.NaN(), high: 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ButterworthBP(tt.order, tt.low, tt.high)
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestButterworthBPHz_MatchesNormalized(t *testing.T) {
	a, ga, err := ButterworthBPHz(201, 300, 4, 2000)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	b, gb, err := ButterworthBP(4, 0.201, 0.3)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if ga != gb {
		t.Fatalf("gain %v != %v", ga, gb)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("section %d: %+v != %+v", i, a[i], b[i])
		}
	}
	if _, _, err := ButterworthBPHz(201, 300, 4, 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("zero rate error = %v, want ErrInvalidParams", err)
	}
}

func TestButterworthBP_ReferenceSecondOrder(t *testing.T) {
	// First-order prototype: a single section whose response is the
	// classic second-order bandpass (1 - z^-2) * gain / (1 + a1 z^-1 + a2 z^-2).
	sections, gain, err := ButterworthBP(1, 0.25, 0.5)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	c := biquad.NewChain(sections, biquad.WithGain(gain))
	ir := c.ImpulseResponse(3)
	if math.Abs(ir[0]-gain) > 1e-15 {
		t.Fatalf("h[0] = %v, want gain %v", ir[0], gain)
	}
	if math.Abs(sections[0].A2) >= 1 {
		t.Fatalf("a2 = %v, want |a2| < 1", sections[0].A2)
	}
}
