package bank

import (
	"math"
	"testing"
)

// collapseRates puts each band's low edge just below Nyquist, within the
// last 0.2 % where the widened band can no longer be represented.
var collapseRates = map[BandIndex]float64{
	1: 202.2,
	2: 402.6,
	3: 602.6,
	4: 802.6,
}

func TestPlanBand_CollapseAsymmetry(t *testing.T) {
	ranges := DefaultRanges()
	for idx, rate := range collapseRates {
		p := planBand(idx, ranges[idx], true, rate)
		want := ActionSilence
		if idx == PassThroughBand {
			want = ActionPassThrough
		}
		if p.Action != want {
			t.Fatalf("band %d at %v Hz: action %v, want %v", idx, rate, p.Action, want)
		}
	}
}

func TestPlanBand_PassThroughOnlyForBandTwo(t *testing.T) {
	ranges := DefaultRanges()
	seen := false
	for rate := 150.0; rate <= 1200; rate += 0.1 {
		for _, idx := range AllBands() {
			p := planBand(idx, ranges[idx], true, rate)
			if p.Action != ActionPassThrough {
				continue
			}
			if idx != PassThroughBand {
				t.Fatalf("band %d passes through at %v Hz", idx, rate)
			}
			seen = true
		}
	}
	if !seen {
		t.Fatal("sweep never reached the pass-through case")
	}
}

func TestPlanBand_LowBandNeverCollapses(t *testing.T) {
	r := DefaultRanges()[0]
	for _, rate := range []float64{10, 202.2, 402.6, 1000, 48000} {
		p := planBand(0, r, true, rate)
		if p.Action != ActionFilter {
			t.Fatalf("rate %v: action %v, want filter", rate, p.Action)
		}
		if p.Low != minNormalized {
			t.Fatalf("rate %v: low %v, want floor %v", rate, p.Low, minNormalized)
		}
	}
}

func TestPlanBand_LowEdgeAtOrAboveNyquist(t *testing.T) {
	r := Range{Low: 2000, High: 4000}
	for _, rate := range []float64{1000, 4000} {
		if p := planBand(1, r, true, rate); p.Action != ActionSilence {
			t.Fatalf("rate %v: action %v, want silence", rate, p.Action)
		}
	}
}

func TestPlanBand_HighEdgeClampedBelowNyquist(t *testing.T) {
	// 201-300 Hz at 500 Hz: the upper edge is held at 0.99 * 250 Hz.
	p := planBand(2, DefaultRanges()[2], true, 500)
	if p.Action != ActionFilter {
		t.Fatalf("action %v, want filter", p.Action)
	}
	if math.Abs(p.High-0.99) > 1e-12 {
		t.Fatalf("high = %v, want 0.99", p.High)
	}
	if math.Abs(p.Low-201.0/250) > 1e-12 {
		t.Fatalf("low = %v, want %v", p.Low, 201.0/250)
	}
}

func TestPlanBand_NarrowCollapseStillFilters(t *testing.T) {
	// At 404 Hz band 2 starts at 0.995 of Nyquist: the edges cross after
	// the 0.99 clamp but the widened band is still representable.
	p := planBand(2, DefaultRanges()[2], true, 404)
	if p.Action != ActionFilter {
		t.Fatalf("action %v, want filter", p.Action)
	}
	if math.Abs(p.High-p.Low-collapseWidth) > 1e-12 {
		t.Fatalf("width = %v, want %v", p.High-p.Low, collapseWidth)
	}
}

func TestPlanBand_NormalizedEdgesStayInRange(t *testing.T) {
	ranges := DefaultRanges()
	for _, rate := range []float64{10, 250, 404, 1000, 2000, 48000, 192000} {
		for _, idx := range AllBands() {
			p := planBand(idx, ranges[idx], true, rate)
			if p.Action != ActionFilter {
				continue
			}
			if p.Low < minNormalized || p.High > maxNormalized || p.High <= p.Low {
				t.Fatalf("band %d at %v Hz: edges [%v, %v] outside [%v, %v]",
					idx, rate, p.Low, p.High, minNormalized, maxNormalized)
			}
		}
	}
}

func TestPlanBand_LowEdgeClampedBelowCeiling(t *testing.T) {
	// 499.8 Hz is 0.9996 of Nyquist at 1 kHz: held at the ceiling, the
	// widened band no longer fits.
	r := Range{Low: 499.8, High: 600}
	if p := planBand(1, r, true, 1000); p.Action != ActionSilence {
		t.Fatalf("band 1: action %v, want silence", p.Action)
	}
	if p := planBand(PassThroughBand, r, true, 1000); p.Action != ActionPassThrough {
		t.Fatalf("band 2: action %v, want pass-through", p.Action)
	}
}

func TestPlanBand_DisabledInvalidAndBadRates(t *testing.T) {
	r := DefaultRanges()[1]
	cases := []struct {
		name    string
		idx     BandIndex
		enabled bool
		rate    float64
	}{
		{name: "disabled", idx: 1, enabled: false, rate: 1000},
		{name: "negative index", idx: -1, enabled: true, rate: 1000},
		{name: "index past end", idx: NumBands, enabled: true, rate: 1000},
		{name: "zero rate", idx: 1, enabled: true, rate: 0},
		{name: "negative rate", idx: 1, enabled: true, rate: -8000},
		{name: "nan rate", idx: 1, enabled: true, rate: math.NaN()},
		{name: "inf rate", idx: 1, enabled: true, rate: math.Inf(1)},
	}
	for _, tc := range cases {
		if p := planBand(tc.idx, r, tc.enabled, tc.rate); p.Action != ActionSilence {
			t.Fatalf("%s: action %v, want silence", tc.name, p.Action)
		}
	}
}

func TestActionString(t *testing.T) {
	for a, want := range map[Action]string{
		ActionSilence:     "silence",
		ActionPassThrough: "pass-through",
		ActionFilter:      "filter",
		Action(42):        "unknown",
	} {
		if got := a.String(); got != want {
			t.Fatalf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
