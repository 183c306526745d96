package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func ExampleEqualizer_Update() {
	e := eq.New(eq.WithSampleRate(1000), eq.WithDuration(0.5))
	f, err := e.Update()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(f.Time), f.Output.SampleRate, f.BandActions)

	// Drop the rate until band 2 no longer fits below Nyquist.
	e.SetSampleRate(402.6)
	f, err = e.Update()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(f.Time), f.Output.SampleRate, f.BandActions)
	// Output:
	// 500 1000 [filter filter filter filter filter]
	// 201 402.6 [filter filter pass-through silence silence]
}
