// Command eqinfo runs one equalizer cycle and prints what each band did.
//
// Usage:
//
//	eqinfo [flags]
//
// Examples:
//
//	eqinfo
//	eqinfo -freq 50,250,450 -amp 1,1,1 -off 2
//	eqinfo -rate 402.6 -v
//	eqinfo -gain 1,0,2,1,0.5 -welch 256
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/meter"
	"github.com/cwbudde/algo-eq/dsp/signal"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

func main() {
	rate := flag.Float64("rate", core.DefaultSampleRate, "sample rate in Hz")
	duration := flag.Float64("duration", eq.DefaultDuration, "rendered length in seconds")
	order := flag.Int("order", 4, "Butterworth prototype order per band")
	freqs := flag.String("freq", "", "comma-separated component frequencies in Hz (3 values)")
	amps := flag.String("amp", "", "comma-separated component amplitudes (3 values)")
	gains := flag.String("gain", "", "comma-separated band gains (5 values)")
	off := flag.String("off", "", "comma-separated band indices to disable")
	maxHz := flag.Float64("maxhz", spectrum.DefaultMaxFrequency, "upper limit for the output spectrum peak")
	welch := flag.Int("welch", 0, "print a Welch PSD summary with this segment size (power of two)")
	verbose := flag.Bool("v", false, "log configuration and band plans to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs one equalizer cycle over the three-tone test signal and\n")
		fmt.Fprintf(os.Stderr, "prints band levels and per-tone gains.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -freq 50,250,450 -amp 1,1,1 -off 2\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -rate 402.6 -v\n")
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("eqinfo: ")
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := parseConfig(*freqs, *amps, *gains, *off)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	e := eq.New(
		eq.WithSampleRate(*rate),
		eq.WithDuration(*duration),
		eq.WithBankOptions(bank.WithOrder(*order)),
	)
	cfg.apply(e)
	log.Printf("rate=%g Hz duration=%g s order=%d", e.SampleRate(), e.Duration(), *order)

	f, err := e.Update()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for i, a := range f.BandActions {
		r := f.BandRanges[i]
		log.Printf("band %d %g-%g Hz: %v", i, r.Low, r.High, a)
	}

	if err := printReport(os.Stdout, f, *maxHz, *welch); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printReport(w io.Writer, f eq.Frame, maxHz float64, welchSize int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	levels := f.Levels()
	fmt.Fprintf(tw, "Band\tRange [Hz]\tAction\tEnabled\tGain\tRMS\tPeak [dBFS]\n")
	fmt.Fprintf(tw, "----\t----------\t------\t-------\t----\t---\t-----------\n")
	for i := range f.Bands {
		r := f.BandRanges[i]
		fmt.Fprintf(tw, "%d\t%g-%g\t%v\t%t\t%.3f\t%.4f\t%.2f\n",
			i, r.Low, r.High, f.BandActions[i], f.Enabled[i], f.Gains[i],
			levels.RMS[i], core.LinearToDB(levels.Peak[i]))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Tone\tFreq [Hz]\tIn\tOut\tChange [dB]\n")
	fmt.Fprintf(tw, "----\t---------\t--\t---\t-----------\n")
	for i := range f.Sources {
		l, err := f.ComponentToneLevel(signal.ComponentIndex(i))
		if err != nil {
			// Components above Nyquist alias; there is no tone to measure.
			log.Printf("tone %d: %v", i, err)
			fmt.Fprintf(tw, "%d\t%.2f\tn/a\tn/a\tn/a\n", i, l.Frequency)
			continue
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.4f\t%.4f\t%.2f\n", i, l.Frequency, l.Input, l.Output, l.GainDB())
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Samples\t%d @ %g Hz\n", f.Output.Len(), f.SampleRate)
	fmt.Fprintf(tw, "Band energy / input\t%.4f\n", meter.EnergyBalance(f.Input, f.Bands))
	fmt.Fprintf(tw, "Output RMS\t%.4f\n", meter.RMS(f.Output.Samples))
	out := f.OutputSpectrum(maxHz)
	if pf, pm, ok := spectrum.Peak(out.Freqs, out.Mags); ok {
		fmt.Fprintf(tw, "Output peak\t%.2f Hz at %.4f\n", pf, pm)
	}

	if welchSize > 0 {
		freqs, psd, err := spectrum.Welch(f.Output, welchSize)
		if err != nil {
			return fmt.Errorf("welch: %w", err)
		}
		best := 0
		for i := range psd {
			if psd[i] > psd[best] {
				best = i
			}
		}
		fmt.Fprintf(tw, "Welch peak\t%.2f Hz at %.2f dB/Hz\n", freqs[best], core.LinearPowerToDB(psd[best]))
	}

	return tw.Flush()
}

// controls is the control state given on the command line.
type controls struct {
	freqs    []float64
	amps     []float64
	gains    []float64
	disabled []bank.BandIndex
}

func (c controls) apply(e *eq.Equalizer) {
	for i, v := range c.freqs {
		e.SetComponent(signal.ComponentIndex(i), signal.WithFrequency(v))
	}
	for i, v := range c.amps {
		e.SetComponent(signal.ComponentIndex(i), signal.WithAmplitude(v))
	}
	for i, v := range c.gains {
		e.SetGain(bank.BandIndex(i), v)
	}
	for _, idx := range c.disabled {
		e.SetBandEnabled(idx, false)
	}
}
