package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/signal"
)

func parseConfig(freqs, amps, gains, off string) (controls, error) {
	var (
		cfg controls
		err error
	)
	if cfg.freqs, err = parseList(freqs, signal.NumComponents); err != nil {
		return cfg, fmt.Errorf("-freq: %w", err)
	}
	if cfg.amps, err = parseList(amps, signal.NumComponents); err != nil {
		return cfg, fmt.Errorf("-amp: %w", err)
	}
	if cfg.gains, err = parseList(gains, bank.NumBands); err != nil {
		return cfg, fmt.Errorf("-gain: %w", err)
	}
	if cfg.disabled, err = parseBands(off); err != nil {
		return cfg, fmt.Errorf("-off: %w", err)
	}
	return cfg, nil
}

// parseList parses exactly n comma-separated numbers. An empty string
// yields nil.
func parseList(s string, n int) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseBands(s string) ([]bank.BandIndex, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []bank.BandIndex
	for _, p := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		idx, ok := bank.NewBandIndex(i)
		if !ok {
			return nil, fmt.Errorf("band %d out of range [0, %d)", i, bank.NumBands)
		}
		out = append(out, idx)
	}
	return out, nil
}
