// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat computes descriptive statistics and significance
// tests over benchmark timing samples.
package benchstat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/benchviz/benchviz/benchunit"
)

var (
	// ErrInvalidInput is returned for missing or empty samples.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientSamples is returned when a statistic needs a
	// variance estimate but a sample has fewer than two values.
	ErrInsufficientSamples = errors.New("insufficient samples")
)

// Summary describes the distribution of one benchmark's run times.
// All time-valued fields are in the Unit the Summary was computed in.
type Summary struct {
	Unit benchunit.Unit

	Runs int

	Mean, StdDev float64
	Median       float64
	Min, Max     float64

	P05, P25, P75, P95 float64

	// IQR is the interquartile range, P75 - P25.
	IQR float64
}

// Summarize computes summary statistics of times, given in seconds,
// expressed in unit.
//
// It returns an error wrapping ErrInvalidInput if times is empty and
// ErrInsufficientSamples if it has only one value, since the standard
// deviation is undefined.
func Summarize(times []float64, unit benchunit.Unit) (Summary, error) {
	if len(times) == 0 {
		return Summary{}, fmt.Errorf("summarize: no samples: %w", ErrInvalidInput)
	}
	if len(times) < 2 {
		return Summary{}, fmt.Errorf("summarize: standard deviation needs at least 2 samples, have %d: %w", len(times), ErrInsufficientSamples)
	}

	// Scale first so every statistic is computed in the target
	// unit. This also gives us a private copy to sort.
	factor := unit.Factor()
	xs := make([]float64, len(times))
	for i, t := range times {
		xs[i] = t * factor
	}
	sort.Float64s(xs)
	samp := stats.Sample{Xs: xs, Sorted: true}

	s := Summary{
		Unit:   unit,
		Runs:   len(times),
		Mean:   samp.Mean(),
		StdDev: samp.StdDev(),
		Median: percentile(xs, 50),
		P05:    percentile(xs, 5),
		P25:    percentile(xs, 25),
		P75:    percentile(xs, 75),
		P95:    percentile(xs, 95),
	}
	s.Min, s.Max = samp.Bounds()
	s.IQR = s.P75 - s.P25
	return s, nil
}

// Percentile returns the q'th percentile (0 <= q <= 100) of xs using
// linear interpolation between closest ranks. xs need not be sorted.
// It returns NaN if xs is empty.
func Percentile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return percentile(sorted, q)
}

// percentile is Percentile for a non-empty sorted slice. This is
// Hyndman and Fan's R7 estimator, not the R8 estimator implemented by
// stats.Sample.Quantile.
func percentile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	} else if q >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := q / 100 * float64(len(sorted)-1)
	lo := math.Floor(rank)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := rank - lo
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}
