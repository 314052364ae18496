// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Hist counts values in equal-width bins spanning [Lo, Hi].
type Hist struct {
	Lo, Hi float64
	Counts []float64
}

// NewHist bins the values of xs that fall in [lo, hi] into nbins
// equal-width bins. The last bin is closed, so a value equal to hi is
// counted. Values outside the range are dropped.
//
// If lo == hi, the range is widened to [lo-0.5, hi+0.5].
func NewHist(xs []float64, lo, hi float64, nbins int) (*Hist, error) {
	if nbins < 1 {
		return nil, fmt.Errorf("histogram needs at least one bin, got %d: %w", nbins, ErrInvalidInput)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, fmt.Errorf("bad histogram range [%v, %v]: %w", lo, hi, ErrInvalidInput)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	lh := stats.NewLinearHist(lo, hi, nbins)
	for _, x := range xs {
		if lo <= x && x <= hi {
			lh.Add(x)
		}
	}
	// LinearHist bins are half-open, so anything it counted as
	// overflow is exactly hi (or rounded up to it) and belongs in
	// the last bin.
	_, counts, high := lh.Counts()

	h := &Hist{Lo: lo, Hi: hi, Counts: make([]float64, nbins)}
	for i, c := range counts {
		h.Counts[i] = float64(c)
	}
	h.Counts[nbins-1] += float64(high)
	return h, nil
}

// Bin returns the bounds of bin i.
func (h *Hist) Bin(i int) (lo, hi float64) {
	w := (h.Hi - h.Lo) / float64(len(h.Counts))
	lo = h.Lo + float64(i)*w
	hi = lo + w
	if i == len(h.Counts)-1 {
		hi = h.Hi
	}
	return
}

// AutoBins returns a bin count for histogramming xs over [lo, hi]. It
// picks the narrower of the Sturges and Freedman–Diaconis bin widths,
// falling back to Sturges when the interquartile range is zero. Only
// values within [lo, hi] are considered. It returns 1 if there is
// nothing to bin.
func AutoBins(xs []float64, lo, hi float64) int {
	var in []float64
	for _, x := range xs {
		if x >= lo && x <= hi {
			in = append(in, x)
		}
	}
	if len(in) == 0 || hi <= lo {
		return 1
	}
	min, max := stats.Bounds(in)
	n := float64(len(in))

	width := (max - min) / (math.Log2(n) + 1)
	iqr := Percentile(in, 75) - Percentile(in, 25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 {
		width = math.Min(width, fd)
	}
	if width <= 0 {
		return 1
	}
	return int(math.Ceil((hi - lo) / width))
}
