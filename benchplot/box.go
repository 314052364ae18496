// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const boxWidth = 20 // points

// Boxes returns a box plot with one box per command, labeled along
// the X axis.
//
// Quartiles are computed by gonum's box plotter, whose quartile
// method differs slightly from benchstat.Percentile.
func Boxes(labels []string, times [][]float64) (*plot.Plot, error) {
	p, _, err := boxes(times)
	if err != nil {
		return nil, err
	}
	p.NominalX(labelsFor(labels, make([]string, len(times)))...)
	return p, nil
}

// Whiskers returns a box plot with one box per command. Boxes are
// filled with colors from a rainbow palette and identified by a
// legend rather than axis labels.
func Whiskers(labels []string, times [][]float64) (*plot.Plot, error) {
	p, bps, err := boxes(times)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(times))
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	p.NominalX(names...)

	fills := rainbow(len(bps))
	for i, bp := range bps {
		bp.FillColor = fills[i]
	}
	p.Legend.Top = true
	for i, label := range labelsFor(labels, names) {
		p.Legend.Add(label, swatch{fill: fills[i], line: bps[i].BoxStyle})
	}
	return p, nil
}

func boxes(times [][]float64) (*plot.Plot, []*plotter.BoxPlot, error) {
	if len(times) == 0 {
		return nil, nil, ErrNoData
	}
	p := newTimePlot()
	bps := make([]*plotter.BoxPlot, len(times))
	for i, ts := range times {
		if len(ts) == 0 {
			return nil, nil, fmt.Errorf("benchmark %d has no times", i+1)
		}
		bp, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(i), plotter.Values(ts))
		if err != nil {
			return nil, nil, err
		}
		bps[i] = bp
		p.Add(bp)
	}
	p.Y.Min = 0
	return p, bps, nil
}

// rainbow returns n colors running from violet to red.
func rainbow(n int) []color.Color {
	if n == 1 {
		// Rainbow needs at least two colors to interpolate.
		return palette.Rainbow(2, 0.75, palette.Red, 1, 1, 1).Colors()[:1]
	}
	return palette.Rainbow(n, 0.75, palette.Red, 1, 1, 1).Colors()
}
