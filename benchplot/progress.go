// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"image/color"

	"github.com/benchviz/benchviz/benchstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	runColor     = color.RGBA{255, 165, 0, 255} // orange
	averageColor = color.RGBA{0, 0, 255, 255}   // blue
)

// Progression returns a chart of each run's time in run order, with
// a moving average over width runs. If width is not positive, it
// defaults to a fifth of the runs (at least 1).
func Progression(label string, times []float64, width int) (*plot.Plot, error) {
	n := len(times)
	if n == 0 {
		return nil, ErrNoData
	}
	if width <= 0 {
		width = max(1, n/5)
	}
	avg, err := benchstat.MovingAverage(times, width)
	if err != nil {
		return nil, err
	}

	runs := make(plotter.XYs, n)
	avgs := make(plotter.XYs, n)
	for i := range times {
		runs[i] = plotter.XY{X: float64(i), Y: times[i]}
		avgs[i] = plotter.XY{X: float64(i), Y: avg[i]}
	}

	p := newTimePlot()
	p.X.Label.Text = "Run"
	p.Legend.Top = true

	sc, err := plotter.NewScatter(runs)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  runColor,
		Radius: vg.Points(1.5),
		Shape:  draw.CircleGlyph{},
	}
	line, err := plotter.NewLine(avgs)
	if err != nil {
		return nil, err
	}
	line.Color = averageColor

	p.Add(sc, line)
	p.Legend.Add(label, sc)

	p.X.Min, p.X.Max = -1, float64(n)
	p.Y.Min = 0
	return p, nil
}
