// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A Series is one curve of an error bar chart: mean time against a
// parameter value, with a standard deviation at each point.
type Series struct {
	X, Mean, StdDev []float64
}

// ErrorBarOptions configures ErrorBars.
type ErrorBarOptions struct {
	// XLabel labels the parameter axis.
	XLabel string

	// LogX and LogTime select logarithmic parameter and time
	// axes.
	LogX, LogTime bool

	// Titles, if non-empty, labels the series in a legend.
	Titles []string
}

// errPoints adapts a Series for plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// ErrorBars returns a chart of each series' mean time against its
// parameter, with error bars one standard deviation high.
//
// On a logarithmic time axis, an error bar that would reach zero or
// below is drawn only above its point.
func ErrorBars(series []Series, opts ErrorBarOptions) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := newTimePlot()
	p.X.Label.Text = opts.XLabel
	p.Legend.Top = true
	p.Legend.Left = true
	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.LogTime {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = timeTicker{log: true}
	}

	cols := colors(len(series))
	for i, s := range series {
		n := len(s.X)
		if n == 0 {
			return nil, ErrNoData
		}
		if len(s.Mean) != n || len(s.StdDev) != n {
			return nil, fmt.Errorf("series %d: have %d x values, %d means, and %d standard deviations", i+1, n, len(s.Mean), len(s.StdDev))
		}

		pts := errPoints{
			XYs:     make(plotter.XYs, n),
			YErrors: make(plotter.YErrors, n),
		}
		for j := range s.X {
			x, y, sd := s.X[j], s.Mean[j], s.StdDev[j]
			if opts.LogX && x <= 0 {
				return nil, fmt.Errorf("logarithmic parameter axis needs positive values, got %v", x)
			}
			if opts.LogTime && y <= 0 {
				return nil, fmt.Errorf("logarithmic time axis needs positive times, got %v", y)
			}
			low := sd
			if opts.LogTime && y-low <= 0 {
				low = 0
			}
			pts.XYs[j] = plotter.XY{X: x, Y: y}
			pts.YErrors[j].Low, pts.YErrors[j].High = low, sd
		}

		line, err := plotter.NewLine(pts.XYs)
		if err != nil {
			return nil, err
		}
		line.Color = cols[i]
		line.Width = vg.Points(1.5)

		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, err
		}
		bars.Color = cols[i]
		bars.CapWidth = vg.Points(4)

		p.Add(line, bars)
		if i < len(opts.Titles) {
			p.Legend.Add(opts.Titles[i], line)
		}
	}

	if !opts.LogTime {
		p.Y.Min = 0
	}
	return p, nil
}
