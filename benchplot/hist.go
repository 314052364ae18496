// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/benchviz/benchviz/benchstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HistType selects how several histograms share one chart.
type HistType string

const (
	// HistBar draws the bars of each series side by side within
	// each bin.
	HistBar HistType = "bar"
	// HistBarStacked stacks the bars of each series.
	HistBarStacked HistType = "barstacked"
	// HistStep draws the outline of each histogram.
	HistStep HistType = "step"
	// HistStepFilled draws each histogram as a translucent filled
	// outline.
	HistStepFilled HistType = "stepfilled"
)

// Set parses a histogram type name. It implements pflag.Value.
func (t *HistType) Set(s string) error {
	switch HistType(s) {
	case HistBar, HistBarStacked, HistStep, HistStepFilled:
		*t = HistType(s)
		return nil
	}
	return fmt.Errorf("unknown histogram type %q (want bar, barstacked, step, or stepfilled)", s)
}

func (t *HistType) String() string { return string(*t) }

// Type implements pflag.Value.
func (t *HistType) Type() string { return "type" }

// HistOptions configures Hist.
type HistOptions struct {
	// Bins is the number of bins. If zero, it is chosen from the
	// data with benchstat.AutoBins.
	Bins int

	// Type is the histogram style. The zero value means HistBar.
	Type HistType

	// Min and Max, if non-nil, limit the time range shown.
	// Otherwise the range spans all times.
	Min, Max *float64

	// LogCount uses a logarithmic count axis.
	LogCount bool
}

// logBase is where bars start on a logarithmic count axis, which
// cannot show zero.
const logBase = 0.5

// Hist returns a chart of the distribution of run times of each
// command. All histograms share the same bins.
func Hist(labels []string, times [][]float64, opts HistOptions) (*plot.Plot, error) {
	if len(times) == 0 {
		return nil, ErrNoData
	}
	kind := opts.Type
	if kind == "" {
		kind = HistBar
	}
	if err := kind.Set(string(kind)); err != nil {
		return nil, err
	}

	var all []float64
	for _, ts := range times {
		all = append(all, ts...)
	}
	if len(all) == 0 {
		return nil, ErrNoData
	}
	lo, hi := stats.Bounds(all)
	if opts.Min != nil {
		lo = *opts.Min
	}
	if opts.Max != nil {
		hi = *opts.Max
	}
	if lo > hi {
		return nil, fmt.Errorf("empty time range [%v, %v]", lo, hi)
	}
	bins := opts.Bins
	if bins == 0 {
		bins = benchstat.AutoBins(all, lo, hi)
	}

	p := plot.New()
	p.X.Label.Text = "Time [s]"
	p.X.Tick.Marker = timeTicker{}
	p.Y.Label.Text = "Count"
	p.Legend.Top = true

	cols := colors(len(times))
	legend := labelsFor(labels, make([]string, len(times)))
	var below *histSeries
	for i, ts := range times {
		h, err := benchstat.NewHist(ts, lo, hi, bins)
		if err != nil {
			return nil, err
		}
		s := &histSeries{
			hist:  h,
			kind:  kind,
			index: i,
			n:     len(times),
			color: cols[i],
		}
		if opts.LogCount {
			s.base = logBase
		}
		if kind == HistBarStacked {
			s.below = below
			below = s
		}
		p.Add(s)
		p.Legend.Add(legend[i], s)
	}

	if opts.LogCount {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Max = math.Max(p.Y.Max, 1)
	} else {
		p.Y.Min = 0
	}
	return p, nil
}

// histSeries plots one histogram of a chart.
type histSeries struct {
	hist  *benchstat.Hist
	kind  HistType
	index int // position among the chart's series
	n     int // number of series in the chart
	color color.Color

	// base is the bottom of each bar.
	base float64

	// below is the series this one is stacked on, or nil.
	below *histSeries
}

// top returns the height of the top of bin i, including any series
// stacked below.
func (s *histSeries) top(i int) float64 {
	y := s.hist.Counts[i]
	if s.below != nil {
		return y + s.below.top(i)
	}
	return s.base + y
}

// bottom returns the height of the bottom of bin i.
func (s *histSeries) bottom(i int) float64 {
	if s.below != nil {
		return s.below.top(i)
	}
	return s.base
}

func (s *histSeries) lineStyle() draw.LineStyle {
	sty := plotter.DefaultLineStyle
	if s.kind == HistStep {
		sty.Color = s.color
		sty.Width = vg.Points(1.5)
	} else {
		sty.Width = vg.Points(0.5)
	}
	return sty
}

func (s *histSeries) fill() color.Color {
	switch s.kind {
	case HistStep:
		return nil
	case HistStepFilled:
		r, g, b, _ := s.color.RGBA()
		return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0x99}
	}
	return s.color
}

// Plot implements plot.Plotter.
func (s *histSeries) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	fill, line := s.fill(), s.lineStyle()

	switch s.kind {
	case HistBar, HistBarStacked:
		for i := range s.hist.Counts {
			x0, x1 := s.hist.Bin(i)
			if s.kind == HistBar {
				w := (x1 - x0) / float64(s.n)
				x0 += w * float64(s.index)
				x1 = x0 + w
			}
			y0, y1 := s.bottom(i), s.top(i)
			if y1 <= y0 {
				continue
			}
			pts := []vg.Point{
				{X: trX(x0), Y: trY(y0)},
				{X: trX(x0), Y: trY(y1)},
				{X: trX(x1), Y: trY(y1)},
				{X: trX(x1), Y: trY(y0)},
			}
			c.FillPolygon(fill, c.ClipPolygonXY(pts))
			pts = append(pts, pts[0])
			c.StrokeLines(line, c.ClipLinesXY(pts)...)
		}

	case HistStep, HistStepFilled:
		var pts []vg.Point
		for i := range s.hist.Counts {
			x0, x1 := s.hist.Bin(i)
			y := math.Max(s.top(i), s.base)
			if i == 0 {
				pts = append(pts, vg.Point{X: trX(x0), Y: trY(s.base)})
			}
			pts = append(pts,
				vg.Point{X: trX(x0), Y: trY(y)},
				vg.Point{X: trX(x1), Y: trY(y)})
		}
		pts = append(pts, vg.Point{X: trX(s.hist.Hi), Y: trY(s.base)})
		if fill != nil {
			c.FillPolygon(fill, c.ClipPolygonXY(pts))
		}
		c.StrokeLines(line, c.ClipLinesXY(pts)...)
	}
}

// DataRange implements plot.DataRanger.
func (s *histSeries) DataRange() (xmin, xmax, ymin, ymax float64) {
	ymin, ymax = s.base, s.base
	for i := range s.hist.Counts {
		ymax = math.Max(ymax, s.top(i))
	}
	return s.hist.Lo, s.hist.Hi, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (s *histSeries) Thumbnail(c *draw.Canvas) {
	swatch{fill: s.fill(), line: s.lineStyle()}.Thumbnail(c)
}
