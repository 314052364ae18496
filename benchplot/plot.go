// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders benchmark timings as charts.
//
// Each builder returns a *plot.Plot that can be adjusted further
// before it is written out with Save or WriteTo. Time axes are in
// seconds and labeled with SI prefixes.
package benchplot

import (
	"errors"
	"image/color"
	"io"
	"os"
	"sort"

	"github.com/aclements/go-moremath/scale"
	"github.com/benchviz/benchviz/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned by chart builders given nothing to plot.
var ErrNoData = errors.New("no benchmark data to plot")

// Default image size, used when Options leaves it unset.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Options controls how a chart is rendered.
type Options struct {
	// Title, if non-empty, replaces the chart title.
	Title string

	// Width and Height are the image size. Zero values select
	// DefaultWidth and DefaultHeight.
	Width, Height vg.Length
}

func (o Options) size() (w, h vg.Length) {
	w, h = o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return
}

func (o Options) apply(p *plot.Plot) {
	if o.Title != "" {
		p.Title.Text = o.Title
	}
}

// Save renders p to the named file. The image format is taken from
// the file extension; see plot.Plot.Save for the supported formats.
func Save(p *plot.Plot, opts Options, path string) error {
	opts.apply(p)
	w, h := opts.size()
	return p.Save(w, h, path)
}

// WriteTo renders p to w in the given format, such as "svg" or
// "png".
func WriteTo(w io.Writer, p *plot.Plot, opts Options, format string) error {
	opts.apply(p)
	width, height := opts.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Output renders p to path as Save does, or writes it as SVG to
// standard output if path is "" or "-".
func Output(p *plot.Plot, opts Options, path string) error {
	if path == "" || path == "-" {
		return WriteTo(os.Stdout, p, opts, "svg")
	}
	return Save(p, opts, path)
}

// newTimePlot returns a plot whose Y axis measures time.
func newTimePlot() *plot.Plot {
	p := plot.New()
	p.Y.Label.Text = "Time [s]"
	p.Y.Tick.Marker = timeTicker{}
	return p
}

// timeTicker places ticks on a time axis using go-moremath's "nice"
// tick levels and labels them with SI prefixes, like "250ms".
type timeTicker struct {
	log bool
}

const maxTimeTicks = 6

func (t timeTicker) Ticks(min, max float64) []plot.Tick {
	var major, minor []float64
	if t.log {
		if s, err := scale.NewLog(min, max, 10); err == nil {
			major, minor = s.Ticks(scale.TickOptions{Max: maxTimeTicks})
		}
	}
	if len(major) < 2 {
		// A linear or less-than-a-decade range.
		major, minor = scale.Linear{Min: min, Max: max}.Ticks(scale.TickOptions{Max: maxTimeTicks})
	}

	ts := benchunit.CommonTimeScale(major)
	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	for _, v := range major {
		ticks = append(ticks, plot.Tick{Value: v, Label: ts.Format(v)})
	}
	for _, v := range minor {
		i := sort.SearchFloat64s(major, v)
		if i < len(major) && major[i] == v {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

// colors returns n colors from a qualitative Color Brewer palette,
// repeating it if n is larger than the palette.
func colors(n int) []color.Color {
	const name, size = "Set1", 9
	pal, err := brewer.GetPalette(brewer.TypeQualitative, name, size)
	if err != nil {
		panic(err)
	}
	cs := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out
}

// swatch is a legend thumbnail showing a filled box.
type swatch struct {
	fill color.Color
	line draw.LineStyle
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	if s.fill != nil {
		c.FillPolygon(s.fill, pts)
	}
	if s.line.Width > 0 {
		pts = append(pts, pts[0])
		c.StrokeLines(s.line, pts)
	}
}

// labelsFor returns defaults with its leading entries replaced by
// labels. Extra labels are ignored.
func labelsFor(labels, defaults []string) []string {
	if len(labels) == 0 {
		return defaults
	}
	out := append([]string(nil), defaults...)
	copy(out, labels)
	return out
}
