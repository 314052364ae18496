// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bars returns a grouped bar chart of mean times. There is one group
// of bars per entry in groups and one bar per command within each
// group; means[i][j] is the height of command i's bar in group j.
func Bars(groups, commands []string, means [][]float64) (*plot.Plot, error) {
	if len(groups) == 0 || len(commands) == 0 {
		return nil, ErrNoData
	}
	if len(means) != len(commands) {
		return nil, fmt.Errorf("have means for %d commands, want %d", len(means), len(commands))
	}

	p := newTimePlot()
	p.X.Label.Text = "Benchmark"
	p.Legend.Top = true
	p.Legend.Add("Command")

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	// Keep each group of bars within 80% of the space between
	// group centers.
	const groupSpan = 0.8 * 60
	barWidth := vg.Points(groupSpan / float64(len(commands)))
	groupWidth := barWidth * vg.Length(len(commands)-1)

	cols := colors(len(commands))
	for i, cmd := range commands {
		if len(means[i]) != len(groups) {
			return nil, fmt.Errorf("command %q has %d means, want %d", cmd, len(means[i]), len(groups))
		}
		bc, err := plotter.NewBarChart(plotter.Values(means[i]), barWidth)
		if err != nil {
			return nil, err
		}
		bc.Offset = barWidth*vg.Length(i) - groupWidth/2
		bc.Color = cols[i]
		bc.LineStyle.Color = color.Gray{64}
		bc.LineStyle.Width = vg.Points(0.5)
		p.Add(bc)
		p.Legend.Add(cmd, bc)
	}

	p.NominalX(groups...)
	p.Y.Min = 0
	return p, nil
}
