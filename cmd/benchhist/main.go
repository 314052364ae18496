// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchhist draws histograms of the run times of every
// command in a benchmark file on one chart.
//
// Usage:
//
//	benchhist [flags] file
//
// All histograms share the same bins. By default the bins span every
// run time and their number is chosen from the data; --t-min, --t-max,
// and --bins override that. --type selects how overlapping histograms
// are drawn: bar (the default), barstacked, step, or stepfilled.
//
// Without -o, benchhist writes the chart to stdout as SVG.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchplot"
	"github.com/benchviz/benchviz/benchproc"
	"github.com/spf13/pflag"
)

var (
	title    string
	labels   []string
	output   string
	bins     int
	histType = benchplot.HistBar
	tMin     float64
	tMax     float64
	logCount bool
)

func main() {
	log.SetPrefix("benchhist: ")
	log.SetFlags(0)

	pflag.StringVar(&title, "title", "", "chart `title`")
	pflag.StringSliceVar(&labels, "labels", nil, "comma-separated legend `entries`")
	pflag.IntVar(&bins, "bins", 0, "`number` of bins (default: chosen from the data)")
	pflag.Var(&histType, "type", "histogram `type`: bar, barstacked, step, or stepfilled")
	pflag.Float64Var(&tMin, "t-min", 0, "minimum time to display, in `seconds`")
	pflag.Float64Var(&tMax, "t-max", 0, "maximum time to display, in `seconds`")
	pflag.BoolVar(&logCount, "log-count", false, "use a logarithmic count axis")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nDraw histograms of each command's run times.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	if bins < 0 {
		log.Fatalf("--bins must not be negative, got %d", bins)
	}

	opts := benchplot.HistOptions{Bins: bins, Type: histType, LogCount: logCount}
	if pflag.CommandLine.Changed("t-min") {
		opts.Min = &tMin
	}
	if pflag.CommandLine.Changed("t-max") {
		opts.Max = &tMax
	}

	results, err := benchfmt.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	commands, times := benchproc.Series(results)
	if len(labels) == 0 {
		labels = commands
	}
	p, err := benchplot.Hist(labels, times, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := benchplot.Output(p, benchplot.Options{Title: title}, output); err != nil {
		log.Fatal(err)
	}
}
