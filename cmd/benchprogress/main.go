// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchprogress plots the run times of the first command in a
// benchmark file in the order they were measured, with a moving
// average. It helps spot warmup effects and drift.
//
// Usage:
//
//	benchprogress [--title title] [-w runs] [-o file] file
//
// The moving average spans a fifth of the runs unless -w says
// otherwise. Without -o, benchprogress writes the chart to stdout as
// SVG.
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
	title  string
	output string
	width  int
)

func main() {
	log.SetPrefix("benchprogress: ")
	log.SetFlags(0)

	pflag.StringVar(&title, "title", "", "chart `title`")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.IntVarP(&width, "moving-average-width", "w", 0, "width of the moving-average window in `runs` (default: a fifth of the runs)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nPlot run times in measurement order with a moving average.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	if pflag.CommandLine.Changed("moving-average-width") && width < 1 {
		log.Fatalf("moving-average width must be at least 1, got %d", width)
	}

	results, err := benchfmt.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if len(results) == 0 {
		log.Fatal(benchproc.ErrNoResults)
	}
	res := results[0]
	p, err := benchplot.Progression(res.Command, res.Times, width)
	if err != nil {
		log.Fatal(err)
	}
	if err := benchplot.Output(p, benchplot.Options{Title: title}, output); err != nil {
		log.Fatal(err)
	}
}
