// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchcompare draws a bar chart of mean run times, grouped by
// benchmark file, with one bar per command.
//
// Usage:
//
//	benchcompare [flags] file...
//
// Every file must benchmark the same commands in the same order. Each
// group is named after its file, without the extension, unless
// --benchmark-names gives one name per file.
//
// Without -o, benchcompare writes the chart to stdout as SVG.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchplot"
	"github.com/benchviz/benchviz/benchproc"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

var (
	title  string
	names  []string
	output string
)

func main() {
	log.SetPrefix("benchcompare: ")
	log.SetFlags(0)

	pflag.StringVar(&title, "title", "", "chart `title`")
	pflag.StringSliceVar(&names, "benchmark-names", nil, "comma-separated `names` of the benchmark groups, one per file")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\nPlot mean times of the same commands across several benchmark files.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	files := pflag.Args()
	if len(names) > 0 && len(names) != len(files) {
		log.Fatalf("number of benchmark names (%d) must match the number of input files (%d)", len(names), len(files))
	}

	var table benchproc.CommandTable
	for i, path := range files {
		results, err := benchfmt.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		group := groupName(path)
		if len(names) > 0 {
			group = names[i]
		}
		if err := table.Add(group, results); err != nil {
			log.Fatal(err)
		}
	}
	roundMeans(table.Means)

	p, err := benchplot.Bars(table.Groups, table.Commands, table.Means)
	if err != nil {
		log.Fatal(err)
	}
	opts := benchplot.Options{Title: title, Width: 10 * vg.Inch, Height: 5 * vg.Inch}
	if err := benchplot.Output(p, opts, output); err != nil {
		log.Fatal(err)
	}
}

// groupName returns the base name of path without its extension.
func groupName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// roundMeans rounds every mean to hundredths of a second.
func roundMeans(means [][]float64) {
	for _, row := range means {
		for j, m := range row {
			row[j] = math.Round(m*100) / 100
		}
	}
}
