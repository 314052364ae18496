// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchwhisker draws a colored box-and-whisker plot of the run
// times of every command in a benchmark file, with a legend naming
// each box.
//
// Usage:
//
//	benchwhisker [--title title] [--labels a,b,...] [-o file] file
//
// The legend uses the commands unless --labels gives other names.
// Without -o, benchwhisker writes the chart to stdout as SVG.
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
	labels []string
	output string
)

func main() {
	log.SetPrefix("benchwhisker: ")
	log.SetFlags(0)

	pflag.StringVar(&title, "title", "", "chart `title`")
	pflag.StringSliceVar(&labels, "labels", nil, "comma-separated legend `entries`")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nDraw a box-and-whisker plot of each command's run times.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	results, err := benchfmt.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	commands, times := benchproc.Series(results)
	if len(labels) == 0 {
		labels = commands
	}
	p, err := benchplot.Whiskers(labels, times)
	if err != nil {
		log.Fatal(err)
	}
	if err := benchplot.Output(p, benchplot.Options{Title: title}, output); err != nil {
		log.Fatal(err)
	}
}
