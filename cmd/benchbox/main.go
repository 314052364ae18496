// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchbox draws a box plot of the run times of every command
// in a benchmark file.
//
// Usage:
//
//	benchbox [--title title] [-o file] file
//
// Without -o, benchbox writes the chart to stdout as SVG.
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
)

func main() {
	log.SetPrefix("benchbox: ")
	log.SetFlags(0)

	pflag.StringVar(&title, "title", "", "chart `title`")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nDraw a box plot of each command's run times.\n\n", os.Args[0])
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
	p, err := benchplot.Boxes(commands, times)
	if err != nil {
		log.Fatal(err)
	}
	if err := benchplot.Output(p, benchplot.Options{Title: title}, output); err != nil {
		log.Fatal(err)
	}
}
