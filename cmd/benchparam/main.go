// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchparam plots parametrized benchmark results: the mean
// time of each result against its parameter value, with error bars one
// standard deviation high. Each input file becomes one curve.
//
// Usage:
//
//	benchparam [flags] file...
//
// Every result must have exactly one parameter, and every file must
// use the same parameter name, which labels the X axis. A legend is
// drawn only when --titles names the curves.
//
// Without -o, benchparam writes the chart to stdout as SVG.
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
	parameterName string
	logX          bool
	logTime       bool
	titles        []string
	output        string
)

func main() {
	log.SetPrefix("benchparam: ")
	log.SetFlags(0)

	pflag.StringVar(&parameterName, "parameter-name", "", "deprecated; parameter names are inferred from benchmark results")
	pflag.BoolVar(&logX, "log-x", false, "use a logarithmic x (parameter) axis")
	pflag.BoolVar(&logTime, "log-time", false, "use a logarithmic time axis")
	pflag.StringSliceVar(&titles, "titles", nil, "comma-separated `titles` for the legend, one per file")
	pflag.StringVarP(&output, "output", "o", "", "save the chart to `file`; the format follows the extension")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\nPlot parametrized benchmark results with error bars.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	if pflag.CommandLine.Changed("parameter-name") {
		log.Print("warning: --parameter-name is deprecated; names are inferred from benchmark results")
	}

	name, series, err := readSeries(pflag.Args())
	if err != nil {
		log.Fatal(err)
	}
	p, err := benchplot.ErrorBars(series, benchplot.ErrorBarOptions{
		XLabel:  name,
		LogX:    logX,
		LogTime: logTime,
		Titles:  titles,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := benchplot.Output(p, benchplot.Options{}, output); err != nil {
		log.Fatal(err)
	}
}

// readSeries reads one error bar series from each file and returns
// them with the parameter name they share.
func readSeries(paths []string) (string, []benchplot.Series, error) {
	var name string
	var series []benchplot.Series
	for _, path := range paths {
		results, err := benchfmt.ReadFile(path)
		if err != nil {
			return "", nil, err
		}
		n, xs, err := benchproc.ParameterAxis(results)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", path, err)
		}
		if name != "" && n != name {
			return "", nil, fmt.Errorf("files must all have the same parameter name, but found %q vs. %q", name, n)
		}
		name = n

		s := benchplot.Series{
			X:      xs,
			Mean:   make([]float64, len(results)),
			StdDev: make([]float64, len(results)),
		}
		for i, res := range results {
			s.Mean[i] = res.Mean
			if res.StdDev != nil {
				s.StdDev[i] = *res.StdDev
			}
		}
		series = append(series, s)
	}
	return name, series, nil
}
