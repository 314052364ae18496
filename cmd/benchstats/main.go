// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchstats prints summary statistics for every command in a
// benchmark export: the number of runs, mean, standard deviation,
// median, extremes, and the 5th, 25th, 75th, and 95th percentiles.
//
// Usage:
//
//	benchstats [--unit s|ms|us] file
//
// Commands with fewer than two runs have no standard deviation; they
// are reported on stderr and benchstats exits with status 1.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchstat"
	"github.com/benchviz/benchviz/benchunit"
	"github.com/spf13/pflag"
)

func main() {
	log.SetPrefix("benchstats: ")
	log.SetFlags(0)

	unit := benchunit.Second
	pflag.VarP(&unit, "unit", "u", "display times in `unit` (s, ms, or us)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nPrint summary statistics for each benchmarked command.\n\n", os.Args[0])
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

	status := 0
	for _, res := range results {
		s, err := benchstat.Summarize(res.Times, unit)
		if err != nil {
			log.Printf("command %q: %v", res.Command, err)
			status = 1
			continue
		}
		printSummary(os.Stdout, res.Command, s)
	}
	os.Exit(status)
}

func printSummary(w io.Writer, command string, s benchstat.Summary) {
	u := s.Unit.Suffix()
	fmt.Fprintf(w, "Command '%s'\n", command)
	fmt.Fprintf(w, "  runs:   %8d\n", s.Runs)
	fmt.Fprintf(w, "  mean:   %8.3f %s\n", s.Mean, u)
	fmt.Fprintf(w, "  stddev: %8.3f %s\n", s.StdDev, u)
	fmt.Fprintf(w, "  median: %8.3f %s\n", s.Median, u)
	fmt.Fprintf(w, "  min:    %8.3f %s\n", s.Min, u)
	fmt.Fprintf(w, "  max:    %8.3f %s\n", s.Max, u)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  percentiles:\n")
	fmt.Fprintf(w, "     P_05 .. P_95:    %.3f %s .. %.3f %s\n", s.P05, u, s.P95, u)
	fmt.Fprintf(w, "     P_25 .. P_75:    %.3f %s .. %.3f %s  (IQR = %.3f %s)\n", s.P25, u, s.P75, u, s.IQR, u)
	fmt.Fprintf(w, "\n")
}
