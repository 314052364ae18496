// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchwelch tests whether two benchmarked commands differ
// using Welch's t-test.
//
// Usage:
//
//	benchwelch [--threshold p] file
//
// The input file must contain exactly two results. benchwelch prints
// the t statistic and two-tailed p value and whether p falls below the
// significance threshold.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchstat"
	"github.com/spf13/pflag"
)

var threshold float64

func main() {
	log.SetPrefix("benchwelch: ")
	log.SetFlags(0)

	pflag.Float64Var(&threshold, "threshold", benchstat.DefaultThreshold, "significance `level` for the p value")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nCompare two benchmarked commands with Welch's t-test.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	if threshold <= 0 || threshold >= 1 {
		log.Fatalf("threshold must be between 0 and 1, got %v", threshold)
	}

	results, err := benchfmt.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if len(results) != 2 {
		fmt.Println("The input file has to contain exactly two benchmarks")
		os.Exit(1)
	}

	a, b := results[0], results[1]
	cmp, err := benchstat.Compare(a.Times, b.Times, benchstat.CompareOptions{Threshold: threshold})
	if err != nil {
		log.Fatal(err)
	}
	printComparison(os.Stdout, a.Command, b.Command, cmp, threshold)
}

func printComparison(w io.Writer, a, b string, cmp benchstat.Comparison, threshold float64) {
	fmt.Fprintf(w, "Command 1: %s\n", a)
	fmt.Fprintf(w, "Command 2: %s\n\n", b)
	fmt.Fprintf(w, "t = %.3g, p = %.3g\n\n", cmp.T, cmp.P)
	if cmp.Significant {
		fmt.Fprintf(w, "There is a difference between the two benchmarks (p < %v).\n", threshold)
	} else {
		fmt.Fprintf(w, "The two benchmarks are almost the same (p >= %v).\n", threshold)
	}
}
