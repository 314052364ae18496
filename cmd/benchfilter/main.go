// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchfilter reads benchmark results from JSON exports,
// filters them, and writes the matching results to stdout as a single
// export. If no inputs are provided, it reads from stdin.
//
// It supports the following query syntax:
//
//	key:regexp    - Test if key matches regexp. Key and value can be quoted.
//	key:(x y ...) - Test if key matches any of x, y, etc.
//	x y ...       - Test if x, y, etc. are all true
//	x AND y       - Same as x y
//	x OR y        - Test if x or y are true
//	-x            - Negate x
//	(...)         - Subexpression
//	*             - Match everything
//
// Keys may be one of the following:
//
//	.command      - The benchmarked command line
//	.file         - The name of the input file
//	/name         - The value of parameter "name"
//
// Regexp matching is anchored at the beginning and end, so a literal
// string without any regexp operators must match exactly.
//
// For example, the query
//
//	.command:"rg .*" /threads:(1 4)
//
// matches the ripgrep runs benchmarked with 1 or 4 threads.
//
// Each result is written exactly as it appeared in its input.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchproc"
	"github.com/spf13/pflag"
)

func main() {
	log.SetPrefix("benchfilter: ")
	log.SetFlags(0)

	pflag.Usage = func() {
		// Note: Keep this in sync with the package doc.
		fmt.Fprintf(os.Stderr, `Usage: %s query [inputs...]

benchfilter reads benchmark results from JSON exports, filters them,
and writes the matching results to stdout as a single export. If no
inputs are provided, it reads from stdin.

It supports the following query syntax:

	key:regexp    - Test if key matches regexp. Key and value can be quoted.
	key:(x y ...) - Test if key matches any of x, y, etc.
	x y ...       - Test if x, y, etc. are all true
	x AND y       - Same as x y
	x OR y        - Test if x or y are true
	-x            - Negate x
	(...)         - Subexpression
	*             - Match everything

Keys may be one of the following:

	.command      - The benchmarked command line
	.file         - The name of the input file
	/name         - The value of parameter "name"

Regexp matching is anchored at the beginning and end, so a literal
string without any regexp operators must match exactly.

For example, the query

	.command:"rg .*" /threads:(1 4)

matches the ripgrep runs benchmarked with 1 or 4 threads.
`, os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(2)
	}

	filter, err := benchproc.NewFilter(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	writer := benchfmt.NewWriter(os.Stdout)
	files := benchfmt.Files{Paths: pflag.Args()[1:], AllowStdin: true}
	for files.Scan() {
		res, err := files.Result()
		if err != nil {
			// Non-fatal result parse error. Warn
			// but keep going.
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if !filter.Match(res) {
			continue
		}
		if err := writer.Write(res); err != nil {
			log.Fatal("writing output: ", err)
		}
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal("writing output: ", err)
	}
}
