// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/benchviz/benchviz/benchstat"
	"github.com/benchviz/benchviz/benchunit"
)

func TestPrintSummary(t *testing.T) {
	s, err := benchstat.Summarize([]float64{1, 2, 3, 4, 5}, benchunit.Second)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	printSummary(&buf, "sleep 3", s)

	want := `Command 'sleep 3'
  runs:          5
  mean:      3.000 s
  stddev:    1.581 s
  median:    3.000 s
  min:       1.000 s
  max:       5.000 s

  percentiles:
     P_05 .. P_95:    1.200 s .. 4.800 s
     P_25 .. P_75:    2.000 s .. 4.000 s  (IQR = 2.000 s)

`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintSummaryUnit(t *testing.T) {
	s, err := benchstat.Summarize([]float64{0.001, 0.002}, benchunit.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	printSummary(&buf, "x", s)
	if !strings.Contains(buf.String(), "  mean:      1.500 ms\n") {
		t.Errorf("missing scaled mean in:\n%s", buf.String())
	}
}
