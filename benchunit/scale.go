// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A TimeScale formats durations given in seconds with a fixed SI
// prefix and precision, such as "12.5ms".
type TimeScale struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Seconds per prefixed unit (e.g., 0.001 for ms)
	Prefix string  // SI prefix of the second
}

// Format formats seconds in s's prefixed unit, including the unit.
func (s TimeScale) Format(seconds float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, seconds/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	buf = append(buf, 's')
	return string(buf)
}

type prefix struct {
	factor float64
	prefix string
	// Smallest values printed as 100, 10.0, and 1.00 at this
	// prefix.
	t100, t10, t1 float64
}

// Commands run for seconds at most minutes, so whole seconds are the
// largest unit.
var timePrefixes = mkTimePrefixes()

func mkTimePrefixes() []prefix {
	// Derive the thresholds from the printed representation so
	// they match exactly how printing rounds.
	var ps []prefix
	exp := 0
	for _, p := range []string{"", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.95e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".9995e%d", exp), 64)
		ps = append(ps, prefix{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return ps
}

// FormatTime formats a duration in seconds with at least three
// significant digits and an SI-prefixed unit, such as "1.50ms".
func FormatTime(seconds float64) string {
	return CommonTimeScale([]float64{seconds}).Format(seconds)
}

// CommonTimeScale returns a TimeScale that shows every duration in
// vals with at least three significant digits. The non-zero duration
// closest to zero decides the scale; zero alone formats as "0.00s".
func CommonTimeScale(vals []float64) TimeScale {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return TimeScale{2, 1, ""}
	}

	for i, p := range timePrefixes {
		switch {
		case min >= p.t100:
			return TimeScale{0, p.factor, p.prefix}
		case min >= p.t10:
			return TimeScale{1, p.factor, p.prefix}
		case min >= p.t1 || i == len(timePrefixes)-1:
			return TimeScale{2, p.factor, p.prefix}
		}
	}
	panic("not reachable")
}
