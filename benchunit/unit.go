// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit works with benchmark time units.
//
// It provides the closed set of display units used by the report
// commands and functions for printing numbers with SI prefixes.
package benchunit

import (
	"fmt"
	"strings"
)

// Unit is a display unit for time measurements. Benchmark exports
// always record seconds; a Unit rescales them for presentation.
//
// The zero Unit is Second.
type Unit int

const (
	Second Unit = iota
	Millisecond
	Microsecond
)

// Factor returns the multiplier that converts seconds to u.
func (u Unit) Factor() float64 {
	switch u {
	case Second:
		return 1
	case Millisecond:
		return 1e3
	case Microsecond:
		return 1e6
	}
	panic(fmt.Sprintf("bad Unit %d", int(u)))
}

// Suffix returns the abbreviation printed after values in unit u.
func (u Unit) Suffix() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "µs"
	}
	panic(fmt.Sprintf("bad Unit %d", int(u)))
}

func (u Unit) String() string {
	switch u {
	case Second, Millisecond, Microsecond:
		return u.Suffix()
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses a unit name. It accepts the abbreviations printed
// by Suffix (with "us" as an ASCII spelling of "µs") as well as the
// spelled-out singular and plural names.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "ms", "millisecond", "milliseconds":
		return Millisecond, nil
	case "us", "µs", "microsecond", "microseconds":
		return Microsecond, nil
	}
	return Second, fmt.Errorf("unknown time unit %q (want s, ms, or us)", s)
}

// Set implements the flag Value interface so a Unit can be used
// directly as a command-line flag.
func (u *Unit) Set(s string) error {
	unit, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = unit
	return nil
}

// Type returns the flag type name shown in usage messages.
func (u *Unit) Type() string {
	return "unit"
}
