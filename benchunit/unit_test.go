// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestParseUnit(t *testing.T) {
	test := func(s string, want Unit) {
		t.Helper()
		got, err := ParseUnit(s)
		if err != nil {
			t.Errorf("for %q, unexpected error %s", s, err)
		} else if got != want {
			t.Errorf("for %q, want %s, got %s", s, want, got)
		}
	}
	test("s", Second)
	test("seconds", Second)
	test(" ms ", Millisecond)
	test("Millisecond", Millisecond)
	test("us", Microsecond)
	test("µs", Microsecond)

	for _, bad := range []string{"", "ns", "min"} {
		if _, err := ParseUnit(bad); err == nil {
			t.Errorf("for %q, want error", bad)
		}
	}
}

func TestUnitFactor(t *testing.T) {
	test := func(u Unit, factor float64, suffix string) {
		t.Helper()
		if got := u.Factor(); got != factor {
			t.Errorf("%s: want factor %v, got %v", u, factor, got)
		}
		if got := u.Suffix(); got != suffix {
			t.Errorf("%s: want suffix %s, got %s", u, suffix, got)
		}
	}
	test(Second, 1, "s")
	test(Millisecond, 1000, "ms")
	test(Microsecond, 1e6, "µs")

	var zero Unit
	if zero != Second {
		t.Errorf("zero Unit is %s, want s", zero)
	}
	if got := Unit(7).String(); got != "Unit(7)" {
		t.Errorf("got %s, want Unit(7)", got)
	}
}

func TestUnitSet(t *testing.T) {
	u := Second
	if err := u.Set("ms"); err != nil {
		t.Fatal(err)
	}
	if u != Millisecond {
		t.Errorf("after Set(ms), got %s", u)
	}
	if err := u.Set("fortnights"); err == nil {
		t.Errorf("Set(fortnights) succeeded")
	}
	if u != Millisecond {
		t.Errorf("failed Set modified unit to %s", u)
	}
	if u.Type() != "unit" {
		t.Errorf("Type() = %s", u.Type())
	}
}
