// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvql

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	check := func(query string, want string) {
		t.Helper()
		q, err := Parse(query)
		if err != nil {
			t.Errorf("%s: unexpected error %s", query, err)
		} else if got := q.String(); got != want {
			t.Errorf("%s: got %s, want %s", query, got, want)
		}
	}
	checkErr := func(query, error string, pos int) {
		t.Helper()
		_, err := Parse(query)
		if se, _ := err.(*SyntaxError); se == nil || se.Msg != error || se.Off != pos {
			t.Errorf("%s: want error %s at %d; got %v", query, error, pos, err)
		}
	}
	check(`*`, `*`)
	check(`a:b`, `a:b`)
	check(`.command:sleep-1`, `.command:sleep-1`)
	check(`/n:\d+`, `/n:\d+`)
	checkErr(`a`, "expected key:value", 0)
	checkErr(`a:`, "expected key:value", 0)
	checkErr(`a,b`, "expected key:value", 0)
	checkErr(``, "nothing to match", 0)
	checkErr(`()`, "nothing to match", 1)
	checkErr(`AND`, "nothing to match", 0)
	checkErr(`:`, "unexpected \":\"", 0)
	check(`"a":"b c"`, `a:"b c"`)
	check(`a:"x\"y"`, `a:"x\"y"`)
	check(`a:"AND"`, `a:AND`)
	checkErr(`a "b`, "missing end quote", 2)
	checkErr(`a:"b\"`, "missing end quote", 2)
	check(`(a:b)`, `a:b`)
	checkErr(`(a:b`, "missing \")\"", 4)
	checkErr(`(a:b))`, "unexpected \")\"", 5)
	check(`a:b c:d e:f`, `(a:b AND c:d AND e:f)`)
	check(`-a:b`, `-a:b`)
	check(`-*`, `-*`)
	check(`a:b AND c:d`, `(a:b AND c:d)`)
	check(`-a:b AND c:d`, `(-a:b AND c:d)`)
	check(`-(a:b AND c:d)`, `-(a:b AND c:d)`)
	check(`a:b AND * AND c:d`, `(a:b AND * AND c:d)`)
	check(`a:b OR c:d`, `(a:b OR c:d)`)
	check(`a:b AND c:d OR e:f AND g:h`, `((a:b AND c:d) OR (e:f AND g:h))`)
	check(`a:b AND (c:d OR e:f) AND g:h`, `(a:b AND (c:d OR e:f) AND g:h)`)
	check(`a:(b c d)`, `(a:b OR a:c OR a:d)`)
	checkErr(`a:(b AND c)`, "expected value", 5)
	checkErr(`a:()`, "nothing to match", 3)
	checkErr(`a:[`, "error parsing regexp: missing closing ]: `[`", 2)
}

func TestSyntaxErrorCaret(t *testing.T) {
	_, err := Parse(`µ:x (`)
	if err == nil {
		t.Fatal("want error")
	}
	lines := strings.Split(err.Error(), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %q", err.Error())
	}
	if want := "\t     ^"; lines[2] != want {
		t.Errorf("caret line: got %q, want %q", lines[2], want)
	}
}

func TestEval(t *testing.T) {
	vals := map[string]string{
		".command": "sleep 0.5",
		"/delay":   "0.5",
	}
	lookup := func(key string) string { return vals[key] }

	check := func(query string, want bool) {
		t.Helper()
		q, err := Parse(query)
		if err != nil {
			t.Fatalf("%s: %s", query, err)
		}
		if got := Eval(q, lookup); got != want {
			t.Errorf("%s: got %v, want %v", query, got, want)
		}
	}
	check(`*`, true)
	check(`-*`, false)
	check(`.command:"sleep 0.5"`, true)
	check(`.command:sleep`, false) // Anchored.
	check(`.command:"sleep.*"`, true)
	check(`/delay:0\.5`, true)
	check(`/delay:(0\.1 0\.5)`, true)
	check(`/delay:(0\.1 0\.2)`, false)
	check(`/missing:""`, true)
	check(`/delay:0\.5 -.command:"sleep 0.5"`, false)
	check(`/delay:1 OR .command:"sleep.*"`, true)
	check(`a|b:x OR /delay:0\.5|1`, true)
}

func TestWalk(t *testing.T) {
	q, err := Parse(`a:1 (b:2 OR -c:3) *`)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	Walk(q, func(m *QueryMatch) error {
		keys = append(keys, m.Key)
		return nil
	})
	if got := strings.Join(keys, ","); got != "a,b,c" {
		t.Errorf("got keys %s, want a,b,c", got)
	}
}
