// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"testing"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchproc/internal/kvql"
)

func TestFilter(t *testing.T) {
	res := &benchfmt.Result{
		Command:    "sleep 0.5",
		File:       "runs/a.json",
		Parameters: map[string]string{"delay": "0.5", "mode": "fast"},
	}

	check := func(t *testing.T, query string, want bool) {
		t.Helper()
		f, err := NewFilter(query)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.Match(res); got != want {
			t.Errorf("%s: got %v, want %v", query, got, want)
		}
	}

	t.Run("basic", func(t *testing.T) {
		check(t, `.command:"sleep 0.5"`, true)
		check(t, `.command:sleep`, false)
		check(t, `.file:runs/a\.json`, true)
		check(t, `/delay:0\.5`, true)
		check(t, `/mode:slow`, false)
		check(t, `/missing:""`, true)
	})

	t.Run("regexp", func(t *testing.T) {
		check(t, `.command:"sleep .*"`, true)
		check(t, `.file:.*\.json`, true)
		check(t, `/delay:[0-9.]+`, true)
	})

	t.Run("boolean", func(t *testing.T) {
		check(t, "*", true)
		check(t, "/mode:fast OR /mode:slow", true)
		check(t, "/mode:fast AND /mode:slow", false)
		check(t, "/mode:fast /mode:slow", false)
		check(t, `/mode:fast /delay:0\.5`, true)
		check(t, "-/mode:fast", false)
		check(t, "--/mode:fast", true)
		check(t, "/mode:(slow fast)", true)
	})
}

func TestFilterErrors(t *testing.T) {
	check := func(query, msg string, off int) {
		t.Helper()
		_, err := NewFilter(query)
		se, ok := err.(*kvql.SyntaxError)
		if !ok {
			t.Errorf("%s: want *kvql.SyntaxError, got %v", query, err)
			return
		}
		if se.Msg != msg || se.Off != off {
			t.Errorf("%s: got %q at %d, want %q at %d", query, se.Msg, se.Off, msg, off)
		}
	}
	check(`/mode:fast .name:x`, `unknown key ".name" (want .command, .file, or /parameter)`, 11)
	check(`/:x`, `missing parameter name in key "/"`, 0)
	check(`(/mode:fast`, `missing ")"`, 11)
}

func TestFilterString(t *testing.T) {
	f, err := NewFilter(`/mode:fast /delay:(1 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), `(/mode:fast AND (/delay:1 OR /delay:2))`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
