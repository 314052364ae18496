// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoResults = `{
  "results": [
    {
      "command": "sleep 0.1",
      "mean": 0.105,
      "stddev": 0.002,
      "median": 0.104,
      "user": 0.001,
      "system": 0.002,
      "min": 0.103,
      "max": 0.108,
      "times": [0.103, 0.104, 0.108],
      "exit_codes": [0, 0, null]
    },
    {
      "command": "sleep 0.2",
      "mean": 0.2,
      "stddev": null,
      "median": 0.2,
      "times": [0.2],
      "parameters": {"delay": "0.2", "n": 3}
    }
  ]
}
`

// parseAll reads every result from data, recording malformed results
// as a Result whose Command is "error: " + the error message.
func parseAll(t *testing.T, data string) []*Result {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []*Result
	for r.Scan() {
		res, err := r.Result()
		if err == nil {
			out = append(out, res.Clone())
		} else {
			out = append(out, &Result{Command: "error: " + err.Error()})
		}
	}
	require.NoError(t, r.Err())
	return out
}

func TestReader(t *testing.T) {
	results := parseAll(t, twoResults)
	require.Len(t, results, 2)

	r0 := results[0]
	assert.Equal(t, "sleep 0.1", r0.Command)
	assert.Equal(t, []float64{0.103, 0.104, 0.108}, r0.Times)
	assert.Equal(t, 0.105, r0.Mean)
	assert.Equal(t, 0.104, r0.Median)
	assert.Equal(t, 0.103, r0.Min)
	assert.Equal(t, 0.108, r0.Max)
	assert.Equal(t, 0.001, r0.User)
	assert.Equal(t, 0.002, r0.System)
	require.NotNil(t, r0.StdDev)
	assert.Equal(t, 0.002, *r0.StdDev)
	require.Len(t, r0.ExitCodes, 3)
	assert.Equal(t, 0, *r0.ExitCodes[0])
	assert.Nil(t, r0.ExitCodes[2])
	assert.Empty(t, r0.Parameters)
	assert.Equal(t, "test", r0.File)

	r1 := results[1]
	assert.Nil(t, r1.StdDev)
	assert.Equal(t, map[string]string{"delay": "0.2", "n": "3"}, r1.Parameters)
	v, err := r1.Parameter("delay")
	require.NoError(t, err)
	assert.Equal(t, 0.2, v)
	_, err = r1.Parameter("missing")
	assert.Error(t, err)
}

func TestReaderLegacyParameter(t *testing.T) {
	results := parseAll(t, `{"results": [
		{"command": "a", "mean": 1, "parameter": 10},
		{"command": "b", "mean": 2, "parameter": "20"}
	]}`)
	require.Len(t, results, 2)
	assert.Equal(t, "10", results[0].Parameters[LegacyParameterName])
	v, err := results[1].Parameter(LegacyParameterName)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)
}

func TestReaderSkipsOtherKeys(t *testing.T) {
	results := parseAll(t, `{"version": {"major": 1}, "results": [{"command": "x"}], "trailer": [1, 2]}`)
	require.Len(t, results, 1)
	assert.Equal(t, "x", results[0].Command)
	assert.Nil(t, results[0].Times)
}

func TestReaderResultErrors(t *testing.T) {
	results := parseAll(t, `{"results": [
		{"mean": 1},
		{"command": 5},
		{"command": "ok"},
		{"command": "p", "parameters": {"x": true}}
	]}`)
	require.Len(t, results, 4)
	assert.Equal(t, "error: test: results[0]: result has no command", results[0].Command)
	assert.True(t, strings.HasPrefix(results[1].Command, "error: test: results[1]: malformed result"), results[1].Command)
	assert.Equal(t, "ok", results[2].Command)
	assert.True(t, strings.HasPrefix(results[3].Command, `error: test: results[3]: parameter "x"`), results[3].Command)
}

func TestReaderFatalErrors(t *testing.T) {
	check := func(data, want string) {
		t.Helper()
		r := NewReader(strings.NewReader(data), "bad")
		for r.Scan() {
		}
		err := r.Err()
		if assert.Error(t, err, "for %q", data) {
			assert.Contains(t, err.Error(), want)
		}
	}
	check(``, "unexpected EOF")
	check(`[]`, "expected")
	check(`{"other": 1}`, `no "results" array`)
	check(`{"results": {}}`, `"results" must be an array`)
	check(`{"results": [{"command": "a"},`, "bad:")

	r := NewReader(strings.NewReader(`{"results": [`), "trunc")
	assert.False(t, r.Scan())
	assert.True(t, errors.Is(r.Err(), io.ErrUnexpectedEOF))
}

func TestReaderReset(t *testing.T) {
	r := NewReader(strings.NewReader(`{"results": [{"command": "a"}]}`), "one")
	require.True(t, r.Scan())
	r.Reset(strings.NewReader(`{"results": [{"command": "b"}, {"command": "c"}]}`), "two")
	var cmds []string
	for r.Scan() {
		res, err := r.Result()
		require.NoError(t, err)
		cmds = append(cmds, res.Command)
		assert.Equal(t, "two", res.File)
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"b", "c"}, cmds)
}

func TestResultBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader(twoResults), "test")
	_, err := r.Result()
	assert.Error(t, err)
}

func TestReadAll(t *testing.T) {
	results, err := ReadAll(strings.NewReader(twoResults), "x")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = ReadAll(strings.NewReader(`{"results": [{"command": "a"}, {}]}`), "x")
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Index)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o666))
		return path
	}
	a := write("a.json", `{"results": [{"command": "a1"}, {"command": "a2"}]}`)
	b := write("b.json", `{"results": []}`)
	c := write("c.json", `{"results": [{"command": "c1"}]}`)

	files := Files{Paths: []string{a, b, c}}
	var got []string
	for files.Scan() {
		res, err := files.Result()
		require.NoError(t, err)
		got = append(got, filepath.Base(res.File)+":"+res.Command)
	}
	require.NoError(t, files.Err())
	assert.Equal(t, []string{"a.json:a1", "a.json:a2", "c.json:c1"}, got)

	missing := Files{Paths: []string{a, filepath.Join(dir, "nope.json")}}
	n := 0
	for missing.Scan() {
		n++
	}
	assert.Equal(t, 2, n)
	assert.Error(t, missing.Err())

	early := Files{Paths: []string{a, c}}
	require.True(t, early.Scan())
	early.Close()
	assert.False(t, early.Scan())
	assert.NoError(t, early.Err())

	results, err := ReadFile(c)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, c, results[0].File)
}

func TestClone(t *testing.T) {
	results := parseAll(t, twoResults)
	r := results[0]
	c := r.Clone()
	c.Times[0] = 99
	*c.StdDev = 99
	*c.ExitCodes[0] = 99
	c.Parameters["x"] = "y"
	assert.Equal(t, 0.103, r.Times[0])
	assert.Equal(t, 0.002, *r.StdDev)
	assert.Equal(t, 0, *r.ExitCodes[0])
	assert.NotContains(t, r.Parameters, "x")
}
