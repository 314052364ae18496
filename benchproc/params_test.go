// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"errors"
	"testing"

	"github.com/benchviz/benchviz/benchfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withParams(cmd string, params map[string]string) *benchfmt.Result {
	return &benchfmt.Result{Command: cmd, Parameters: params}
}

func TestParameterAxis(t *testing.T) {
	name, values, err := ParameterAxis([]*benchfmt.Result{
		withParams("a", map[string]string{"size": "10"}),
		withParams("b", map[string]string{"size": "100"}),
		withParams("c", map[string]string{"size": "1e3"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "size", name)
	assert.Equal(t, []float64{10, 100, 1000}, values)
}

func TestParameterAxisErrors(t *testing.T) {
	check := func(results []*benchfmt.Result, want string) {
		t.Helper()
		_, _, err := ParameterAxis(results)
		if assert.Error(t, err) {
			assert.Equal(t, want, err.Error())
		}
	}

	_, _, err := ParameterAxis(nil)
	assert.True(t, errors.Is(err, ErrNoResults))

	check([]*benchfmt.Result{
		withParams("a", map[string]string{"n": "1"}),
		withParams("b", nil),
	}, "benchmarks must have exactly one parameter, but found none")
	check([]*benchfmt.Result{
		withParams("a", map[string]string{"y": "1", "x": "2"}),
	}, `benchmarks must have exactly one parameter, but found multiple: ["x" "y"]`)
	check([]*benchfmt.Result{
		withParams("a", map[string]string{"n": "1"}),
		withParams("b", map[string]string{"m": "2"}),
	}, `benchmarks must all have the same parameter name, but found: ["m" "n"]`)
	check([]*benchfmt.Result{
		withParams("a", map[string]string{"n": "big"}),
	}, `a: parameter n="big" is not a number`)
}

func TestCommandTable(t *testing.T) {
	group := func(means ...float64) []*benchfmt.Result {
		cmds := []string{"grep", "rg"}
		var rs []*benchfmt.Result
		for i, m := range means {
			rs = append(rs, &benchfmt.Result{Command: cmds[i], Mean: m})
		}
		return rs
	}

	var tab CommandTable
	require.NoError(t, tab.Add("small", group(1, 0.5)))
	require.NoError(t, tab.Add("large", group(4, 2)))
	assert.Equal(t, []string{"grep", "rg"}, tab.Commands)
	assert.Equal(t, []string{"small", "large"}, tab.Groups)
	assert.Equal(t, [][]float64{{1, 4}, {0.5, 2}}, tab.Means)

	err := tab.Add("bad", group(1))
	if assert.Error(t, err) {
		assert.Equal(t, `unexpected commands in bad: ["grep"], expected: ["grep" "rg"]`, err.Error())
	}
	assert.Len(t, tab.Groups, 2)

	swapped := []*benchfmt.Result{{Command: "rg"}, {Command: "grep"}}
	assert.Error(t, tab.Add("swapped", swapped))
}

func TestSeries(t *testing.T) {
	cmds, times := Series([]*benchfmt.Result{
		{Command: "a", Times: []float64{1, 2}},
		{Command: "b", Times: []float64{3}},
	})
	assert.Equal(t, []string{"a", "b"}, cmds)
	assert.Equal(t, [][]float64{{1, 2}, {3}}, times)

	cmds, times = Series(nil)
	assert.Empty(t, cmds)
	assert.Empty(t, times)
}
