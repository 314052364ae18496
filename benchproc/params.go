// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/benchviz/benchviz/benchfmt"
)

// ErrNoResults is returned when there are no results to process.
var ErrNoResults = errors.New("no benchmark data to plot")

// ParameterAxis returns the name and per-result values of the single
// parameter shared by results. Every result must have exactly one
// parameter, with a numeric value, and all of them must use the same
// name.
func ParameterAxis(results []*benchfmt.Result) (name string, values []float64, err error) {
	if len(results) == 0 {
		return "", nil, ErrNoResults
	}

	names := make(map[string]bool)
	values = make([]float64, len(results))
	for i, res := range results {
		switch len(res.Parameters) {
		case 0:
			return "", nil, fmt.Errorf("benchmarks must have exactly one parameter, but found none")
		case 1:
		default:
			return "", nil, fmt.Errorf("benchmarks must have exactly one parameter, but found multiple: %q", sortedKeys(res.Parameters))
		}
		for n := range res.Parameters {
			name = n
		}
		names[name] = true
		if values[i], err = res.Parameter(name); err != nil {
			return "", nil, err
		}
	}
	if len(names) != 1 {
		return "", nil, fmt.Errorf("benchmarks must all have the same parameter name, but found: %q", sortedKeys(names))
	}
	return name, values, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A CommandTable collects mean run times for the same list of
// commands benchmarked in several groups, typically one group per
// input file.
type CommandTable struct {
	// Commands is the list of commands, in input order.
	Commands []string

	// Groups is the list of group names, in the order they were
	// added.
	Groups []string

	// Means[i][j] is the mean time of Commands[i] in Groups[j].
	Means [][]float64
}

// Add adds a group of results to t. The results must list exactly the
// commands of every previously added group, in the same order.
func (t *CommandTable) Add(group string, results []*benchfmt.Result) error {
	cmds := make([]string, len(results))
	for i, res := range results {
		cmds[i] = res.Command
	}
	if t.Commands == nil {
		t.Commands = cmds
		t.Means = make([][]float64, len(cmds))
	} else if !equalStrings(t.Commands, cmds) {
		return fmt.Errorf("unexpected commands in %s: %q, expected: %q", group, cmds, t.Commands)
	}

	t.Groups = append(t.Groups, group)
	for i, res := range results {
		t.Means[i] = append(t.Means[i], res.Mean)
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Series returns the command and run times of each result, in order.
func Series(results []*benchfmt.Result) (commands []string, times [][]float64) {
	commands = make([]string, len(results))
	times = make([][]float64, len(results))
	for i, res := range results {
		commands[i], times[i] = res.Command, res.Times
	}
	return commands, times
}
