// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc provides tools for selecting and arranging
// benchmark results before they are summarized or plotted.
//
// A Filter selects results with a boolean query over result keys.
// ParameterAxis and CommandTable arrange the results of one or more
// files along the axes of a chart.
package benchproc

import (
	"github.com/benchviz/benchviz/benchfmt"
	"github.com/benchviz/benchviz/benchproc/internal/kvql"
)

// A Filter selects benchmark results using a boolean query.
//
// A query is made of key:value matches combined with AND, OR, "-"
// (not), and parentheses; juxtaposed matches are ANDed and "*"
// matches everything. Keys are those accepted by
// benchfmt.NewExtractor, and each value is a regular expression that
// must match the whole key value. For example:
//
//	.command:"sleep .*" /threads:(1 2 4)
type Filter struct {
	query kvql.Query

	// extractors records the extractor for each key used by query.
	extractors map[string]benchfmt.Extractor
}

// NewFilter constructs a result filter from a boolean query.
func NewFilter(query string) (*Filter, error) {
	q, err := kvql.Parse(query)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		query:      q,
		extractors: make(map[string]benchfmt.Extractor),
	}
	err = kvql.Walk(q, func(m *kvql.QueryMatch) error {
		if _, ok := f.extractors[m.Key]; ok {
			return nil
		}
		ext, err := benchfmt.NewExtractor(m.Key)
		if err != nil {
			return &kvql.SyntaxError{Query: query, Off: m.Off, Msg: err.Error()}
		}
		f.extractors[m.Key] = ext
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Match reports whether res satisfies f.
func (f *Filter) Match(res *benchfmt.Result) bool {
	return kvql.Eval(f.query, func(key string) string {
		return f.extractors[key](res)
	})
}

// String returns f's query in normalized form.
func (f *Filter) String() string {
	return f.query.String()
}
