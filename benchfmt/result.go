// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt provides a reader and writer for benchmark result
// exports in hyperfine's JSON format.
//
// An export is a JSON object whose "results" array holds one object
// per benchmarked command:
//
//	{
//	  "results": [
//	    {
//	      "command": "sleep 0.1",
//	      "mean": 0.1032, "stddev": 0.0011, "median": 0.1030,
//	      "user": 0.0009, "system": 0.0012,
//	      "min": 0.1018, "max": 0.1051,
//	      "times": [0.1018, 0.1030, 0.1051],
//	      "exit_codes": [0, 0, 0],
//	      "parameters": {"delay": "0.1"}
//	    }
//	  ]
//	}
//
// The reader is structured as a streaming operation, like
// bufio.Scanner, so consumers can provide their own data model.
package benchfmt

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LegacyParameterName is the parameter name given to results that use
// the older single "parameter" field instead of a "parameters"
// object.
const LegacyParameterName = "parameter"

// Result is a single benchmark result and all of its measurements.
// All times are in seconds.
type Result struct {
	// Command is the benchmarked command line.
	Command string

	// Times is every measured wall clock run time, in run order.
	Times []float64

	// Mean, Median, User, System, Min, and Max are the statistics
	// precomputed by the benchmarking tool. They are zero if the
	// export omits them.
	Mean, Median float64
	User, System float64
	Min, Max     float64

	// StdDev is the precomputed standard deviation, or nil if the
	// export has none (for example, a single run).
	StdDev *float64

	// ExitCodes records the exit code of each run. An entry is nil
	// if the command was terminated by a signal.
	ExitCodes []*int

	// Parameters maps parameter names to their values for
	// parametrized benchmarks.
	Parameters map[string]string

	// File is the name of the file this result was read from, or ""
	// if it was not read by Files.
	File string

	// raw is the original JSON object, used to write the result
	// back out unmodified.
	raw json.RawMessage
}

// jsonResult mirrors the exported object for decoding.
type jsonResult struct {
	Command   *string                    `json:"command"`
	Mean      float64                    `json:"mean"`
	StdDev    *float64                   `json:"stddev"`
	Median    float64                    `json:"median"`
	User      float64                    `json:"user"`
	System    float64                    `json:"system"`
	Min       float64                    `json:"min"`
	Max       float64                    `json:"max"`
	Times     []float64                  `json:"times"`
	ExitCodes []*int                     `json:"exit_codes"`
	Params    map[string]json.RawMessage `json:"parameters"`
	Param     json.RawMessage            `json:"parameter"`
}

// decodeResult decodes one element of the results array into res.
func decodeResult(raw json.RawMessage, res *Result) error {
	var jr jsonResult
	if err := json.Unmarshal(raw, &jr); err != nil {
		return fmt.Errorf("malformed result: %v", err)
	}
	if jr.Command == nil {
		return fmt.Errorf("result has no command")
	}

	params := make(map[string]string, len(jr.Params))
	for name, val := range jr.Params {
		s, err := paramString(val)
		if err != nil {
			return fmt.Errorf("parameter %q: %v", name, err)
		}
		params[name] = s
	}
	if len(jr.Param) > 0 && string(jr.Param) != "null" {
		s, err := paramString(jr.Param)
		if err != nil {
			return fmt.Errorf("parameter: %v", err)
		}
		if _, ok := params[LegacyParameterName]; !ok {
			params[LegacyParameterName] = s
		}
	}

	*res = Result{
		Command:    *jr.Command,
		Times:      jr.Times,
		Mean:       jr.Mean,
		Median:     jr.Median,
		User:       jr.User,
		System:     jr.System,
		Min:        jr.Min,
		Max:        jr.Max,
		StdDev:     jr.StdDev,
		ExitCodes:  jr.ExitCodes,
		Parameters: params,
		File:       res.File,
		raw:        append(json.RawMessage(nil), raw...),
	}
	return nil
}

// paramString accepts a parameter value encoded as either a JSON
// string or a JSON number.
func paramString(val json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(val, &n); err != nil {
		return "", fmt.Errorf("want string or number, got %s", val)
	}
	return n.String(), nil
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	r2 := *r
	if r.Times != nil {
		r2.Times = append([]float64(nil), r.Times...)
	}
	if r.StdDev != nil {
		sd := *r.StdDev
		r2.StdDev = &sd
	}
	if r.ExitCodes != nil {
		r2.ExitCodes = make([]*int, len(r.ExitCodes))
		for i, c := range r.ExitCodes {
			if c != nil {
				c2 := *c
				r2.ExitCodes[i] = &c2
			}
		}
	}
	if r.Parameters != nil {
		r2.Parameters = make(map[string]string, len(r.Parameters))
		for k, v := range r.Parameters {
			r2.Parameters[k] = v
		}
	}
	if r.raw != nil {
		r2.raw = append(json.RawMessage(nil), r.raw...)
	}
	return &r2
}

// Parameter returns the value of the named parameter as a number.
func (r *Result) Parameter(name string) (float64, error) {
	s, ok := r.Parameters[name]
	if !ok {
		return 0, fmt.Errorf("%s: no parameter %q", r.Command, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: parameter %s=%q is not a number", r.Command, name, s)
	}
	return v, nil
}

// MarshalJSON returns the original JSON object for r if it was read
// from an export, or a freshly encoded object otherwise.
func (r *Result) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	jr := struct {
		Command    string            `json:"command"`
		Mean       float64           `json:"mean"`
		StdDev     *float64          `json:"stddev"`
		Median     float64           `json:"median"`
		User       float64           `json:"user"`
		System     float64           `json:"system"`
		Min        float64           `json:"min"`
		Max        float64           `json:"max"`
		Times      []float64         `json:"times,omitempty"`
		ExitCodes  []*int            `json:"exit_codes"`
		Parameters map[string]string `json:"parameters,omitempty"`
	}{r.Command, r.Mean, r.StdDev, r.Median, r.User, r.System, r.Min, r.Max, r.Times, r.ExitCodes, r.Parameters}
	if jr.ExitCodes == nil {
		jr.ExitCodes = []*int{}
	}
	return json.Marshal(jr)
}
