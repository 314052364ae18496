// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"strings"
)

// An Extractor returns some component of a benchmark result.
type Extractor func(*Result) string

// NewExtractor returns a function that extracts some component of a
// benchmark result.
//
// The key must be one of the following:
//
// - ".command" for the benchmarked command line.
//
// - ".file" for the name of the file the result was read from.
//
// - "/{name}" for the value of parameter name, or "" if the result
// has no such parameter.
func NewExtractor(key string) (Extractor, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("key must not be empty")
	}

	switch {
	case key == ".command":
		return extractCommand, nil

	case key == ".file":
		return extractFile, nil

	case strings.HasPrefix(key, "/"):
		name := key[1:]
		if name == "" {
			return nil, fmt.Errorf("missing parameter name in key %q", key)
		}
		return func(res *Result) string {
			return res.Parameters[name]
		}, nil
	}

	return nil, fmt.Errorf("unknown key %q (want .command, .file, or /parameter)", key)
}

func extractCommand(res *Result) string {
	return res.Command
}

func extractFile(res *Result) string {
	return res.File
}
