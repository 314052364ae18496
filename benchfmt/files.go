// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"os"
)

// StdinName is the file name given to results read from stdin.
const StdinName = "<stdin>"

// Files reads benchmark results from a sequence of JSON exports.
//
// Each Result's File field is set to the path it was read from,
// exactly as it appears in Paths, or StdinName for stdin.
type Files struct {
	// Paths lists the exports to read, in order.
	Paths []string

	// AllowStdin makes the path "-" mean stdin, and an empty Paths
	// list mean a single read of stdin. This suits file lists that
	// come from command-line arguments.
	AllowStdin bool

	next   int       // index in Paths of the next file to open
	opened bool      // whether the implicit stdin was opened
	cur    io.Closer // open file, or nil for stdin or none
	active bool      // whether reader has a file to scan
	reader Reader
	err    error
}

// Scan advances to the next result across all files and reports
// whether there is one. Use Result to get it. Scan returns false at
// the end of the last file or on an I/O or JSON syntax error, which
// Err then reports.
func (f *Files) Scan() bool {
	for f.err == nil {
		if !f.active && !f.open() {
			return false
		}
		if f.reader.Scan() {
			return true
		}
		f.err = f.reader.Err()
		f.closeCurrent()
	}
	return false
}

// open starts reading the next file. It returns false if there are
// no more files or the file cannot be opened.
func (f *Files) open() bool {
	var path string
	switch {
	case f.AllowStdin && len(f.Paths) == 0:
		if f.opened {
			return false
		}
		f.opened = true
		path = "-"
	case f.next < len(f.Paths):
		path = f.Paths[f.next]
		f.next++
	default:
		return false
	}

	if f.AllowStdin && path == "-" {
		f.reader.Reset(os.Stdin, StdinName)
	} else {
		file, err := os.Open(path)
		if err != nil {
			f.err = err
			return false
		}
		f.cur = file
		f.reader.Reset(file, path)
	}
	f.active = true
	return true
}

func (f *Files) closeCurrent() {
	if f.cur != nil {
		f.cur.Close()
		f.cur = nil
	}
	f.active = false
}

// Close releases the file being read, if any. It is only needed when
// the caller stops before Scan returns false.
func (f *Files) Close() {
	f.closeCurrent()
	f.next = len(f.Paths)
	f.opened = true
}

// Result returns the result most recently read by Scan, or a
// *SyntaxError if it was malformed. Result errors do not stop Scan.
//
// The Result is overwritten by the next call to Scan; use Clone to
// keep it.
func (f *Files) Result() (*Result, error) {
	return f.reader.Result()
}

// Err returns the first I/O or JSON syntax error Scan encountered.
func (f *Files) Err() error {
	return f.err
}

// ReadFile reads every result from the named export. The path "-"
// means stdin. It stops at the first malformed result.
func ReadFile(path string) ([]*Result, error) {
	if path == "-" {
		return ReadAll(os.Stdin, StdinName)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadAll(file, path)
}
