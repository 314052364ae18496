// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// A Reader reads benchmark results from a JSON export.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Result it returns; a caller should Clone anything it needs to
// retain.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	dec      *json.Decoder
	fileName string
	index    int  // index of the next element of "results"
	inArray  bool // positioned inside the "results" array
	done     bool // "results" has been fully consumed
	err      error

	result    Result
	resultErr error
}

// SyntaxError represents a malformed element of the "results" array.
type SyntaxError struct {
	FileName string
	Index    int // Index in the results array
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: results[%d]: %s", s.FileName, s.Index, s.Msg)
}

var noResult = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse a JSON export from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.dec = json.NewDecoder(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.index = 0
	r.inArray = false
	r.done = false
	r.err = nil
	r.resultErr = noResult
	r.result = Result{}
}

// Scan advances the reader to the next result and returns true if a
// result was read. The caller should use the Result method to get the
// result. If an I/O or JSON syntax error occurs, or this reaches the
// end of the file, it returns false and the caller should use the Err
// method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.done {
		return false
	}
	if !r.inArray {
		if !r.seekResults() {
			return false
		}
	}

	if !r.dec.More() {
		// Consume "]" and the rest of the top-level object.
		if _, err := r.dec.Token(); err != nil {
			r.fail(err)
			return false
		}
		r.done = true
		if err := r.skipRest(); err != nil {
			r.fail(err)
		}
		return false
	}

	var raw json.RawMessage
	if err := r.dec.Decode(&raw); err != nil {
		r.fail(err)
		return false
	}
	r.result.File = r.fileName
	if err := decodeResult(raw, &r.result); err != nil {
		r.resultErr = &SyntaxError{r.fileName, r.index, err.Error()}
	} else {
		r.resultErr = nil
	}
	r.index++
	return true
}

// seekResults consumes tokens up to and including the "[" that opens
// the top-level "results" array.
func (r *Reader) seekResults() bool {
	if err := r.expectDelim('{'); err != nil {
		r.fail(err)
		return false
	}
	for r.dec.More() {
		tok, err := r.dec.Token()
		if err != nil {
			r.fail(err)
			return false
		}
		key, _ := tok.(string)
		if key != "results" {
			// Skip this value.
			var skip json.RawMessage
			if err := r.dec.Decode(&skip); err != nil {
				r.fail(err)
				return false
			}
			continue
		}
		if err := r.expectDelim('['); err != nil {
			r.fail(fmt.Errorf(`"results" must be an array`))
			return false
		}
		r.inArray = true
		return true
	}
	r.fail(fmt.Errorf(`no "results" array`))
	return false
}

// skipRest consumes any keys following "results" and the closing "}".
func (r *Reader) skipRest() error {
	for r.dec.More() {
		if _, err := r.dec.Token(); err != nil {
			return err
		}
		var skip json.RawMessage
		if err := r.dec.Decode(&skip); err != nil {
			return err
		}
	}
	_, err := r.dec.Token()
	return err
}

func (r *Reader) expectDelim(want json.Delim) error {
	tok, err := r.dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, found %v", want, tok)
	}
	return nil
}

func (r *Reader) fail(err error) {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.err = fmt.Errorf("%s: %w", r.fileName, err)
}

// Result returns the result read by the last call to Scan, or a
// *SyntaxError if that element of the results array was malformed.
//
// Result errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Result object, as it will be
// overwritten by the next call to Scan.
func (r *Reader) Result() (*Result, error) {
	if r.resultErr != nil {
		return nil, r.resultErr
	}
	return &r.result, nil
}

// Err returns the first I/O or JSON syntax error encountered by the
// Reader. Unlike Result errors, these stop the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every result from r. It stops at the first malformed
// result.
func ReadAll(r io.Reader, fileName string) ([]*Result, error) {
	reader := NewReader(r, fileName)
	var out []*Result
	for reader.Scan() {
		res, err := reader.Result()
		if err != nil {
			return nil, err
		}
		out = append(out, res.Clone())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
