// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"encoding/json"
	"io"
)

// A Writer writes benchmark results as a JSON export.
//
// Results are written as they arrive; Close writes the closing
// brackets and must be called even if no results were written.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	n      int
	closed bool
}

// NewWriter returns a writer that writes a JSON export to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes benchmark result res to w. Results that were read by
// a Reader are written exactly as they appeared in the input, apart
// from indentation.
func (w *Writer) Write(res *Result) error {
	obj, err := res.MarshalJSON()
	if err != nil {
		return err
	}

	if w.n == 0 {
		w.buf.WriteString("{\n  \"results\": [\n    ")
	} else {
		w.buf.WriteString(",\n    ")
	}
	if err := json.Indent(&w.buf, obj, "    ", "  "); err != nil {
		w.buf.Reset()
		return err
	}
	w.n++

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err = w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// Close finishes the export. It does not close the underlying
// io.Writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.n == 0 {
		_, err := io.WriteString(w.w, "{\n  \"results\": []\n}\n")
		return err
	}
	_, err := io.WriteString(w.w, "\n  ]\n}\n")
	return err
}
