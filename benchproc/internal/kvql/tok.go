// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvql

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tok is a single token in the kvql lexical syntax.
type Tok struct {
	// Kind is 'w' for an unquoted word, 'q' for a quoted word, the
	// operator character for an operator, or 0 for end of input.
	Kind byte
	Off  int    // Byte offset of the beginning of this token
	Tok  string // Token text; quoted words are unescaped
}

func isOp(ch rune) bool {
	switch ch {
	case '(', ')', ':', ',':
		return true
	}
	return false
}

// Tokenize splits q into a stream of tokens ending with an
// end-of-input token.
//
// A quoted word is enclosed in double quotes. Within it, a backslash
// escapes a following double quote or backslash; any other backslash
// is kept literally so regexp escapes like \d need no doubling.
//
// "-" and "*" are operators only at the start of a word, so a word
// like "sleep-1" stays whole.
func Tokenize(q string) ([]Tok, error) {
	var toks []Tok
	pos := 0
	for pos < len(q) {
		r, size := utf8.DecodeRuneInString(q[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size

		case isOp(r) || r == '-' || r == '*':
			toks = append(toks, Tok{q[pos], pos, q[pos : pos+1]})
			pos++

		case r == '"':
			word, end, ok := scanQuoted(q, pos)
			if !ok {
				return nil, &SyntaxError{q, pos, "missing end quote"}
			}
			toks = append(toks, Tok{'q', pos, word})
			pos = end

		default:
			end := pos
			for end < len(q) {
				r, size := utf8.DecodeRuneInString(q[end:])
				if unicode.IsSpace(r) || isOp(r) || r == '"' {
					break
				}
				end += size
			}
			toks = append(toks, Tok{'w', pos, q[pos:end]})
			pos = end
		}
	}
	toks = append(toks, Tok{0, len(q), ""})
	return toks, nil
}

// scanQuoted scans the quoted word starting at q[start], which must be
// '"'. It returns the unescaped word and the offset just past the
// closing quote.
func scanQuoted(q string, start int) (word string, end int, ok bool) {
	var buf strings.Builder
	for i := start + 1; i < len(q); i++ {
		switch c := q[i]; c {
		case '"':
			return buf.String(), i + 1, true
		case '\\':
			if i+1 < len(q) && (q[i+1] == '"' || q[i+1] == '\\') {
				i++
				buf.WriteByte(q[i])
			} else {
				buf.WriteByte(c)
			}
		default:
			buf.WriteByte(c)
		}
	}
	return "", 0, false
}
