// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvql

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Query is a node in the query tree: either a *QueryOp or a
// *QueryMatch.
type Query interface {
	isQuery()
	String() string
}

// QueryMatch is a leaf that tests the value of one key against an
// anchored regular expression.
type QueryMatch struct {
	Off int // Byte offset of the key in the original query
	Key string

	re  *regexp.Regexp
	src string // re as written, before anchoring
}

func (q *QueryMatch) isQuery() {}

func (q *QueryMatch) String() string {
	return quote(q.Key) + ":" + quote(q.src)
}

// Match reports whether value, in its entirety, matches q's regular
// expression.
func (q *QueryMatch) Match(value string) bool {
	return q.re.MatchString(value)
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || isOp(r) || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}

// Op is a boolean operator.
type Op int

const (
	OpAnd Op = 1 + iota
	OpOr
	OpNot
)

// QueryOp is a boolean operator node. An OpNot node has exactly one
// child. OpAnd and OpOr nodes have zero or more; an empty OpAnd is
// always true and an empty OpOr is always false.
type QueryOp struct {
	Op    Op
	Exprs []Query
}

func (q *QueryOp) isQuery() {}

func (q *QueryOp) String() string {
	if q.Op == OpNot {
		return "-" + q.Exprs[0].String()
	}
	if q.Op == OpAnd && len(q.Exprs) == 0 {
		return "*"
	}
	sep := " AND "
	if q.Op == OpOr {
		sep = " OR "
	}
	parts := make([]string, len(q.Exprs))
	for i, e := range q.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Eval evaluates q, using lookup to find the value of each key.
func Eval(q Query, lookup func(key string) string) bool {
	switch q := q.(type) {
	case *QueryMatch:
		return q.Match(lookup(q.Key))
	case *QueryOp:
		switch q.Op {
		case OpNot:
			return !Eval(q.Exprs[0], lookup)
		case OpAnd:
			for _, sub := range q.Exprs {
				if !Eval(sub, lookup) {
					return false
				}
			}
			return true
		case OpOr:
			for _, sub := range q.Exprs {
				if Eval(sub, lookup) {
					return true
				}
			}
			return false
		}
	}
	panic("unknown query node " + q.String())
}

// Walk calls fn for each QueryMatch leaf of q, in order, and stops at
// the first error.
func Walk(q Query, fn func(*QueryMatch) error) error {
	switch q := q.(type) {
	case *QueryMatch:
		return fn(q)
	case *QueryOp:
		for _, sub := range q.Exprs {
			if err := Walk(sub, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
