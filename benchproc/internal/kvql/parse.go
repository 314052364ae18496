// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kvql implements a small key-value query language for
// selecting benchmark results.
//
// Syntax:
//
//	expr    = andExpr {"OR" andExpr} .
//	andExpr = phrase {"AND" phrase} .
//	phrase  = match {match} .
//	match   = "(" expr ")"
//	        | "-" match
//	        | "*"
//	        | word ":" (word | "(" {word} ")") .
//	word    = [^ ():,"]* | "\"" ([^"\\] | "\\" .)* "\""
//
// The value side of a match is a regular expression that must match
// the whole value of the key.
package kvql

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
)

// SyntaxError is an error produced by parsing a malformed query
// string.
type SyntaxError struct {
	Query string // The query string
	Off   int    // Byte offset of the error in Query
	Msg   string // Error message
}

func (e *SyntaxError) Error() string {
	// Place the caret under the offending rune, not byte.
	col := 0
	for i, r := range e.Query {
		if i >= e.Off {
			break
		}
		if unicode.IsGraphic(r) {
			col++
		}
	}
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Query, col, "")
}

// Parse parses a query string into a Query tree.
func Parse(q string) (Query, error) {
	toks, err := Tokenize(q)
	if err != nil {
		return nil, err
	}

	// Classify keywords. After this, quoted and unquoted words are
	// interchangeable, so a quoted "AND" is a plain word.
	for i, tok := range toks {
		switch {
		case tok.Kind == 'w' && tok.Tok == "AND":
			toks[i].Kind = 'A'
		case tok.Kind == 'w' && tok.Tok == "OR":
			toks[i].Kind = 'O'
		case tok.Kind == 'q':
			toks[i].Kind = 'w'
		}
	}

	p := &parser{q: q, toks: toks}
	node := p.expr()
	if p.err == nil && p.peek().Kind != 0 {
		p.fail("unexpected " + strconv.Quote(p.peek().Tok))
	}
	if p.err != nil {
		return nil, p.err
	}
	return node, nil
}

type parser struct {
	q    string
	toks []Tok
	pos  int
	err  *SyntaxError
}

func (p *parser) peek() Tok {
	return p.toks[p.pos]
}

func (p *parser) next() Tok {
	tok := p.toks[p.pos]
	if tok.Kind != 0 {
		p.pos++
	}
	return tok
}

// fail records an error at the current token and skips to the end of
// input. Only the first error is kept.
func (p *parser) fail(msg string) Query {
	p.failAt(p.peek().Off, msg)
	return nil
}

func (p *parser) failAt(off int, msg string) {
	if p.err == nil {
		p.err = &SyntaxError{p.q, off, msg}
	}
	p.pos = len(p.toks) - 1
}

func (p *parser) expr() Query {
	return p.binary('O', OpOr, p.andExpr)
}

func (p *parser) andExpr() Query {
	return p.binary('A', OpAnd, p.phrase)
}

// binary parses one or more operands separated by the keyword kind.
func (p *parser) binary(kind byte, op Op, operand func() Query) Query {
	first := operand()
	if p.peek().Kind != kind {
		return first
	}
	terms := []Query{first}
	for p.peek().Kind == kind {
		p.next()
		terms = append(terms, operand())
	}
	return &QueryOp{op, terms}
}

func (p *parser) phrase() Query {
	var terms []Query
	for p.err == nil {
		switch p.peek().Kind {
		case '(', '-', '*', 'w':
			terms = append(terms, p.match())
			continue
		case ')', 'A', 'O', 0:
		default:
			return p.fail("unexpected " + strconv.Quote(p.peek().Tok))
		}
		break
	}
	switch len(terms) {
	case 0:
		return p.fail("nothing to match")
	case 1:
		return terms[0]
	}
	return &QueryOp{OpAnd, terms}
}

func (p *parser) match() Query {
	switch p.peek().Kind {
	case '(':
		p.next()
		node := p.expr()
		if p.peek().Kind != ')' {
			return p.fail(`missing ")"`)
		}
		p.next()
		return node

	case '-':
		p.next()
		return &QueryOp{OpNot, []Query{p.match()}}

	case '*':
		p.next()
		return &QueryOp{OpAnd, nil}

	case 'w':
		key := p.next()
		if p.peek().Kind != ':' {
			p.failAt(key.Off, "expected key:value")
			return nil
		}
		p.next()
		switch p.peek().Kind {
		case 'w':
			return p.value(key)
		case '(':
			p.next()
			var terms []Query
			for p.err == nil && p.peek().Kind == 'w' {
				terms = append(terms, p.value(key))
			}
			if p.peek().Kind != ')' {
				return p.fail("expected value")
			}
			if len(terms) == 0 {
				return p.fail("nothing to match")
			}
			p.next()
			return &QueryOp{OpOr, terms}
		}
		p.failAt(key.Off, "expected key:value")
		return nil
	}
	return p.fail("expected key:value or subexpression")
}

// value parses a word token as a regexp to match against key.
func (p *parser) value(key Tok) Query {
	tok := p.next()
	if _, err := regexp.Compile(tok.Tok); err != nil {
		p.failAt(tok.Off, err.Error())
		return nil
	}
	re := regexp.MustCompile("^(?:" + tok.Tok + ")$")
	return &QueryMatch{Off: key.Off, Key: key.Tok, re: re, src: tok.Tok}
}
