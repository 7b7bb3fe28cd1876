// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval evaluates stylesheet-style function call expressions
// such as contrast.colour-difference(#000000, #ffffff), and expands
// #{...} interpolations of such expressions in text.
package eval

//go:generate core generate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/core/base/logx"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Namespace is the optional prefix of function names in expressions,
// as in contrast.relative-luminance(white).
const Namespace = "contrast"

type token struct {
	tt   css.TokenType
	text string
}

// parser is a recursive descent parser and evaluator over CSS tokens.
type parser struct {
	expr string
	toks []token
	pos  int
}

// Eval evaluates the given expression and returns the resulting value.
// The expression is a call to one of the [Functions], optionally
// prefixed with [Namespace] and a dot, or a single literal value.
// Calls to unknown functions fail with an [*UnsupportedOperationError].
func Eval(expr string) (Value, error) {
	p, err := newParser(expr)
	if err != nil {
		return Value{}, err
	}
	if p.peek().tt == css.ErrorToken {
		return Value{}, p.errorf("empty expression")
	}
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}
	if t := p.peek(); t.tt != css.ErrorToken {
		return Value{}, p.errorf("unexpected %q after expression", t.text)
	}
	logx.PrintlnDebug("eval:", expr, "=", v)
	return v, nil
}

func newParser(expr string) (*parser, error) {
	p := &parser{expr: expr}
	l := css.NewLexer(parse.NewInputString(expr))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, p.errorf("%v", err)
			}
			break
		}
		if tt == css.CommentToken {
			continue
		}
		p.toks = append(p.toks, token{tt, string(data)})
	}
	return p, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Expr: p.expr, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.toks) && p.toks[p.pos].tt == css.WhitespaceToken {
		p.pos++
	}
}

// peek returns the next non-whitespace token without consuming it,
// or an [css.ErrorToken] at the end of the input.
func (p *parser) peek() token {
	p.skipSpace()
	if p.pos >= len(p.toks) {
		return token{tt: css.ErrorToken}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if t.tt != css.ErrorToken {
		p.pos++
	}
	return t
}

// value parses and evaluates a single value.
func (p *parser) value() (Value, error) {
	t := p.next()
	switch t.tt {
	case css.IdentToken:
		if d := p.peek(); d.tt == css.DelimToken && d.text == "." {
			p.next()
			f := p.next()
			if f.tt != css.FunctionToken {
				return Value{}, p.errorf("expected a function call after %q", t.text+".")
			}
			name := strings.TrimSuffix(f.text, "(")
			if !strings.EqualFold(t.text, Namespace) {
				return Value{}, &UnsupportedOperationError{Name: t.text + "." + name}
			}
			return p.call(name)
		}
		if t.text == "true" || t.text == "false" {
			return BoolValue(t.text == "true"), nil
		}
		return Value{Kind: Ident, Str: t.text}, nil
	case css.FunctionToken:
		return p.call(strings.TrimSuffix(t.text, "("))
	case css.HashToken:
		c, err := colors.FromHex(t.text)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	case css.NumberToken, css.PercentageToken, css.DimensionToken:
		return p.number(t.text)
	case css.StringToken:
		str, err := p.unquote(t.text)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: String, Str: str}, nil
	case css.ErrorToken:
		return Value{}, p.errorf("unexpected end of expression")
	}
	return Value{}, p.errorf("unexpected %q", t.text)
}

// call evaluates a call to the named function, whose opening
// parenthesis has already been consumed.
func (p *parser) call(name string) (Value, error) {
	lname := strings.ToLower(name)
	switch lname {
	case "rgb", "hsl":
		raw, err := p.rawArgs()
		if err != nil {
			return Value{}, err
		}
		c, err := colors.Parse(name + "(" + raw)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	}
	fn, ok := Functions[lname]
	if !ok {
		return Value{}, &UnsupportedOperationError{Name: name}
	}
	args, err := p.args()
	if err != nil {
		return Value{}, err
	}
	v, err := fn(args...)
	if err != nil {
		return Value{}, fmt.Errorf("eval: %s: %w", lname, err)
	}
	logx.PrintlnDebug("eval: call", lname, args, "=", v)
	return v, nil
}

// args parses the comma separated arguments of a call
// up to and including the closing parenthesis.
func (p *parser) args() ([]Value, error) {
	if p.peek().tt == css.RightParenthesisToken {
		p.next()
		return nil, nil
	}
	var args []Value
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		t := p.next()
		switch t.tt {
		case css.CommaToken:
			continue
		case css.RightParenthesisToken:
			return args, nil
		case css.ErrorToken:
			return nil, p.errorf("missing closing parenthesis")
		default:
			return nil, p.errorf("unexpected %q in arguments", t.text)
		}
	}
}

// rawArgs returns the source text of the arguments of a call
// up to and including the closing parenthesis.
func (p *parser) rawArgs() (string, error) {
	var sb strings.Builder
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++
		sb.WriteString(t.text)
		if t.tt == css.RightParenthesisToken {
			return sb.String(), nil
		}
	}
	return "", p.errorf("missing closing parenthesis")
}

// unquote returns the contents of a string token. The lexer also
// returns strings that run to the end of the input without a
// closing quote, which are an error.
func (p *parser) unquote(text string) (string, error) {
	n := len(text)
	if n < 2 || text[n-1] != text[0] || escaped(text, n-1) {
		return "", p.errorf("unterminated string %s", text)
	}
	return text[1 : n-1], nil
}

// escaped returns whether the byte at index i of s
// is preceded by an odd number of backslashes.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func (p *parser) number(text string) (Value, error) {
	i := numberPrefix(text)
	n, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return Value{}, p.errorf("invalid number %q", text)
	}
	return Value{Kind: Number, Num: n, Unit: strings.ToLower(text[i:])}, nil
}

// numberPrefix returns the length of the numeric part of a
// number, percentage or dimension token such as 1.5e2deg.
func numberPrefix(s string) int {
	isDigit := func(i int) bool { return i < len(s) && s[i] >= '0' && s[i] <= '9' }
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for isDigit(i) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for isDigit(i) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if isDigit(j) {
			i = j
			for isDigit(i) {
				i++
			}
		}
	}
	return i
}
