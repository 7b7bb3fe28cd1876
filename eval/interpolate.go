// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"
	"strings"
)

// Interpolate returns the given text with every #{expr} interpolation
// replaced by the result of evaluating expr with [Eval]. It stops at
// the first expression that fails to evaluate.
func Interpolate(src string) (string, error) {
	var sb strings.Builder
	rest := src
	for {
		i := strings.Index(rest, "#{")
		if i < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		sb.WriteString(rest[:i])
		rest = rest[i+2:]
		j := interpolationEnd(rest)
		if j < 0 {
			line := strings.Count(src[:len(src)-len(rest)], "\n") + 1
			return "", &SyntaxError{Expr: src, Msg: fmt.Sprintf("unterminated interpolation on line %d", line)}
		}
		v, err := Eval(rest[:j])
		if err != nil {
			return "", err
		}
		sb.WriteString(v.String())
		rest = rest[j+1:]
	}
}

// interpolationEnd returns the index of the } that closes the
// interpolation at the start of s, skipping any } inside quoted
// strings, or -1 if there is none.
func interpolationEnd(s string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0 && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '}':
			return i
		}
	}
	return -1
}
