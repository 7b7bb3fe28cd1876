// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"
	"strconv"
)

// UnsupportedOperationError is returned when an expression
// calls a function that is not in [Functions].
type UnsupportedOperationError struct {
	// Name is the name of the function, including any namespace.
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return "eval: undefined function " + strconv.Quote(e.Name)
}

// ArgumentError is returned when a function is called
// with the wrong number of arguments.
type ArgumentError struct {
	// Func is the name of the function.
	Func string

	// Want describes the accepted number of arguments.
	Want string

	// Got is the number of arguments passed.
	Got int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("eval: %s: expected %s arguments but got %d", e.Func, e.Want, e.Got)
}

// SyntaxError is returned when an expression can not be parsed.
type SyntaxError struct {
	// Expr is the expression being parsed.
	Expr string

	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("eval: syntax error in %q: %s", e.Expr, e.Msg)
}
