// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/contrast/eval"
	"github.com/muesli/termenv"
)

// Eval evaluates an expression such as
// contrast.colour-difference(#000, white).
func Eval(c *Config) error {
	return evalExpr(c, stdout())
}

func evalExpr(c *Config, o *termenv.Output) error {
	expr, err := c.joined("eval", "an expression")
	if err != nil {
		return err
	}
	v, err := eval.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(o, v.String())
	return nil
}

// Expand prints the given files with all #{...}
// interpolations replaced by their values.
// A file name of - reads standard input.
func Expand(c *Config) error {
	return expand(c, os.Stdin, stdout())
}

func expand(c *Config, stdin io.Reader, o *termenv.Output) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("expand: expected at least one file")
	}
	for _, path := range c.Args {
		var b []byte
		var err error
		if path == "-" {
			b, err = io.ReadAll(stdin)
		} else {
			b, err = os.ReadFile(path)
		}
		if err != nil {
			return err
		}
		out, err := eval.Interpolate(string(b))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		io.WriteString(o, out)
	}
	return nil
}
