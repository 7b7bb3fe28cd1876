// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the contrast tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/lint"
	"github.com/muesli/termenv"
)

// Config is the configuration for the contrast tool. It can be
// set from a contrast.toml file in the current directory.
type Config struct {

	// Args are the arguments of the command: colors,
	// an expression, or files, depending on the command.
	Args []string `posarg:"leftover" required:"-"`

	// Level is the WCAG conformance level to check against:
	// aa, aa-large, aaa or aaa-large.
	Level contrast.Level `default:"aa"`

	// Strict makes colors that can not be parsed in linted
	// files an error instead of a warning.
	Strict bool `cmd:"lint"`

	// Watch keeps running after linting and lints
	// the files again whenever they change.
	Watch bool `cmd:"lint" flag:"w,watch"`
}

func (c *Config) lintOptions() lint.Options {
	return lint.Options{Level: c.Level, Strict: c.Strict}
}

// args checks that there are n arguments.
func (c *Config) args(cmd string, n int, what string) error {
	if len(c.Args) != n {
		return fmt.Errorf("%s: expected %s, got %d argument(s)", cmd, what, len(c.Args))
	}
	return nil
}

// joined returns all of the arguments joined with spaces, so
// that values like rgb(0, 0, 0) do not need to be quoted.
func (c *Config) joined(cmd, what string) (string, error) {
	if len(c.Args) == 0 {
		return "", fmt.Errorf("%s: expected %s", cmd, what)
	}
	return strings.Join(c.Args, " "), nil
}

func stdout() *termenv.Output {
	return termenv.NewOutput(os.Stdout)
}
