// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/contrast/lint"
	"cogentcore.org/core/base/errors"
	"github.com/muesli/termenv"
)

// Lint checks the color pairs in the given stylesheets (.css and .scss)
// and pair files (.toml, .yaml and .yml). It fails if any pair does not
// meet its level. With -watch, it lints the files again whenever they change.
func Lint(c *Config) error {
	o := stdout()
	if !c.Watch {
		return lintFiles(c, o)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watch(ctx, c, o)
}

func lintFiles(c *Config, o *termenv.Output) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("lint: expected at least one file")
	}
	fs, err := lint.Files(c.Args, c.lintOptions())
	for _, f := range fs {
		printFinding(o, f)
	}
	if err != nil {
		return err
	}
	n := lint.Failed(fs)
	fmt.Fprintf(o, "%d of %d pairs pass\n", len(fs)-n, len(fs))
	if n > 0 {
		return fmt.Errorf("lint: %d of %d pairs fail", n, len(fs))
	}
	return nil
}

// watch lints the files and then lints them again on every
// change until the context is done.
func watch(ctx context.Context, c *Config, o *termenv.Output) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("lint: expected at least one file")
	}
	w, err := lint.NewWatcher(c.Args...)
	if err != nil {
		return err
	}
	defer w.Close()
	errors.Log(lintFiles(c, o))
	return w.Run(ctx, func(path string) {
		slog.Info("linting again", "changed", path)
		errors.Log(lintFiles(c, o))
	})
}
