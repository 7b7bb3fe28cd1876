// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lint checks foreground and background color pairs in
// stylesheets and in pair files against the WCAG contrast levels.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/eval"
)

// Options are the options for linting.
type Options struct {

	// Level is the conformance level that pairs must meet
	// unless a pair specifies its own level.
	Level contrast.Level

	// Strict makes colors that can not be parsed an error
	// instead of a warning.
	Strict bool
}

// Finding is the result of checking one color pair.
type Finding struct {

	// Source identifies where the pair came from, such as
	// a stylesheet selector or the name of a pair.
	Source string

	// Foreground is the text color.
	Foreground colors.RGB

	// Background is the background color.
	Background colors.RGB

	// Ratio is the contrast ratio between the two colors.
	Ratio float64

	// Level is the level the pair was checked against.
	Level contrast.Level

	// Pass is whether Ratio meets Level.
	Pass bool
}

// NewFinding returns the finding for the given pair of colors.
func NewFinding(source string, fg, bg colors.RGB, level contrast.Level) Finding {
	r, ok := contrast.Check(fg, bg, level)
	return Finding{Source: source, Foreground: fg, Background: bg, Ratio: r, Level: level, Pass: ok}
}

// Status returns PASS or FAIL.
func (f Finding) Status() string {
	if f.Pass {
		return "PASS"
	}
	return "FAIL"
}

func (f Finding) String() string {
	return f.Format(f.Status(), "")
}

// Format returns the finding as text, starting with the given status
// marker and with the given sample of the colors before them. The
// status and sample may be styled for a terminal.
func (f Finding) Format(status, sample string) string {
	src := ""
	if f.Source != "" {
		src = f.Source + ": "
	}
	return fmt.Sprintf("%s %s%s%s on %s: %s:1 (%s, needs %s:1)", status, src, sample,
		f.Foreground.Hex(), f.Background.Hex(), eval.FormatNumber(round2(f.Ratio)), f.Level, eval.FormatNumber(f.Level.Min()))
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// Failed returns the number of findings that did not pass.
func Failed(fs []Finding) int {
	n := 0
	for _, f := range fs {
		if !f.Pass {
			n++
		}
	}
	return n
}

// IsStylesheet returns whether the given file is linted as a stylesheet.
func IsStylesheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss":
		return true
	}
	return false
}

// File lints the given file, which is either a stylesheet
// (.css or .scss) or a pair file (.toml, .yaml or .yml).
func File(path string, opts Options) ([]Finding, error) {
	if IsStylesheet(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Stylesheet(path, string(b), opts)
	}
	pf, err := OpenPairs(path)
	if err != nil {
		return nil, err
	}
	return pf.Check(opts)
}

// Files lints all of the given files in order; see [File].
func Files(paths []string, opts Options) ([]Finding, error) {
	var all []Finding
	for _, path := range paths {
		fs, err := File(path, opts)
		if err != nil {
			return all, err
		}
		all = append(all, fs...)
	}
	return all, nil
}
