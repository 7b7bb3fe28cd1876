// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lint

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/eval"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// maxVarDepth is the maximum depth of nested var() references.
const maxVarDepth = 16

var varPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*(.*?))?\s*\)$`)

// Stylesheet lints the given stylesheet source, using name to identify it
// in findings. Any #{...} interpolations are expanded with [eval.Interpolate]
// first. Every rule that sets both color and background-color (or a
// background consisting of a single color) results in one finding.
// var(--name) references are resolved against the custom properties
// declared anywhere in the stylesheet.
func Stylesheet(name, src string, opts Options) ([]Finding, error) {
	src, err := eval.Interpolate(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	l := &sheetLinter{name: name, opts: opts, vars: map[string]string{}}
	l.collectVars(sheet.Rules)
	if err := l.lintRules(sheet.Rules); err != nil {
		return l.findings, err
	}
	return l.findings, nil
}

type sheetLinter struct {
	name     string
	opts     Options
	vars     map[string]string
	findings []Finding
}

func (l *sheetLinter) collectVars(rules []*css.Rule) {
	for _, r := range rules {
		for _, d := range r.Declarations {
			if strings.HasPrefix(d.Property, "--") {
				l.vars[d.Property] = d.Value
			}
		}
		l.collectVars(r.Rules)
	}
}

func (l *sheetLinter) lintRules(rules []*css.Rule) error {
	for _, r := range rules {
		if r.Kind == css.AtRule {
			if err := l.lintRules(r.Rules); err != nil {
				return err
			}
			continue
		}
		if err := l.lintRule(r); err != nil {
			return err
		}
	}
	return nil
}

func (l *sheetLinter) lintRule(r *css.Rule) error {
	decls := map[string]string{}
	for _, d := range r.Declarations {
		decls[strings.ToLower(d.Property)] = d.Value
	}
	fgv, hasFg := decls["color"]
	bgv, hasBg := decls["background-color"]
	if !hasBg {
		bgv, hasBg = decls["background"]
	}
	if !hasFg || !hasBg {
		return nil
	}
	source := l.name + ": " + strings.Join(r.Selectors, ", ")
	if len(r.Selectors) == 0 {
		source = l.name + ": " + r.Prelude
	}
	fg, err := l.color(fgv)
	if err != nil {
		return l.skip(source, "color", fgv, err)
	}
	bg, err := l.color(bgv)
	if err != nil {
		return l.skip(source, "background", bgv, err)
	}
	l.findings = append(l.findings, NewFinding(source, fg, bg, l.opts.Level))
	return nil
}

// skip handles a value that could not be parsed as a color,
// returning an error only in strict mode.
func (l *sheetLinter) skip(source, property, value string, err error) error {
	if l.opts.Strict {
		return fmt.Errorf("%s: %s %q: %w", source, property, value, err)
	}
	slog.Warn("lint: skipping rule with unparseable color", "source", source, "property", property, "value", value, "err", err)
	return nil
}

// color resolves any var() references in the given value and parses it.
func (l *sheetLinter) color(value string) (colors.RGB, error) {
	v, err := l.resolve(value, 0)
	if err != nil {
		return colors.RGB{}, err
	}
	return colors.Parse(v)
}

func (l *sheetLinter) resolve(value string, depth int) (string, error) {
	value = strings.TrimSpace(value)
	m := varPattern.FindStringSubmatch(value)
	if m == nil {
		return value, nil
	}
	if depth >= maxVarDepth {
		return "", fmt.Errorf("var() references nested too deeply in %q", value)
	}
	if v, ok := l.vars[m[1]]; ok {
		return l.resolve(v, depth+1)
	}
	if m[2] != "" {
		return l.resolve(m[2], depth+1)
	}
	return "", fmt.Errorf("undefined custom property %s", m[1])
}
