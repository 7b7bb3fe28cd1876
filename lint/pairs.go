// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lint

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Pair is a named foreground and background color pair,
// typically a pair of design tokens used together.
type Pair struct {

	// Name identifies the pair in findings.
	Name string `toml:"name" yaml:"name"`

	// Foreground is the text color, in any syntax accepted by [colors.Parse].
	Foreground string `toml:"foreground" yaml:"foreground"`

	// Background is the background color, in any syntax accepted by [colors.Parse].
	Background string `toml:"background" yaml:"background"`

	// Level overrides the level of the pair file for this pair.
	Level *contrast.Level `toml:"level,omitempty" yaml:"level,omitempty"`
}

// PairFile is a list of color pairs to check, read from
// a TOML or YAML file such as:
//
//	level = "AA"
//
//	[[pairs]]
//	name = "body"
//	foreground = "#333333"
//	background = "white"
type PairFile struct {

	// Path is the file the pairs were read from, if any.
	Path string `toml:"-" yaml:"-"`

	// Level is the level for all pairs that do not specify one.
	// If it is nil, the level of the [Options] is used.
	Level *contrast.Level `toml:"level,omitempty" yaml:"level,omitempty"`

	// Pairs are the pairs to check.
	Pairs []Pair `toml:"pairs" yaml:"pairs"`
}

// Formats of pair files.
const (
	TOML = "toml"
	YAML = "yaml"
)

// FormatOf returns the pair file format of the given path, based
// on its extension, or an error if it is not a known format.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("lint: unknown file type %q: expected .css, .scss, .toml, .yaml or .yml", path)
}

// OpenPairs reads the pair file at the given path.
func OpenPairs(path string) (*PairFile, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pf, err := ReadPairs(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pf.Path = path
	return pf, nil
}

// decoder is implemented by the TOML and YAML decoders.
type decoder interface {
	Decode(v any) error
}

// decoders are the functions that make a decoder for each format.
// Unknown fields are an error in all of them.
var decoders = map[string]func(r io.Reader) decoder{
	TOML: func(r io.Reader) decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	},
	YAML: func(r io.Reader) decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	},
}

// ReadPairs reads a pair file in the given format ([TOML] or [YAML])
// from the given reader. Unknown fields are an error.
func ReadPairs(r io.Reader, format string) (*PairFile, error) {
	df, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("lint: unknown pair file format %q", format)
	}
	pf := &PairFile{}
	// an empty YAML document is an empty pair file
	if err := df(r).Decode(pf); err != nil && err != io.EOF {
		return nil, err
	}
	return pf, nil
}

// Check checks all of the pairs, in order. Pairs with colors that can
// not be parsed are skipped with a warning, or result in an error
// if [Options.Strict] is set.
func (pf *PairFile) Check(opts Options) ([]Finding, error) {
	level := opts.Level
	if pf.Level != nil {
		level = *pf.Level
	}
	var fs []Finding
	for i, p := range pf.Pairs {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("pair %d", i+1)
		}
		if pf.Path != "" {
			name = pf.Path + ": " + name
		}
		fg, err := colors.Parse(p.Foreground)
		if err == nil {
			var bg colors.RGB
			bg, err = colors.Parse(p.Background)
			if err == nil {
				pl := level
				if p.Level != nil {
					pl = *p.Level
				}
				fs = append(fs, NewFinding(name, fg, bg, pl))
				continue
			}
		}
		if opts.Strict {
			return fs, fmt.Errorf("%s: %w", name, err)
		}
		slog.Warn("lint: skipping pair with unparseable color", "pair", name, "err", err)
	}
	return fs, nil
}
