// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Syntax describes the color syntaxes accepted by [Parse].
const Syntax = "#rrggbb, #rgb, rgb(r, g, b), hsl(h, s%, l%) or a CSS color name"

// ParseError is returned when a string does not match any
// of the color syntaxes accepted by [Parse].
type ParseError struct {
	// Input is the text that could not be parsed.
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "colors: empty color string: expected " + Syntax
	}
	return "colors: unknown color format " + strconv.Quote(e.Input) + ": expected " + Syntax
}

var (
	rgbPattern = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hexPattern = regexp.MustCompile(`(?i)^#([0-9a-f]{6}|[0-9a-f]{3})$`)
	hslPattern = regexp.MustCompile(`(?i)^hsl\(\s*([-+]?[0-9]*\.?[0-9]+)(deg|grad|rad|turn)?\s*,\s*([-+]?[0-9]*\.?[0-9]+)%?\s*,\s*([-+]?[0-9]*\.?[0-9]+)%?\s*\)$`)
)

// Parse returns the [RGB] color specified by the given string.
// The following forms are tried in order:
//   - rgb(r, g, b), with integer channels clamped to 255
//   - #rrggbb or the #rgb shorthand
//   - hsl(h, s%, l%), converted with [HSLToRGB]
//   - a CSS color name such as red or aqua
//
// All forms are case-insensitive. Parse returns a [*ParseError]
// if the string is empty or matches none of the forms.
func Parse(s string) (RGB, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return RGB{}, &ParseError{Input: s}
	}
	if m := rgbPattern.FindStringSubmatch(str); m != nil {
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				// only overflow can fail here; such a value is
				// necessarily above the maximum channel value
				v = 255
			}
			ch[i] = clampInt(v)
		}
		return RGB{ch[0], ch[1], ch[2]}, nil
	}
	if hexPattern.MatchString(str) {
		return FromHex(str)
	}
	if strings.HasPrefix(strings.ToLower(str), "hsl(") {
		h, err := ParseHSL(str)
		if err != nil {
			return RGB{}, &ParseError{Input: s}
		}
		return h.RGB(), nil
	}
	if c, err := FromName(str); err == nil {
		return c, nil
	}
	return RGB{}, &ParseError{Input: s}
}

// MustParse returns the [RGB] color specified by the given string.
// It panics on any resulting error; see [Parse] for
// more information and a version that returns an error.
func MustParse(s string) RGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHex parses the given #rrggbb or #rgb hex color string.
// The leading # is optional.
func FromHex(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, &ParseError{Input: hex}
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, errors.Join(&ParseError{Input: hex}, err)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// FromName returns the color with the given CSS color name,
// ignoring case.
func FromName(name string) (RGB, error) {
	c, ok := Names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, &ParseError{Input: name}
	}
	return c, nil
}

// ParseHSL parses a hsl(h, s%, l%) string into an [HSL] color.
// The hue may carry a deg, grad, rad or turn unit (see [HueDegrees]),
// and the percent signs are optional.
func ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return HSL{}, &ParseError{Input: s}
	}
	var v [3]float64
	for i, g := range []string{m[1], m[3], m[4]} {
		f, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return HSL{}, errors.Join(&ParseError{Input: s}, err)
		}
		v[i] = f
	}
	h, err := HueDegrees(v[0], m[2])
	if err != nil {
		return HSL{}, errors.Join(&ParseError{Input: s}, err)
	}
	return HSL{h, v[1], v[2]}, nil
}
