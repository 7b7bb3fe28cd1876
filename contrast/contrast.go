// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast computes the WCAG 2.x relative luminance of colors
// and the contrast ratio between pairs of colors, and checks contrast
// ratios against the WCAG conformance levels.
package contrast

import (
	"fmt"
	"math"

	"cogentcore.org/contrast/colors"
)

// LinearComponent converts the given gamma-encoded sRGB channel value
// to linear light in the range [0, 1], using the WCAG 2.x threshold.
func LinearComponent(v uint8) float64 {
	cs := float64(v) / 255
	if cs <= 0.03928 {
		return cs / 12.92
	}
	return math.Pow((cs+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of the given color,
// between 0 (black) and 1 (white).
func RelativeLuminance(c colors.RGB) float64 {
	r := LinearComponent(c.R)
	g := LinearComponent(c.G)
	b := LinearComponent(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ColourDifference returns the WCAG contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21, and does not depend on
// the order of the colors.
func ColourDifference(a, b colors.RGB) float64 {
	return RatioOfLuminances(RelativeLuminance(a), RelativeLuminance(b))
}

// ContrastRatio is an alias for [ColourDifference].
func ContrastRatio(a, b colors.RGB) float64 {
	return ColourDifference(a, b)
}

// RatioOfLuminances returns the contrast ratio of two relative luminance values.
func RatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// ColourDifferenceString returns the contrast ratio between the two colors
// specified by the given strings, which are parsed with [colors.Parse].
func ColourDifferenceString(a, b string) (float64, error) {
	ca, err := colors.Parse(a)
	if err != nil {
		return 0, fmt.Errorf("first color: %w", err)
	}
	cb, err := colors.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("second color: %w", err)
	}
	return ColourDifference(ca, cb), nil
}

// RelativeLuminanceString returns the relative luminance of the color specified
// by the given string, which is parsed with [colors.Parse].
func RelativeLuminanceString(s string) (float64, error) {
	c, err := colors.Parse(s)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}

// Check returns the contrast ratio between the two colors and
// whether it meets the given level.
func Check(a, b colors.RGB, l Level) (float64, bool) {
	r := ColourDifference(a, b)
	return r, Passes(r, l)
}
