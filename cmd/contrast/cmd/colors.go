// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/eval"
	"cogentcore.org/contrast/lint"
	"cogentcore.org/core/base/logx"
	"github.com/muesli/termenv"
)

// Ratio prints the contrast ratio of a foreground and a background
// color and whether it meets the conformance level.
func Ratio(c *Config) error {
	return ratio(c, stdout())
}

func ratio(c *Config, o *termenv.Output) error {
	if err := c.args("ratio", 2, "a foreground and a background color"); err != nil {
		return err
	}
	fg, err := colors.Parse(c.Args[0])
	if err != nil {
		return fmt.Errorf("ratio: foreground: %w", err)
	}
	bg, err := colors.Parse(c.Args[1])
	if err != nil {
		return fmt.Errorf("ratio: background: %w", err)
	}
	printFinding(o, lint.NewFinding("", fg, bg, c.Level))
	return nil
}

// Luminance prints the relative luminance of a color.
func Luminance(c *Config) error {
	return luminance(c, stdout())
}

func luminance(c *Config, o *termenv.Output) error {
	s, err := c.joined("luminance", "a color")
	if err != nil {
		return err
	}
	lum, err := contrast.RelativeLuminanceString(s)
	if err != nil {
		return fmt.Errorf("luminance: %w", err)
	}
	fmt.Fprintln(o, eval.FormatNumber(lum))
	return nil
}

// HslToRgb prints the sRGB color of a hue in degrees and a
// saturation and lightness in percent, such as 210 50% 40%.
func HslToRgb(c *Config) error {
	return hslToRGB(c, stdout())
}

func hslToRGB(c *Config, o *termenv.Output) error {
	if err := c.args("hsl-to-rgb", 3, "a hue, saturation and lightness"); err != nil {
		return err
	}
	var v [3]float64
	for i, a := range c.Args {
		a = strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(a)), "%"), "deg")
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("hsl-to-rgb: invalid number %q", c.Args[i])
		}
		v[i] = f
	}
	rgb := colors.HSLToRGB(v[0], v[1], v[2])
	logx.PrintlnDebug("hsl-to-rgb:", colors.NewHSL(v[0], v[1], v[2]), "->", rgb.Hex())
	fmt.Fprintln(o, rgb.String())
	return nil
}

// Parse prints a color in rgb() and hex notation.
func Parse(c *Config) error {
	return parse(c, stdout())
}

func parse(c *Config, o *termenv.Output) error {
	s, err := c.joined("parse", "a color")
	if err != nil {
		return err
	}
	rgb, err := colors.Parse(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	fmt.Fprintf(o, "%s%s %s\n", swatch(o, rgb, rgb), rgb.String(), rgb.Hex())
	return nil
}
