// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"
	"slices"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
)

// Func is a function that can be called from an expression.
type Func func(args ...Value) (Value, error)

// Functions are the functions available to expressions, by name.
var Functions = map[string]Func{
	"hsl-to-rgb":         HSLToRGB,
	"relative-luminance": RelativeLuminance,
	"colour-difference":  ColourDifference,
	"contrast-ratio":     ColourDifference,
	"parse-color":        ParseColor,
	"passes":             Passes,
}

// FunctionNames returns the sorted names of all [Functions].
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HSLToRGB converts an HSL color to RGB. It accepts either a single
// color, typically written as hsl(h, s%, l%), or the hue followed by
// the saturation and lightness in percent. The hue is in degrees unless
// it has a grad, rad or turn unit.
func HSLToRGB(args ...Value) (Value, error) {
	switch len(args) {
	case 1:
		c, err := args[0].AsColor()
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	case 3:
		var hsl [3]float64
		for i, a := range args {
			n, err := a.AsNumber()
			if err != nil {
				return Value{}, err
			}
			switch {
			case i == 0:
				n, err = colors.HueDegrees(n, a.Unit)
				if err != nil {
					return Value{}, err
				}
			case a.Unit != "" && a.Unit != "%":
				return Value{}, fmt.Errorf("expected a percentage but got %s", a)
			}
			hsl[i] = n
		}
		return ColorValue(colors.HSLToRGB(hsl[0], hsl[1], hsl[2])), nil
	}
	return Value{}, &ArgumentError{Func: "hsl-to-rgb", Want: "1 or 3", Got: len(args)}
}

// RelativeLuminance returns the relative luminance of a color.
func RelativeLuminance(args ...Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, &ArgumentError{Func: "relative-luminance", Want: "1", Got: len(args)}
	}
	c, err := args[0].AsColor()
	if err != nil {
		return Value{}, err
	}
	return NumberValue(contrast.RelativeLuminance(c)), nil
}

// ColourDifference returns the contrast ratio between two colors.
func ColourDifference(args ...Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, &ArgumentError{Func: "colour-difference", Want: "2", Got: len(args)}
	}
	a, b, err := colorPair(args)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(contrast.ColourDifference(a, b)), nil
}

// ParseColor returns the color specified by a string or color literal.
func ParseColor(args ...Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, &ArgumentError{Func: "parse-color", Want: "1", Got: len(args)}
	}
	c, err := args[0].AsColor()
	if err != nil {
		return Value{}, err
	}
	return ColorValue(c), nil
}

// Passes returns whether the contrast ratio between two colors meets
// the level given as the optional third argument, which defaults to AA.
func Passes(args ...Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, &ArgumentError{Func: "passes", Want: "2 or 3", Got: len(args)}
	}
	a, b, err := colorPair(args)
	if err != nil {
		return Value{}, err
	}
	level := contrast.AA
	if len(args) == 3 {
		level, err = args[2].AsLevel()
		if err != nil {
			return Value{}, err
		}
	}
	_, ok := contrast.Check(a, b, level)
	return BoolValue(ok), nil
}

func colorPair(args []Value) (a, b colors.RGB, err error) {
	a, err = args[0].AsColor()
	if err != nil {
		return
	}
	b, err = args[1].AsColor()
	return
}
