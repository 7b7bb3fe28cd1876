// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
)

// Kinds of [Value].
type Kind int32 //enums:enum -transform kebab

const (
	// Color is a [colors.RGB] color value.
	Color Kind = iota

	// Number is a number with an optional unit such as % or deg.
	Number

	// Bool is a boolean value.
	Bool

	// Ident is a bare identifier, such as a color name or a level.
	Ident

	// String is a quoted string.
	String
)

// Value is the result of evaluating an expression or one of its arguments.
type Value struct {
	Kind Kind

	// Color is the value for [Color] values.
	Color colors.RGB

	// Num is the value for [Number] values.
	Num float64

	// Unit is the unit of [Number] values, if any.
	Unit string

	// Bool is the value for [Bool] values.
	Bool bool

	// Str is the text of [Ident] and [String] values.
	Str string
}

// ColorValue returns a new [Color] value.
func ColorValue(c colors.RGB) Value {
	return Value{Kind: Color, Color: c}
}

// NumberValue returns a new unitless [Number] value.
func NumberValue(n float64) Value {
	return Value{Kind: Number, Num: n}
}

// BoolValue returns a new [Bool] value.
func BoolValue(b bool) Value {
	return Value{Kind: Bool, Bool: b}
}

// String returns the value formatted the way a stylesheet
// preprocessor prints it: colors as rgb(r, g, b), and numbers
// with at most 10 decimal places.
func (v Value) String() string {
	switch v.Kind {
	case Color:
		return v.Color.String()
	case Number:
		return FormatNumber(v.Num) + v.Unit
	case Bool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// FormatNumber formats the given number with at most 10 decimal places
// and no trailing zeros.
func FormatNumber(n float64) string {
	r := math.Round(n*1e10) / 1e10
	if r == 0 {
		r = 0 // no negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// AsColor returns the value as a color. Identifiers are
// looked up as color names and strings are parsed with [colors.Parse].
func (v Value) AsColor() (colors.RGB, error) {
	switch v.Kind {
	case Color:
		return v.Color, nil
	case Ident:
		return colors.FromName(v.Str)
	case String:
		return colors.Parse(v.Str)
	}
	return colors.RGB{}, fmt.Errorf("expected a color but got %s %s", v.Kind, v)
}

// AsNumber returns the numeric value of a [Number] value.
func (v Value) AsNumber() (float64, error) {
	if v.Kind != Number {
		return 0, fmt.Errorf("expected a number but got %s %s", v.Kind, v)
	}
	return v.Num, nil
}

// AsLevel returns the value as a [contrast.Level].
func (v Value) AsLevel() (contrast.Level, error) {
	if v.Kind != Ident && v.Kind != String {
		return contrast.AA, fmt.Errorf("expected a level but got %s %s", v.Kind, v)
	}
	return contrast.ParseLevel(v.Str)
}
