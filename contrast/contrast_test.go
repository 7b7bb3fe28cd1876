// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"testing"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

var hexColors = []string{
	"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff", "#808080",
	"#ffff00", "#0066cc", "#666666", "#333333", "#cccccc", "#010101",
	"#fefefe", "#cf649a", "#123456", "#fedcba",
}

func TestRelativeLuminance(t *testing.T) {
	type data struct {
		color string
		want  float64
	}
	tests := []data{
		{"#ffffff", 1},
		{"#000000", 0},
		{"#ff0000", 0.2126},
		{"#00ff00", 0.7152},
		{"#0000ff", 0.0722},
		{"#808080", 0.21586},
		{"#333333", 0.033105},
		{"#010101", 0.000304},
	}
	for i, test := range tests {
		res := RelativeLuminance(colors.MustParse(test.color))
		tolassert.EqualTol(t, test.want, res, 1e-4, i)
	}
	tolassert.EqualTol(t, 0, RelativeLuminance(colors.MustParse("#010101")), 0.1)
	tolassert.EqualTol(t, 1, RelativeLuminance(colors.MustParse("#fefefe")), 0.1)
}

func TestRelativeLuminanceRange(t *testing.T) {
	for _, s := range hexColors {
		l := RelativeLuminance(colors.MustParse(s))
		assert.GreaterOrEqual(t, l, 0.0, s)
		assert.LessOrEqual(t, l, 1.0, s)
	}
}

func TestRelativeLuminanceMonotonic(t *testing.T) {
	prev := [3]float64{-1, -1, -1}
	for v := 0; v <= 255; v++ {
		cur := [3]float64{
			RelativeLuminance(colors.RGB{R: uint8(v)}),
			RelativeLuminance(colors.RGB{G: uint8(v)}),
			RelativeLuminance(colors.RGB{B: uint8(v)}),
		}
		for i := range cur {
			assert.Greater(t, cur[i], prev[i], "channel %d value %d", i, v)
		}
		prev = cur
	}
}

func TestLinearComponent(t *testing.T) {
	assert.Equal(t, 0.0, LinearComponent(0))
	tolassert.EqualTol(t, 1, LinearComponent(255), 1e-12)
	tolassert.EqualTol(t, 10.0/255/12.92, LinearComponent(10), 1e-12)
	tolassert.EqualTol(t, 0.21586, LinearComponent(128), 1e-4)
}

func TestColourDifference(t *testing.T) {
	type data struct {
		a    string
		b    string
		want float64
	}
	tests := []data{
		{"#000000", "#ffffff", 21},
		{"#ffffff", "#000000", 21},
		{"#ff0000", "#ff0000", 1},
		{"#0000ff", "#ffffff", 8.59},
		{"#0066cc", "#ffffff", 5.57},
		{"#333333", "#ffffff", 12.63},
		{"rgb(0,0,0)", "rgb(255,255,255)", 21},
		{"hsl(0,0%,0%)", "hsl(0,0%,100%)", 21},
		{"black", "white", 21},
	}
	for i, test := range tests {
		res, err := ColourDifferenceString(test.a, test.b)
		assert.NoError(t, err)
		tolassert.EqualTol(t, test.want, res, 0.01, i)
	}
}

func TestColourDifferenceProperties(t *testing.T) {
	for _, a := range hexColors {
		ca := colors.MustParse(a)
		assert.Equal(t, 1.0, ColourDifference(ca, ca), a)
		for _, b := range hexColors {
			cb := colors.MustParse(b)
			r := ColourDifference(ca, cb)
			assert.Equal(t, r, ColourDifference(cb, ca), a+" "+b)
			assert.GreaterOrEqual(t, r, 1.0)
			assert.LessOrEqual(t, r, 21.0)
		}
	}
	assert.Equal(t, ColourDifference(colors.Black, colors.White), ContrastRatio(colors.White, colors.Black))
}

func TestColourDifferenceFormats(t *testing.T) {
	hex, err := ColourDifferenceString("#000000", "#ffffff")
	assert.NoError(t, err)
	rgb, err := ColourDifferenceString("rgb(0,0,0)", "rgb(255,255,255)")
	assert.NoError(t, err)
	hsl, err := ColourDifferenceString("hsl(0,0%,0%)", "hsl(0,0%,100%)")
	assert.NoError(t, err)
	tolassert.EqualTol(t, hex, rgb, 0.1)
	tolassert.EqualTol(t, hex, hsl, 0.1)

	hex, err = ColourDifferenceString("#cf649a", "#0000ff")
	assert.NoError(t, err)
	hsl, err = ColourDifferenceString("hsl(330, 53%, 60%)", "hsl(240, 100%, 50%)")
	assert.NoError(t, err)
	tolassert.EqualTol(t, hex, hsl, 0.1)
}

func TestColourDifferenceStringError(t *testing.T) {
	_, err := ColourDifferenceString("not-a-color", "#fff")
	var pe *colors.ParseError
	if assert.True(t, errors.As(err, &pe)) {
		assert.Equal(t, "not-a-color", pe.Input)
	}
	_, err = ColourDifferenceString("#fff", "")
	assert.True(t, errors.As(err, &pe))

	_, err = RelativeLuminanceString("nope")
	assert.True(t, errors.As(err, &pe))
	l, err := RelativeLuminanceString("white")
	assert.NoError(t, err)
	tolassert.EqualTol(t, 1, l, 1e-9)
}

func TestWCAGCompliance(t *testing.T) {
	for _, fg := range []string{"#000000", "#0066cc", "#333333"} {
		r, ok := Check(colors.MustParse(fg), colors.White, AA)
		assert.True(t, ok, fg)
		assert.GreaterOrEqual(t, r, 4.5, fg)
	}
	for _, fg := range []string{"#ffff00", "#cccccc"} {
		r, ok := Check(colors.MustParse(fg), colors.White, AA)
		assert.False(t, ok, fg)
		assert.Less(t, r, 4.5, fg)
	}
	for _, fg := range []string{"#0066cc", "#666666", "#ff0000"} {
		r := ColourDifference(colors.MustParse(fg), colors.White)
		assert.Greater(t, r, 3.0, fg)
	}
}
