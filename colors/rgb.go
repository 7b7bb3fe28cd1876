// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the RGB color type used throughout the
// contrast tools, along with parsing of textual colors (hex, rgb(),
// hsl() and CSS color names) and HSL to RGB conversion.
package colors

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is an opaque color in the sRGB color space,
// with each channel in the range [0, 255].
type RGB struct {
	R, G, B uint8
}

// Black and White are the two extremes of the relative luminance scale.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// RGBA implements [color.Color]. RGB colors are always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// String returns the color in CSS functional notation, rgb(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts the given [color.Color] to an [RGB] color,
// dropping any transparency.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// clampChannel rounds v to the nearest integer (half away from zero)
// and clamps it to a valid channel value.
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(min(max(math.Round(v), 0), 255))
}

// clampInt clamps an integer channel value to [0, 255].
func clampInt(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
