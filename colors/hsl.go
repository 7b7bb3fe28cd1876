// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strings"
)

// HSL represents a color in terms of hue (in degrees),
// saturation and lightness (both as percentages from 0 to 100).
type HSL struct {
	H, S, L float64
}

// NewHSL returns a new [HSL] color with the given hue, saturation, and lightness.
func NewHSL(h, s, l float64) HSL {
	return HSL{h, s, l}
}

// RGB converts the HSL color to an [RGB] color; see [HSLToRGB].
func (h HSL) RGB() RGB {
	return HSLToRGB(h.H, h.S, h.L)
}

// RGBA implements [image/color.Color].
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.RGB().RGBA()
}

// String returns the color in CSS functional notation, hsl(h, s%, l%).
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// HueDegrees converts a hue in the given CSS angle unit to degrees.
// An empty unit means degrees. The unit is case-insensitive.
func HueDegrees(v float64, unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "", "deg":
		return v, nil
	case "grad":
		return v * 0.9, nil
	case "rad":
		return v * 180 / math.Pi, nil
	case "turn":
		return v * 360, nil
	}
	return 0, fmt.Errorf("colors: invalid hue unit %q: expected deg, grad, rad or turn", unit)
}

// HSLToRGB converts the given hue (in degrees), saturation and lightness
// (both percentages from 0 to 100) to an [RGB] color. The hue is reduced
// modulo 360, and the saturation and lightness are clamped to [0, 100].
// Each channel is rounded to the nearest integer.
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	s = min(max(s, 0), 100) / 100
	l = min(max(l, 0), 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{
		R: clampChannel((r + m) * 255),
		G: clampChannel((g + m) * 255),
		B: clampChannel((b + m) * 255),
	}
}
