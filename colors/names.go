// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Names maps the lowercase CSS color keywords to their [RGB] values.
// It contains the SVG 1.1 keywords of [colornames.Map] and the CSS Color
// Level 4 rebeccapurple. The transparent keyword is not included since
// it has no opaque equivalent.
var Names = namesFrom(colornames.Map)

func namesFrom(m map[string]color.RGBA) map[string]RGB {
	names := make(map[string]RGB, len(m)+1)
	for name, c := range m {
		names[name] = RGB{c.R, c.G, c.B}
	}
	names["rebeccapurple"] = RGB{0x66, 0x33, 0x99}
	return names
}
