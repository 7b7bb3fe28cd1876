// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/lint"
	"github.com/muesli/termenv"
)

// status returns the styled PASS or FAIL marker of the finding.
func status(o *termenv.Output, f lint.Finding) string {
	color := "2"
	if !f.Pass {
		color = "1"
	}
	return o.String(f.Status()).Foreground(o.Color(color)).Bold().String()
}

// swatch returns a sample of text in the given colors, followed by
// a space. It is empty when the output does not support color.
func swatch(o *termenv.Output, fg, bg colors.RGB) string {
	if o.Profile == termenv.Ascii {
		return ""
	}
	return o.String(" Aa ").Foreground(o.Color(fg.Hex())).Background(o.Color(bg.Hex())).String() + " "
}

func printFinding(o *termenv.Output, f lint.Finding) {
	fmt.Fprintln(o, f.Format(status(o, f), swatch(o, f.Foreground, f.Background)))
}
