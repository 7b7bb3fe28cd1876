// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command contrast checks colors against the WCAG 2 contrast requirements.
package main

import (
	"cogentcore.org/contrast/cmd/contrast/cmd"
	"cogentcore.org/core/cli"
)

func main() {
	opts := cli.DefaultOptions("contrast", "Contrast checks the contrast of color pairs against the WCAG 2 conformance levels.")
	opts.DefaultFiles = []string{"contrast.toml"}
	opts.PrintSuccess = false
	cli.Run(opts, &cmd.Config{}, cmd.Ratio, cmd.Luminance, cmd.HslToRgb, cmd.Parse, cmd.Eval, cmd.Expand, cmd.Lint)
}
