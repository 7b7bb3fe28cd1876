// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/eval"
	"cogentcore.org/core/base/tolassert"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(fn func(c *Config, o *termenv.Output) error, c *Config) (string, error) {
	var b bytes.Buffer
	err := fn(c, termenv.NewOutput(&b, termenv.WithProfile(termenv.Ascii)))
	return b.String(), err
}

func TestRatio(t *testing.T) {
	out, err := run(ratio, &Config{Args: []string{"#000", "white"}, Level: contrast.AA})
	require.NoError(t, err)
	assert.Equal(t, "PASS #000000 on #ffffff: 21:1 (aa, needs 4.5:1)\n", out)

	out, err = run(ratio, &Config{Args: []string{"#0066cc", "#fff"}, Level: contrast.AAA})
	require.NoError(t, err)
	assert.Equal(t, "FAIL #0066cc on #ffffff: 5.57:1 (aaa, needs 7:1)\n", out)

	out, err = run(ratio, &Config{Args: []string{"#0066cc", "#fff"}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PASS"), out)

	_, err = run(ratio, &Config{Args: []string{"#000"}})
	assert.ErrorContains(t, err, "ratio: expected")

	_, err = run(ratio, &Config{Args: []string{"#000", "notacolor"}})
	var pe *colors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "notacolor", pe.Input)
	assert.ErrorContains(t, err, "background")
}

func TestLuminance(t *testing.T) {
	out, err := run(luminance, &Config{Args: []string{"rgb(0,", "0,", "0)"}})
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(luminance, &Config{Args: []string{"white"}})
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = run(luminance, &Config{Args: []string{"#808080"}})
	require.NoError(t, err)
	lum, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.21586, lum, 1e-4)

	_, err = run(luminance, &Config{})
	assert.Error(t, err)
	_, err = run(luminance, &Config{Args: []string{"#12"}})
	assert.Error(t, err)
}

func TestHSLToRGB(t *testing.T) {
	out, err := run(hslToRGB, &Config{Args: []string{"0", "100%", "50%"}})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 0, 0)\n", out)

	out, err = run(hslToRGB, &Config{Args: []string{"120deg", "100", "25%"}})
	require.NoError(t, err)
	assert.Equal(t, "rgb(0, 128, 0)\n", out)

	_, err = run(hslToRGB, &Config{Args: []string{"0", "100%"}})
	assert.Error(t, err)
	_, err = run(hslToRGB, &Config{Args: []string{"red", "100%", "50%"}})
	assert.ErrorContains(t, err, `"red"`)
}

func TestParse(t *testing.T) {
	out, err := run(parse, &Config{Args: []string{"RebeccaPurple"}})
	require.NoError(t, err)
	assert.Equal(t, "rgb(102, 51, 153) #663399\n", out)

	out, err = run(parse, &Config{Args: []string{"hsl(0,", "100%,", "50%)"}})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 0, 0) #ff0000\n", out)

	_, err = run(parse, &Config{Args: []string{"#ggg"}})
	var pe *colors.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestEval(t *testing.T) {
	out, err := run(evalExpr, &Config{Args: []string{"contrast.colour-difference(#000000,", "#ffffff)"}})
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)

	out, err = run(evalExpr, &Config{Args: []string{"hsl-to-rgb(0, 100%, 50%)"}})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 0, 0)\n", out)

	_, err = run(evalExpr, &Config{Args: []string{"contrast.nonexistent-function(1)"}})
	var ue *eval.UnsupportedOperationError
	assert.ErrorAs(t, err, &ue)

	_, err = run(evalExpr, &Config{})
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.scss")
	require.NoError(t, os.WriteFile(path, []byte("a { --c: #{colour-difference(#000, #fff)}; }\n"), 0666))

	stdin := strings.NewReader("b { color: #{hsl-to-rgb(0, 100%, 50%)}; }\n")
	out, err := run(func(c *Config, o *termenv.Output) error {
		return expand(c, stdin, o)
	}, &Config{Args: []string{path, "-"}})
	require.NoError(t, err)
	assert.Equal(t, "a { --c: 21; }\nb { color: rgb(255, 0, 0); }\n", out)

	_, err = run(func(c *Config, o *termenv.Output) error {
		return expand(c, nil, o)
	}, &Config{Args: []string{filepath.Join(dir, "missing.scss")}})
	assert.Error(t, err)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(css, []byte(`
body { color: #000; background-color: #fff; }
.muted { color: #ccc; background: #fff; }
`), 0666))

	out, err := run(lintFiles, &Config{Args: []string{css}, Level: contrast.AA})
	assert.ErrorContains(t, err, "1 of 2 pairs fail")
	assert.Contains(t, out, "PASS "+css+": body: #000000 on #ffffff: 21:1 (aa, needs 4.5:1)\n")
	assert.Contains(t, out, "FAIL "+css+": .muted: #cccccc on #ffffff: 1.61:1 (aa, needs 4.5:1)\n")
	assert.Contains(t, out, "1 of 2 pairs pass\n")

	pairs := filepath.Join(dir, "pairs.yaml")
	require.NoError(t, os.WriteFile(pairs, []byte("pairs:\n  - name: body\n    foreground: black\n    background: white\n"), 0666))
	out, err = run(lintFiles, &Config{Args: []string{pairs}, Level: contrast.AAA})
	require.NoError(t, err)
	assert.Contains(t, out, "(aaa, needs 7:1)")

	_, err = run(lintFiles, &Config{})
	assert.Error(t, err)
	_, err = run(lintFiles, &Config{Args: []string{filepath.Join(dir, "x.json")}})
	assert.ErrorContains(t, err, "unknown file type")
}
