// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"testing"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	src := `:root {
  --bg: #ffffff;
  --text: #000000;
}
.test {
  --contrast: #{contrast.colour-difference(#000000, #ffffff)};
  content: "#{contrast.hsl-to-rgb(hsl(0, 100%, 50%))}";
}
`
	want := `:root {
  --bg: #ffffff;
  --text: #000000;
}
.test {
  --contrast: 21;
  content: "rgb(255, 0, 0)";
}
`
	have, err := Interpolate(src)
	assert.NoError(t, err)
	assert.Equal(t, want, have)

	have, err = Interpolate("no interpolation #fff {}")
	assert.NoError(t, err)
	assert.Equal(t, "no interpolation #fff {}", have)

	have, err = Interpolate("#{passes(black, white)}#{relative-luminance(white)}")
	assert.NoError(t, err)
	assert.Equal(t, "true1", have)
}

func TestInterpolateErrors(t *testing.T) {
	_, err := Interpolate("a {\n  b: #{contrast.nonexistent-function(#000, #fff)};\n}")
	var ue *UnsupportedOperationError
	assert.True(t, errors.As(err, &ue))

	_, err = Interpolate("a { b: #{colour-difference(#000, #fff} }")
	assert.Error(t, err)
	_, err = Interpolate("a {\n  b: #{colour-difference(#000, #fff)")
	var se *SyntaxError
	if assert.True(t, errors.As(err, &se)) {
		assert.Contains(t, se.Msg, "line 2")
	}

	for _, src := range []string{
		`a { content: "#{'}"; }`,
		`a { b: #{"} }`,
		`a { b: #{"a\"} }`,
	} {
		_, err = Interpolate(src)
		if assert.True(t, errors.As(err, &se), src) {
			assert.Contains(t, se.Msg, "unterminated interpolation", src)
		}
	}

	_, err = Interpolate(`a { b: #{parse-color("}")}; }`)
	var pe *colors.ParseError
	if assert.True(t, errors.As(err, &pe)) {
		assert.Equal(t, "}", pe.Input)
	}
}

func TestInterpolateQuotedBrace(t *testing.T) {
	have, err := Interpolate(`a { b: #{parse-color('rgb(1, 2, 3)')}; c: "}" }`)
	assert.NoError(t, err)
	assert.Equal(t, `a { b: rgb(1, 2, 3); c: "}" }`, have)

	have, err = Interpolate(`a { b: #{passes("#000", 'white', "aa-large")} }`)
	assert.NoError(t, err)
	assert.Equal(t, `a { b: true }`, have)
}
