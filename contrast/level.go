// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

//go:generate core generate

import (
	"strings"
)

// Level is a WCAG 2.x conformance level for text contrast.
type Level int32 //enums:enum -transform kebab -accept-lower

const (
	// AA requires a contrast ratio of at least 4.5 for normal text.
	AA Level = iota

	// AALarge requires a contrast ratio of at least 3 for large text.
	AALarge

	// AAA requires a contrast ratio of at least 7 for normal text.
	AAA

	// AAALarge requires a contrast ratio of at least 4.5 for large text.
	AAALarge
)

var levelMins = [LevelN]float64{
	AA:       4.5,
	AALarge:  3,
	AAA:      7,
	AAALarge: 4.5,
}

// Min returns the minimum contrast ratio required by the level.
// Invalid levels require the same ratio as [AA].
func (l Level) Min() float64 {
	if l < 0 || l >= LevelN {
		return levelMins[AA]
	}
	return levelMins[l]
}

// ParseLevel returns the level with the given name, such as aa,
// AAA or AA-large, ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	var l Level
	err := l.SetString(strings.TrimSpace(s))
	return l, err
}

// Passes returns whether the given contrast ratio meets the given level.
func Passes(ratio float64, l Level) bool {
	return ratio >= l.Min()
}
