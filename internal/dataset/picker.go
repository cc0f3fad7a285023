// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package dataset

import "math/rand/v2"

// Picker chooses an index in [0, n). Implementations must be safe for
// concurrent use.
type Picker interface {
	IntN(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// IntN implements Picker.
func (f PickerFunc) IntN(n int) int { return f(n) }

// DefaultPicker draws uniformly from the runtime's auto-seeded generator.
var DefaultPicker Picker = PickerFunc(rand.IntN)

// Pick returns a uniformly chosen element of candidates, or false when there
// is nothing to choose from.
func Pick(p Picker, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	if p == nil {
		p = DefaultPicker
	}
	return candidates[p.IntN(len(candidates))], true
}
