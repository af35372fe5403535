// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import "golang.org/x/exp/slices"

// Shift moves s[from] to index to, shifting the elements in between.
// Apply an Update with Shift(s, u.From, u.To).
func Shift[S ~[]E, E any](s S, from, to int) {
	if from == to {
		return
	}
	v := s[from]
	// Delete and Insert reuse the backing array of s.
	rest := slices.Delete(s, from, from+1)
	slices.Insert(rest, to, v)
}
