// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// delta is one candidate channel offset tried by [Avoid].
type delta struct {
	r, g, b int
}

// avoidDeltas are the offsets tried by [Avoid], in order.
var avoidDeltas = []delta{
	{0, 0, -1}, {0, -1, 0}, {-1, 0, 0},
	{0, 0, 1}, {0, 1, 0}, {1, 0, 0},
	{0, 0, -2}, {0, -2, 0}, {-2, 0, 0},
	{0, 0, 2}, {0, 2, 0}, {2, 0, 0},
	{-1, -1, -1}, {1, 1, 1}, {-2, -2, -2}, {2, 2, 2},
}

// Avoid returns the given color code if taken reports false for it.
// Otherwise it returns the first near-identical color (at most 2 away
// in each channel) that is not taken. It returns false if all of the
// candidates are taken.
func Avoid(c Code, taken func(Code) bool) (Code, bool) {
	if !taken(c) {
		return c, true
	}
	rgba := c.AsRGBA()
	for _, d := range avoidDeltas {
		r, rok := offset(rgba.R, d.r)
		g, gok := offset(rgba.G, d.g)
		b, bok := offset(rgba.B, d.b)
		if !rok || !gok || !bok {
			continue
		}
		cand := FromRGBA(color.RGBA{r, g, b, 255})
		if !taken(cand) {
			return cand, true
		}
	}
	return c, false
}

// offset adds d to v, returning false if the result is out of range.
func offset(v uint8, d int) (uint8, bool) {
	n := int(v) + d
	if n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}
