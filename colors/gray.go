// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// LightGray is the neutral gray that disabled icons in a
	// light theme are pulled toward.
	LightGray = color.RGBA{192, 192, 192, 255}

	// DarkGray is the neutral gray that disabled icons in a
	// dark theme are pulled toward.
	DarkGray = color.RGBA{64, 64, 64, 255}
)

// GrayMorph returns the disabled look of the given color: it is
// blended halfway toward [LightGray] (or [DarkGray] when dark is set)
// and then converted to its luma gray. The result is a pure function
// of its arguments.
func GrayMorph(c Code, dark bool) Code {
	target := LightGray
	if dark {
		target = DarkGray
	}
	src, _ := colorful.MakeColor(c.AsRGBA())
	gray, _ := colorful.MakeColor(target)
	m := src.BlendRgb(gray, 0.5).Clamped()
	y := Luma(m.R*255, m.G*255, m.B*255)
	return FromRGBA(color.RGBA{y, y, y, 255})
}

// Luma returns the rounded luma of the given 0-255 channel values,
// using the ITU-R BT.601 weights.
func Luma(r, g, b float64) uint8 {
	y := 0.299*r + 0.587*g + 0.114*b
	return uint8(math.Max(0, math.Min(255, math.Round(y))))
}
