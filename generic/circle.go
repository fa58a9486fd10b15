// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "html"

// circleGradientID is the id of the gradient that fills the circle.
const circleGradientID = "circleGradient"

// circle draws a circle filled with a radial gradient from the
// center color to white.
//
//	@circle|color|radiusPercent
//
// The color is any SVG color (default Green) and the radius is a
// percentage of half the canvas (default 80, clamped to 0..100).
// Circles with a radius of 1 pixel or less are omitted.
func circle(b *body, s Spec) error {
	color := s.Param(1, "Green")
	pct := min(max(s.IntParam(2, 80), 0), 100)
	c := b.px / 2
	r := c * pct / 100

	b.element(`<defs>`)
	b.element(`  <radialGradient id="%s" cx="50%%" cy="50%%" r="50%%">`, circleGradientID)
	b.element(`    <stop offset="0%%" stop-color="%s"/>`, html.EscapeString(color))
	b.element(`    <stop offset="100%%" stop-color="#FFFFFF"/>`)
	b.element(`  </radialGradient>`)
	b.element(`</defs>`)
	if r <= 1 {
		return nil
	}
	b.element(`<circle cx="%d" cy="%d" r="%d" fill="url(#%s)"/>`, c, c, r, circleGradientID)
	return nil
}
