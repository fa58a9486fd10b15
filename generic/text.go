// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"html"
	"strings"
)

// textMetrics are the font size and baseline for a text badge.
type textMetrics struct {
	fontSize string
	y        int
}

// metricsFor returns the font size and baseline of the text on a
// canvas of the given size. Wide glyph pairs get a smaller font.
func metricsFor(px int, text string, bold bool) textMetrics {
	if px <= 16 {
		m := textMetrics{fontSize: "9px", y: 11}
		if text == "WW" || text == "MM" {
			m.fontSize = "7px"
		}
		if bold {
			m.y = 12
		}
		return m
	}
	m := textMetrics{fontSize: "18px", y: 21}
	if text == "WW" {
		m.fontSize = "16px"
	}
	if bold {
		m.y = 22
	}
	return m
}

// text returns the text badge archetype; the badge has a rounded
// border and background unless textOnly is set.
//
//	@text|text|textStyle|fontFamily|bold|border|fill
//
// The text style defaults to the Black class and the font family
// to sans-serif. Bold is set by a parameter starting with B. The
// border and fill are colors (default #727272 and #FFFFFF) or
// verbatim attributes.
func text(textOnly bool) func(b *body, s Spec) error {
	return func(b *body, s Spec) error {
		txt := s.Param(1, "")
		style := styleAttr(s.Param(2, ""), "Black")
		family := s.Param(3, "sans-serif")
		bold := strings.HasPrefix(strings.ToUpper(s.Param(4, "")), "B")

		if !textOnly {
			rx := 2
			if b.px <= 16 {
				rx = 1
			}
			side := FormatFloat(float64(b.px) - 1)
			b.element(`<rect x="0.5" y="0.5" width="%s" height="%s" rx="%d" ry="%d" %s %s/>`,
				side, side, rx, rx, colorAttr("stroke", s.Param(5, ""), "#727272"), colorAttr("fill", s.Param(6, ""), "#FFFFFF"))
		}
		m := metricsFor(b.px, txt, bold)
		weight := ""
		if bold {
			weight = ` font-weight="bold"`
		}
		b.element(`<text x="%d" y="%d" font-family="%s" font-size="%s"%s text-anchor="middle" %s>%s</text>`,
			b.px/2, m.y, html.EscapeString(family), m.fontSize, weight, style, html.EscapeString(txt))
		return nil
	}
}
