// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"fmt"
	"html"
	"strings"
)

// StyleBlock is the style element of every generated icon. Its class
// names and colors are relied upon byte for byte by icon consumers.
const StyleBlock = `<style type="text/css"> .White{fill:#FFFFFF;} .Red{fill:#D11C1C;} .Green{fill:#039C23;} .Blue{fill:#1177D7;} .Yellow{fill:#FFB115;} .Black{fill:#727272;} .st0{opacity:0.75;} .st1{opacity:0.5;} </style>`

// Footer closes every generated icon.
const Footer = "  </g>\n</svg>"

// Header returns the markup that opens a generated icon of the
// given size in pixels, up to and including the style block.
func Header(px int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg x="0" y="0" width="%d" height="%d" viewBox="0 0 %d %d" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" xml:space="preserve" id="Layer_1" style="enable-background:new 0 0 %d %d">
  <g id="icon">
    %s
`, px, px, px, px, px, px, StyleBlock)
}

// point is a position in pixels.
type point struct {
	X, Y float64
}

func pt(x, y float64) point {
	return point{x, y}
}

func formatPoints(pts []point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatFloat(p.X))
		sb.WriteByte(',')
		sb.WriteString(FormatFloat(p.Y))
	}
	return sb.String()
}

// body accumulates the elements of an icon, one per line.
type body struct {
	sb strings.Builder

	// px is the canvas size in pixels.
	px int
}

func (b *body) element(format string, args ...any) {
	b.sb.WriteString("    ")
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteByte('\n')
}

// polygon adds a polygon with the given style attributes.
func (b *body) polygon(style string, pts ...point) {
	if len(pts) == 0 {
		return
	}
	b.element(`<polygon points="%s" %s/>`, formatPoints(pts), style)
}

// path adds a path with the given data and style attributes.
func (b *body) path(d, style string) {
	b.element(`<path d="%s" %s/>`, d, style)
}

// document returns the complete icon markup.
func (b *body) document() string {
	return Header(b.px) + b.sb.String() + Footer
}

// styleAttr returns the attributes for a style token: a token
// containing '=' is used verbatim, other tokens name a class,
// and an empty token uses the class def.
func styleAttr(token, def string) string {
	switch {
	case token == "":
		return classAttr(def)
	case strings.Contains(token, "="):
		return token
	}
	return classAttr(token)
}

func classAttr(class string) string {
	return `class="` + html.EscapeString(class) + `"`
}

// colorAttr is like styleAttr for tokens that are colors: a token
// without '=' is the value of the named attribute.
func colorAttr(name, token, def string) string {
	if token == "" {
		token = def
	}
	if strings.Contains(token, "=") {
		return token
	}
	return name + `="` + html.EscapeString(token) + `"`
}
