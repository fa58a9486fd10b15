// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color code value type used by
// svgtheme palettes, along with the gray morph and collision
// avoidance operations on color codes.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Code is a color code, an RGB color in the canonical
// "#RRGGBB" upper case hex form used both as palette
// table key and as literal text in SVG markup.
// Use [Parse] to obtain a Code from arbitrary attribute text.
type Code string

// None is the attribute value that disables fill or stroke.
// It is never a color code and always passes through palettes.
const None = "none"

// Parse parses the given attribute value as a hex color code,
// accepting "#rgb" and "#rrggbb" in any case. It returns false
// if the value is not a hex color, for example "none",
// a named color, or a "url(#id)" paint reference.
func Parse(s string) (Code, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return "", false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", false
	}
	return Code("#" + strings.ToUpper(hex)), true
}

// MustParse parses the given hex color string, panicking if
// it is not a valid color code. It is meant for built-in tables.
func MustParse(s string) Code {
	c, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("colors.MustParse: invalid color code %q", s))
	}
	return c
}

// FromRGBA returns the color code for the given color,
// ignoring its alpha channel.
func FromRGBA(c color.RGBA) Code {
	return Code(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// AsRGBA returns the color code as an opaque [color.RGBA].
// The code must be in canonical form.
func (c Code) AsRGBA() color.RGBA {
	if len(c) != 7 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// String returns the code text.
func (c Code) String() string {
	return string(c)
}

// Attr returns the code formatted as an XML attribute assignment,
// for example fill="#FFFFFF".
func (c Code) Attr(name string) string {
	return name + `="` + string(c) + `"`
}
