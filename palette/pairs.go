// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/svgtheme/colors"

// Pair is a light badge color with its dark counterpart,
// for one semantic hue.
type Pair struct {
	Name  string
	Light colors.Code
	Dark  colors.Code
}

// Pairs are the semantic badge hues shared by all palettes.
// The light colors are the pale badge fills and the dark colors
// are the saturated outlines drawn around them.
var Pairs = []Pair{
	{"grey", "#E4E4E4", "#8C8C8C"},
	{"red", "#F7C9C9", "#D11C1C"},
	{"orange", "#FDDBB5", "#F48A17"},
	{"yellow", "#FFEBB0", "#FFB115"},
	{"green", "#C4E8CB", "#039C23"},
	{"teal", "#BFE8E4", "#0F9D8F"},
	{"blue", "#C6DFF6", "#1177D7"},
	{"purple", "#DDCBF0", "#8A4FC8"},
	{"brown", "#E6D5C3", "#8B5A2B"},
}

// PairByName returns the pair with the given hue name.
func PairByName(name string) (Pair, bool) {
	for _, p := range Pairs {
		if p.Name == name {
			return p, true
		}
	}
	return Pair{}, false
}

// ClassColors are the colors of the named classes in the style
// block of generated icons, keyed by class name.
var ClassColors = []struct {
	Class string
	Code  colors.Code
}{
	{"White", "#FFFFFF"},
	{"Red", "#D11C1C"},
	{"Green", "#039C23"},
	{"Blue", "#1177D7"},
	{"Yellow", "#FFB115"},
	{"Black", "#727272"},
}

// entry is one source row of a palette table. An empty stroke
// means the stroke target is the same as the fill target.
type entry struct {
	src    colors.Code
	fill   colors.Code
	stroke colors.Code
}

// darkTable is the dark theme color table. It is literal data:
// several hues use a different target for strokes than for fills,
// which no general rule reproduces.
var darkTable = []entry{
	// whites become near black backgrounds
	{"#FFFFFF", "#383838", ""},
	{"#FCFCFC", "#383838", ""},
	{"#F5F5F5", "#333333", ""},
	{"#F0F0F0", "#3C3C3C", ""},

	// blacks and dark grays become near white
	{"#000000", "#D4D4D4", ""},
	{"#1F1F1F", "#D4D4D4", ""},
	{"#404040", "#C8C8C8", ""},
	{"#727272", "#A9A9A9", "#BDBDBD"},

	// badge hues swap light and dark
	{"#E4E4E4", "#8C8C8C", ""},
	{"#8C8C8C", "#E4E4E4", "#B0B0B0"},
	{"#F7C9C9", "#D11C1C", ""},
	{"#D11C1C", "#F7C9C9", "#E85656"},
	{"#FDDBB5", "#F48A17", ""},
	{"#F48A17", "#FDDBB5", ""},
	{"#FFEBB0", "#FFB115", ""},
	{"#FFB115", "#FFEBB0", ""},
	{"#C4E8CB", "#039C23", ""},
	{"#039C23", "#C4E8CB", "#3DBB55"},
	{"#BFE8E4", "#0F9D8F", ""},
	{"#0F9D8F", "#BFE8E4", ""},
	{"#C6DFF6", "#1177D7", ""},
	{"#1177D7", "#C6DFF6", "#4C9AE3"},
	{"#DDCBF0", "#8A4FC8", ""},
	{"#8A4FC8", "#DDCBF0", ""},
	{"#E6D5C3", "#8B5A2B", ""},
	{"#8B5A2B", "#E6D5C3", "#B07D4F"},
}

// knownCodes returns every color code that the built-in tables
// know about, without duplicates, in a stable order.
func knownCodes() []colors.Code {
	seen := map[colors.Code]bool{}
	var res []colors.Code
	add := func(c colors.Code) {
		if !seen[c] {
			seen[c] = true
			res = append(res, c)
		}
	}
	for _, p := range Pairs {
		add(p.Light)
		add(p.Dark)
	}
	for _, e := range darkTable {
		add(e.src)
	}
	for _, cc := range ClassColors {
		add(cc.Code)
	}
	return res
}
