// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "image"

// TouchUpSize is the target size for which the [TouchUps] apply.
var TouchUpSize = image.Pt(24, 24)

// Opacity of the relation overlays before and after the touch-up.
// The leading space keeps fill-opacity and stroke-opacity unmatched.
const (
	opaque  = ` opacity="1"`
	reduced = ` opacity="0.8"`
)

// TouchUps are the literal geometry corrections for relation and
// form icons drawn at 24x24, where the 32 unit shapes do not land
// on the pixel grid.
var TouchUps = []Rule{
	{
		Name:   "form-opacity",
		Match:  nameContains("form-colour", "Rel1"),
		Before: opaque,
		After:  reduced,
	},
	{
		Name:   "form-frame",
		Match:  nameContains("form-colour", "Rel1"),
		Before: `d="M2,2h20v20H2V2z"`,
		After:  `d="M3,3h18v18H3V3z"`,
	},
	{
		Name:   "reln-opacity",
		Match:  nameContains("RelN"),
		Before: opaque,
		After:  reduced,
	},
	{
		Name:   "reln-back",
		Match:  nameContains("RelN"),
		Before: `d="M6,2h16v16H6V2z"`,
		After:  `d="M7,3h14v14H7V3z"`,
	},
	{
		Name:   "reln-front",
		Match:  nameContains("RelN"),
		Before: `d="M2,6h16v16H2V6z"`,
		After:  `d="M3,7h14v14H3V7z"`,
	},
	{
		Name:   "relarch-opacity",
		Match:  nameContains("RelArch"),
		Before: opaque,
		After:  reduced,
	},
	{
		Name:   "relarch-lid",
		Match:  nameContains("RelArch"),
		Before: `d="M2,4h20v4H2V4z"`,
		After:  `d="M3,5h18v3H3V5z"`,
	},
}

// ApplyTouchUps applies the [TouchUps] matching the icon name when
// the target size is [TouchUpSize], and returns the markup unchanged
// otherwise.
func ApplyTouchUps(markup, name string, target image.Point) string {
	if target != TouchUpSize {
		return markup
	}
	return ApplyRules(TouchUps, markup, name)
}
