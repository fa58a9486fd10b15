// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generic synthesizes simple vector icons from compact
// names of the form @keyword|p1|p2|..., such as "@arrow|U|Blue"
// or "@text|WW". The keyword selects an archetype (circles, arrows,
// edit glyphs and text badges) and the parameters, all optional,
// tune it. Synthesis is a pure function of the name and size, so
// an icon can always be regenerated from its name.
package generic

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/svgtheme/palette"
)

// Icon is a synthesized icon.
type Icon struct {

	// Markup is the SVG document.
	Markup string

	// Source is the generic name the icon was made from.
	Source string

	// Size is the requested size.
	Size SizeType

	// Pixels is the canvas size in pixels.
	Pixels int

	// Palette is the palette the markup is already drawn for:
	// [palette.LightSkin] for icons that must not be themed further,
	// and [palette.None] when the caller decides.
	Palette palette.Type
}

// archetype draws the body of one kind of icon.
type archetype struct {
	draw func(b *body, s Spec) error

	// palette is the [Icon.Palette] of the results.
	palette palette.Type
}

var archetypes = map[string]archetype{
	"circlegradient1": {circle, palette.LightSkin},
	"circle":          {circle, palette.LightSkin},
	"arrowsmall":      {arrow(&arrowSmall), palette.None},
	"arrow":           {arrow(&arrowNormal), palette.None},
	"arrow1":          {arrow(&arrowThin), palette.None},
	"edit":            {edit(0), palette.None},
	"editsmall":       {edit(2), palette.None},
	"text":            {text(false), palette.None},
	"textonly":        {text(true), palette.None},
}

// Keywords returns the archetype keywords, sorted.
func Keywords() []string {
	return slices.Sorted(maps.Keys(archetypes))
}

// Synthesize returns the icon for the generic name at the given size.
// It returns [ErrNotGeneric] if the name is not a generic icon name
// or its keyword is unknown, and [ErrGeometry] if the icon cannot be
// drawn at that size.
func Synthesize(name string, size SizeType) (*Icon, error) {
	return synthesize(name, size, size.Pixels())
}

// SynthesizePixels is like [Synthesize] for an arbitrary canvas size
// in pixels, such as a 24 pixel toolbar.
func SynthesizePixels(name string, px int) (*Icon, error) {
	size := Large
	if px <= 16 {
		size = Small
	}
	return synthesize(name, size, px)
}

func synthesize(name string, size SizeType, px int) (*Icon, error) {
	s, err := ParseSpec(name)
	if err != nil {
		return nil, err
	}
	a, ok := archetypes[s.Keyword]
	if !ok {
		return nil, fmt.Errorf("%w: unknown keyword %q", ErrNotGeneric, s.Keyword)
	}
	if px <= 0 {
		return nil, fmt.Errorf("%w: canvas of %dpx", ErrGeometry, px)
	}
	b := &body{px: px}
	if err := a.draw(b, s); err != nil {
		return nil, err
	}
	return &Icon{Markup: b.document(), Source: name, Size: size, Pixels: px, Palette: a.palette}, nil
}

// Clone returns the icon synthesized again from its source, which
// has the same markup.
func (ic *Icon) Clone() (*Icon, error) {
	return synthesize(ic.Source, ic.Size, ic.Pixels)
}
