// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/svgtheme/colors"

// Build returns a new palette of the given type, filled from the
// built-in tables. Unknown types build an empty palette like [None].
// Most callers should use [Cache.Get] instead, which builds each
// palette only once.
func Build(t Type) *Palette {
	p := newPalette(t)
	switch t {
	case DarkSkin:
		p.add(darkTable)
	case LightSkinDisabled, DarkSkinDisabled:
		p.add(grayEntries(knownCodes(), p.IsDark))
	}
	return p
}

// grayEntries returns the gray morph entries for the given codes.
func grayEntries(codes []colors.Code, dark bool) []entry {
	es := make([]entry, len(codes))
	for i, c := range codes {
		es[i] = entry{src: c, fill: colors.GrayMorph(c, dark)}
	}
	return es
}
