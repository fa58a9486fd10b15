// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"image"

	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/palette"
)

// Document is a rendered vector icon. It is immutable: a theme
// change replaces it with a new document from [Document.CreateClone]
// or [Document.Retheme].
type Document struct {

	// Markup is the themed SVG markup.
	Markup string

	// Name is the icon name the document was requested with.
	Name string

	// GenericSource is the generic icon name the markup was
	// synthesized from, or empty for icons from a [Source].
	GenericSource string

	// Size is the requested size.
	Size generic.SizeType

	// Palette is the requested palette type.
	Palette palette.Type

	// Applied is the palette type the markup was rewritten with.
	// It differs from Palette for icons that are drawn for a
	// fixed palette, such as the generic circles.
	Applied palette.Type

	// TargetSize is the size the icon is drawn at, or the zero
	// point if it was not given.
	TargetSize image.Point

	// source is the unthemed markup of icons from a [Source].
	source string

	renderer *Renderer
}

// IsGeneric returns whether the document was synthesized from a
// generic icon name.
func (d *Document) IsGeneric() bool {
	return d.GenericSource != ""
}

// CreateClone returns a new document equivalent to this one,
// regenerated from the generic source or by theming the original
// markup again. The clone has the same markup.
func (d *Document) CreateClone() (*Document, error) {
	return d.Retheme(d.Palette)
}

// Retheme returns a new document for the same icon with the given
// palette type.
func (d *Document) Retheme(t palette.Type) (*Document, error) {
	if d.IsGeneric() {
		return d.renderer.renderGeneric(d.Name, d.GenericSource, d.Size, t, d.TargetSize)
	}
	return d.renderer.RenderMarkup(d.Name, d.source, d.Size, t, d.TargetSize)
}

// ResolvePaletteForTheme returns the palette type equivalent to old
// under a newly active light or dark theme. The enabled and disabled
// palettes swap between light and dark, and the None and Explicit
// types are returned unchanged.
func ResolvePaletteForTheme(old palette.Type, isDark bool) palette.Type {
	switch old {
	case palette.LightSkin, palette.DarkSkin:
		if isDark {
			return palette.DarkSkin
		}
		return palette.LightSkin
	case palette.LightSkinDisabled, palette.DarkSkinDisabled:
		if isDark {
			return palette.DarkSkinDisabled
		}
		return palette.LightSkinDisabled
	}
	return old
}
