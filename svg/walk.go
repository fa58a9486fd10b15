// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "cogentcore.org/svgtheme/palette"

// IsContainer returns whether the walk descends into elements with
// the given local name.
func IsContainer(name string) bool {
	return name == "svg" || name == "g"
}

// IsGraphic returns whether elements with the given local name are
// the graphic leaves whose colors are themed.
func IsGraphic(name string) bool {
	switch name {
	case "path", "polygon", "rect", "circle", "polyline", "ellipse", "line":
		return true
	}
	return false
}

// Walk calls fun for every graphic element reachable from the root
// <svg> element through nested <g> groups, in document order.
// Other elements, such as defs, text and style, are not entered.
func Walk(doc *Document, fun func(el *Element)) {
	root := doc.Root()
	if root == nil || root.Name.Local != "svg" {
		return
	}
	walk(root, fun)
}

func walk(el *Element, fun func(el *Element)) {
	for _, c := range el.Children {
		ch, ok := c.(*Element)
		if !ok {
			continue
		}
		switch {
		case IsGraphic(ch.Name.Local):
			fun(ch)
		case IsContainer(ch.Name.Local):
			walk(ch, fun)
		}
	}
}

// Recolor rewrites the fill and stroke attributes of the graphic
// elements of the document through the given palette, for the parts
// that the palette modifies. It returns the number of attribute
// values that changed.
func Recolor(doc *Document, p *palette.Palette) int {
	changed := 0
	Walk(doc, func(el *Element) {
		for i := range el.Attrs {
			a := &el.Attrs[i]
			if a.Name.Space != "" {
				continue
			}
			var nv string
			switch {
			case a.Name.Local == "fill" && p.ModifyGenericFill:
				nv = p.Fill(a.Value)
			case a.Name.Local == "stroke" && p.ModifyGenericStroke:
				nv = p.Stroke(a.Value)
			default:
				continue
			}
			if nv != a.Value {
				a.Value = nv
				changed++
			}
		}
	})
	return changed
}
