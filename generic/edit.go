// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"fmt"
	"strings"
)

// MaxMargin is the largest margin of the edit glyphs, in grid units.
const MaxMargin = 4

// dash is a dash of an intermittent border, as grid unit offsets
// from the start of an edge.
type dash struct {
	from, to int
}

// borderDashes are the dashes of the intermittent border for each
// margin. The edge length is 16 - 2*margin grid units, and the
// dashes are placed so that the corners are always drawn.
var borderDashes = [MaxMargin + 1][]dash{
	{{0, 3}, {5, 7}, {9, 11}, {13, 16}},
	{{0, 3}, {5, 6}, {8, 9}, {11, 14}},
	{{0, 3}, {5, 7}, {9, 12}},
	{{0, 2}, {4, 6}, {8, 10}},
	{{0, 2}, {3, 5}, {6, 8}},
}

// editVariants are the sub-variants of the edit archetypes.
var editVariants = map[string]func(f *Frame, b *body, styles [3]string){
	"selectall1": func(f *Frame, b *body, st [3]string) {
		f.intermittentBorder(b, styleAttr(st[0], "Black"))
		f.rect(b, styleAttr(st[1], "Blue"), 3)
	},
	"selectall2": func(f *Frame, b *body, st [3]string) {
		f.intermittentBorder(b, styleAttr(st[0], "Black"))
		f.rect(b, styleAttr(st[1], "Blue"), 2)
		f.rect(b, styleAttr(st[2], "White"), 3)
	},
	"selectall3": func(f *Frame, b *body, st [3]string) {
		f.intermittentBorder(b, styleAttr(st[0], "Black"))
	},
	"delete1": func(f *Frame, b *body, st [3]string) {
		f.border(b, styleAttr(st[0], "Black"))
		f.cross(b, styleAttr(st[1], "Red"), 2)
	},
	"delete2": func(f *Frame, b *body, st [3]string) {
		f.cross(b, styleAttr(st[0], "Red"), 0)
	},
	"copy": func(f *Frame, b *body, st [3]string) {
		back := f.inset(0, 0, 3, 3)
		front := f.inset(3, 3, 0, 0)
		back.rect(b, styleAttr(st[0], "Black"), 0)
		front.rect(b, styleAttr(st[0], "Black"), 0)
		front.rect(b, styleAttr(st[1], "White"), 1)
	},
}

// edit returns the edit archetype with the given default margin.
//
//	@edit|variant|margin|style1|style2|style3
//
// The variant is one of selectall1, selectall2, selectall3,
// delete1, delete2 and copy (default selectall1). The margin in
// grid units is clamped to 0..MaxMargin.
func edit(defMargin int) func(b *body, s Spec) error {
	return func(b *body, s Spec) error {
		variant := s.Param(1, "selectall1")
		draw, ok := editVariants[strings.ToLower(variant)]
		if !ok {
			return fmt.Errorf("%w: unknown edit variant %q", ErrNotGeneric, variant)
		}
		margin := min(max(s.IntParam(2, defMargin), 0), MaxMargin)
		f, err := EditFrame(b.px, margin)
		if err != nil {
			return err
		}
		draw(f, b, [3]string{s.Param(3, ""), s.Param(4, ""), s.Param(5, "")})
		return nil
	}
}

// Frame is the square, in grid units, that an edit glyph is
// drawn in.
type Frame struct {
	grid Grid

	// margin selects the border dashes.
	margin int

	x0, y0, x1, y1 int
}

// EditFrame returns the frame of the edit glyphs on a canvas of the
// given size in pixels. It returns [ErrGeometry] if the margin is
// outside 0..MaxMargin or the frame is too small to draw in.
func EditFrame(px, margin int) (*Frame, error) {
	if margin < 0 || margin > MaxMargin {
		return nil, fmt.Errorf("%w: edit margin %d is outside 0..%d", ErrGeometry, margin, MaxMargin)
	}
	f := &Frame{grid: NewGrid(px), margin: margin, x0: margin, y0: margin, x1: 16 - margin, y1: 16 - margin}
	if inner := f.grid[f.x1] - f.grid[f.x0]; inner < 4 {
		return nil, fmt.Errorf("%w: edit frame of %dpx at margin %d on a %dpx canvas", ErrGeometry, inner, margin, px)
	}
	return f, nil
}

// Size returns the size of the frame in pixels.
func (f *Frame) Size() int {
	return f.grid[f.x1] - f.grid[f.x0]
}

func (f *Frame) inset(left, top, right, bottom int) *Frame {
	n := *f
	n.x0 += left
	n.y0 += top
	n.x1 -= right
	n.y1 -= bottom
	return &n
}

// at returns the pixel point of the grid position.
func (f *Frame) at(x, y int) point {
	return pt(float64(f.grid[x]), float64(f.grid[y]))
}

func (f *Frame) box(x0, y0, x1, y1 int) []point {
	return []point{f.at(x0, y0), f.at(x1, y0), f.at(x1, y1), f.at(x0, y1)}
}

// rect fills the frame inset by the given grid units.
func (f *Frame) rect(b *body, style string, inset int) {
	b.polygon(style, f.box(f.x0+inset, f.y0+inset, f.x1-inset, f.y1-inset)...)
}

// border draws a solid border one grid unit wide.
func (f *Frame) border(b *body, style string) {
	o := f.box(f.x0, f.y0, f.x1, f.y1)
	i := f.box(f.x0+1, f.y0+1, f.x1-1, f.y1-1)
	b.path(fmt.Sprintf("M%s Z M%s Z", formatPoints(o), formatPoints([]point{i[0], i[3], i[2], i[1]})), style)
}

// intermittentBorder draws the dashed border one grid unit wide.
// The vertical edges skip the corner cells the horizontal edges
// already cover.
func (f *Frame) intermittentBorder(b *body, style string) {
	for _, d := range borderDashes[f.margin] {
		b.polygon(style, f.box(f.x0+d.from, f.y0, f.x0+d.to, f.y0+1)...)
		b.polygon(style, f.box(f.x0+d.from, f.y1-1, f.x0+d.to, f.y1)...)
	}
	length := f.y1 - f.y0
	for _, d := range borderDashes[f.margin] {
		from, to := max(d.from, 1), min(d.to, length-1)
		if from >= to {
			continue
		}
		b.polygon(style, f.box(f.x0, f.y0+from, f.x0+1, f.y0+to)...)
		b.polygon(style, f.box(f.x1-1, f.y0+from, f.x1, f.y0+to)...)
	}
}

// cross draws an X inside the frame inset by the given grid units.
func (f *Frame) cross(b *body, style string, inset int) {
	a, z := f.x0+inset, f.x1-inset
	t, u := f.y0+inset, f.y1-inset
	cx, cy := (a+z)/2, (t+u)/2
	b.polygon(style,
		f.at(a, t+1), f.at(a+1, t), f.at(cx, cy-1),
		f.at(z-1, t), f.at(z, t+1), f.at(cx+1, cy),
		f.at(z, u-1), f.at(z-1, u), f.at(cx, cy+1),
		f.at(a+1, u), f.at(a, u-1), f.at(cx-1, cy),
	)
}
