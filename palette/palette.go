// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the theme palettes that remap the
// colors of SVG icons: a table from source color codes to fill
// and stroke targets, built so that no target is also a source.
package palette

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"cogentcore.org/svgtheme/base/ordmap"
	"cogentcore.org/svgtheme/colors"
)

// ErrDuplicateSource is the configuration error raised (as a panic)
// when a palette table lists the same source color twice.
var ErrDuplicateSource = errors.New("palette: duplicate source color")

// Part is which attribute of a graphic element a color is read for.
type Part int32

const (
	// Fill is the fill attribute.
	Fill Part = iota

	// Stroke is the stroke attribute.
	Stroke
)

// Target is the pair of colors that a source color maps to.
type Target struct {
	Fill colors.Code

	// Stroke is the stroke color; if empty, Fill is used for strokes too.
	Stroke colors.Code
}

// For returns the target color for the given part.
func (t Target) For(part Part) colors.Code {
	if part == Stroke && t.Stroke != "" {
		return t.Stroke
	}
	return t.Fill
}

// Entry is one row of a palette color table.
type Entry struct {
	Source colors.Code
	Target Target
}

// Palette is the color table for one palette [Type].
// Palettes are built once by [Build] (usually through a [Cache])
// and are safe for concurrent use. Only palettes with
// AllColorsToGray grow after construction, by memoizing
// the gray morph of colors they have not seen before.
type Palette struct {

	// Type is the palette type this palette was built for.
	Type Type

	// ModifyGenericFill is whether fill attributes are rewritten.
	ModifyGenericFill bool

	// ModifyGenericStroke is whether stroke attributes are rewritten.
	ModifyGenericStroke bool

	// ChangeSpecificColor is whether the icon name driven
	// literal substitutions apply.
	ChangeSpecificColor bool

	// AllColorsToGray is whether colors missing from the table
	// are morphed to gray on demand.
	AllColorsToGray bool

	// IsDark is whether this is a dark theme palette.
	IsDark bool

	// IsDisabled is whether this is a disabled state palette.
	IsDisabled bool

	mu      sync.RWMutex
	table   *ordmap.Map[colors.Code, Target]
	targets map[colors.Code]struct{}

	// morphs counts the gray morphs computed on demand.
	morphs atomic.Int64
}

// newPalette returns an empty palette with the flags for the given type.
func newPalette(t Type) *Palette {
	p := &Palette{
		Type:    t,
		table:   ordmap.New[colors.Code, Target](),
		targets: map[colors.Code]struct{}{},
	}
	switch t {
	case DarkSkin:
		p.ModifyGenericFill = true
		p.ModifyGenericStroke = true
		p.ChangeSpecificColor = true
		p.IsDark = true
	case LightSkinDisabled, DarkSkinDisabled:
		p.ModifyGenericFill = true
		p.ModifyGenericStroke = true
		p.AllColorsToGray = true
		p.IsDisabled = true
		p.IsDark = t == DarkSkinDisabled
		p.ChangeSpecificColor = p.IsDark
	}
	return p
}

// ContainsColorChanges returns whether the palette changes any colors.
func (p *Palette) ContainsColorChanges() bool {
	return p.AllColorsToGray || p.Len() > 0
}

// Len returns the number of entries in the color table.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.Len()
}

// Entries returns a copy of the color table, in the order the
// entries were added.
func (p *Palette) Entries() []Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	res := make([]Entry, 0, p.table.Len())
	for k, v := range p.table.All() {
		res = append(res, Entry{Source: k, Target: v})
	}
	return res
}

// Fill returns the value that the given fill attribute value maps to.
func (p *Palette) Fill(value string) string {
	return p.Lookup(value, Fill)
}

// Stroke returns the value that the given stroke attribute value maps to.
func (p *Palette) Stroke(value string) string {
	return p.Lookup(value, Stroke)
}

// Lookup returns the value that the given attribute value maps to
// when read for the given part. The value "none", values that are
// not hex color codes, and colors that are already targets of this
// palette are returned unchanged. Colors in the table return their
// target. Other colors are returned unchanged, unless the palette
// turns all colors to gray, in which case their gray morph is
// computed and remembered.
func (p *Palette) Lookup(value string, part Part) string {
	if value == colors.None {
		return value
	}
	c, ok := colors.Parse(value)
	if !ok {
		return value
	}
	p.mu.RLock()
	t, has := p.table.ValueByKeyTry(c)
	_, isTarget := p.targets[c]
	p.mu.RUnlock()
	switch {
	case has:
		return string(t.For(part))
	case isTarget || !p.AllColorsToGray:
		return value
	}
	return string(p.memoGray(c).For(part))
}

// memoGray adds the gray morph of the given color to the table
// and returns its target. It must only be called for colors that
// are neither keys nor targets.
func (p *Palette) memoGray(c colors.Code) Target {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, has := p.table.ValueByKeyTry(c); has {
		return t
	}
	p.morphs.Add(1)
	g := colors.GrayMorph(c, p.IsDark)
	t := Target{Fill: p.avoid(g, c)}
	p.table.Add(c, t)
	p.targets[t.Fill] = struct{}{}
	return t
}

// add adds the given entries as a batch. All of the source keys
// are registered before any target is resolved, so that no target
// can collide with a key of the batch. It panics with
// [ErrDuplicateSource] if a source is already in the table.
func (p *Palette) add(entries []entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range entries {
		if err := p.table.AddNew(e.src, Target{}); err != nil {
			panic(fmt.Errorf("%w: %s in %v palette: %w", ErrDuplicateSource, e.src, p.Type, err))
		}
	}
	for _, e := range entries {
		t := Target{Fill: p.avoid(e.fill, e.src)}
		p.targets[t.Fill] = struct{}{}
		if e.stroke != "" {
			t.Stroke = p.avoid(e.stroke, e.src)
			p.targets[t.Stroke] = struct{}{}
		}
		p.table.Add(e.src, t)
	}
}

// avoid returns the given target, perturbed if needed so that it is
// not a key of the table other than src. The lock must be held.
func (p *Palette) avoid(target, src colors.Code) colors.Code {
	res, ok := colors.Avoid(target, func(c colors.Code) bool {
		return c != src && p.table.Has(c)
	})
	if !ok {
		panic(fmt.Sprintf("palette: no free color near %s for source %s in %v palette", target, src, p.Type))
	}
	return res
}

// String returns a short description of the palette.
func (p *Palette) String() string {
	return fmt.Sprintf("%v palette (%d entries)", p.Type, p.Len())
}
