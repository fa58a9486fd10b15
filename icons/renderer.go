// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icons renders themed vector icons: generic icons are
// synthesized from their names and other icons are read from a
// [Source], and both are rewritten for the requested palette.
// A [Collection] keeps the live documents and replaces them all
// when the theme changes.
package icons

import (
	_ "embed"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/svgtheme/base/errors"
	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/palette"
	"cogentcore.org/svgtheme/svg"
)

// Placeholder is the markup of the icon drawn in place of icons
// that cannot be resolved.
//
//go:embed svg/placeholder.svg
var Placeholder string

// PlaceholderName is the document name of the [Placeholder] icon.
const PlaceholderName = "placeholder"

// Renderer renders icon documents. It is safe for concurrent use.
type Renderer struct {

	// Cache is the palette cache shared by all renders.
	Cache *palette.Cache

	// Source resolves icons that are not generic. It may be nil.
	Source Source

	rewriter *svg.Rewriter
}

// NewRenderer returns a renderer with the given palette cache and
// icon source, which may be nil.
func NewRenderer(cache *palette.Cache, src Source) *Renderer {
	return &Renderer{Cache: cache, Source: src, rewriter: svg.NewRewriter(cache)}
}

// RequestRender returns the document for the named icon at the given
// size and palette. Generic icon names are synthesized, and other
// names, including generic looking names of unknown archetypes, are
// resolved through the [Source]. It returns an error wrapping
// [ErrNotFound] if the icon cannot be resolved.
func (r *Renderer) RequestRender(name string, size generic.SizeType, t palette.Type) (*Document, error) {
	return r.RequestRenderAt(name, size, t, image.Point{})
}

// RequestRenderAt is like [Renderer.RequestRender] for an icon drawn
// at the given target size in pixels. Square targets synthesize
// generic icons at that size, and 24x24 targets get the touch-ups
// of [svg.ApplyTouchUps].
func (r *Renderer) RequestRenderAt(name string, size generic.SizeType, t palette.Type, target image.Point) (*Document, error) {
	if generic.IsGeneric(name) {
		return r.renderGeneric(name, name, size, t, target)
	}
	if r.Source == nil {
		return nil, fmt.Errorf("%w: %q (no icon source)", ErrNotFound, name)
	}
	markup, err := r.Source.Markup(name)
	if err != nil {
		return nil, err
	}
	return r.RenderMarkup(name, markup, size, t, target)
}

// RenderOrPlaceholder is like [Renderer.RequestRender], but returns
// the [Placeholder] icon, and logs the error, if the icon cannot be
// rendered.
func (r *Renderer) RenderOrPlaceholder(name string, size generic.SizeType, t palette.Type) *Document {
	d, err := r.RequestRender(name, size, t)
	if err == nil {
		return d
	}
	slog.Warn("using placeholder icon", "name", name, "err", err)
	return errors.Must1(r.RenderMarkup(PlaceholderName, Placeholder, size, t, image.Point{}))
}

// RenderMarkup returns the document for the given caller supplied
// markup, rewritten for the palette type. The name drives the
// literal substitutions of the rewrite and may be empty.
func (r *Renderer) RenderMarkup(name, markup string, size generic.SizeType, t palette.Type, target image.Point) (*Document, error) {
	themed, err := r.rewriter.Rewrite(markup, t, name, target)
	if err != nil {
		return nil, fmt.Errorf("icons: rendering %q: %w", name, err)
	}
	return &Document{
		Markup:     themed,
		Name:       name,
		Size:       size,
		Palette:    t,
		Applied:    t,
		TargetSize: target,
		source:     markup,
		renderer:   r,
	}, nil
}

func (r *Renderer) renderGeneric(name, spec string, size generic.SizeType, t palette.Type, target image.Point) (*Document, error) {
	var ic *generic.Icon
	var err error
	if target.X > 0 && target.X == target.Y {
		ic, err = generic.SynthesizePixels(spec, target.X)
	} else {
		ic, err = generic.Synthesize(spec, size)
	}
	if errors.Is(err, generic.ErrNotGeneric) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	applied := t
	if ic.Palette != palette.None {
		applied = ic.Palette
	}
	themed, err := r.rewriter.Rewrite(ic.Markup, applied, name, target)
	if err != nil {
		return nil, fmt.Errorf("icons: rendering %q: %w", name, err)
	}
	return &Document{
		Markup:        themed,
		Name:          name,
		GenericSource: spec,
		Size:          size,
		Palette:       t,
		Applied:       applied,
		TargetSize:    target,
		renderer:      r,
	}, nil
}
