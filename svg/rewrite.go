// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/svgtheme/palette"
)

// Rewriter rewrites the colors of SVG icons for a palette type.
// It holds no state besides the palette cache and is safe for
// concurrent use.
type Rewriter struct {
	Cache *palette.Cache
}

// NewRewriter returns a new rewriter using the given palette cache.
func NewRewriter(cache *palette.Cache) *Rewriter {
	return &Rewriter{Cache: cache}
}

// Rewrite returns the markup rewritten for the given palette type.
// The name is the icon name driving the literal substitutions, and
// may be empty. The target is the size the icon is drawn at, or the
// zero point if unknown; the 24x24 touch-ups apply only for that size.
// A markup that is not well formed is reported with [ErrDocumentFormat]
// when the palette needs to rewrite its elements.
func (rw *Rewriter) Rewrite(markup string, t palette.Type, name string, target image.Point) (string, error) {
	p := rw.Cache.Get(t)
	if p.ContainsColorChanges() {
		if p.ChangeSpecificColor {
			markup = ApplyRules(Rules(p), markup, name)
		}
		if HasThemedElements(markup) {
			doc, err := ReadString(markup)
			if err != nil {
				return "", err
			}
			n := Recolor(doc, p)
			slog.Debug("recolored icon", "name", name, "palette", t, "changed", n)
			markup = doc.String()
		}
	}
	return ApplyTouchUps(markup, name, target), nil
}

var themedTags = []string{"<path", "<polygon", "<rect", "<circle", "<polyline", "<ellipse", "<line"}

// HasThemedElements returns whether the markup mentions a fill or
// stroke attribute and a graphic element, which is when the color
// rewrite needs to parse it.
func HasThemedElements(markup string) bool {
	if !strings.Contains(markup, "fill") && !strings.Contains(markup, "stroke") {
		return false
	}
	for _, tag := range themedTags {
		if strings.Contains(markup, tag) {
			return true
		}
	}
	return false
}
