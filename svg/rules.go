// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"regexp"
	"strings"

	"cogentcore.org/svgtheme/colors"
	"cogentcore.org/svgtheme/palette"
)

// Rule is a literal substitution applied to the markup of icons
// whose name matches. Rules reproduce fixed visual corrections and
// are applied before the generic palette rewrite.
type Rule struct {

	// Name identifies the rule in logs and tests.
	Name string

	// Match reports whether the rule applies to the icon name.
	// A nil Match applies to every icon.
	Match func(name string) bool

	// Before is the exact text to replace.
	Before string

	// After is the replacement text.
	After string
}

// Applies returns whether the rule applies to the given icon name.
func (r *Rule) Applies(name string) bool {
	return r.Match == nil || r.Match(name)
}

// nameContains returns a matcher for names containing any of the given strings.
func nameContains(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// outlinedNames matches the badge icons whose outline is removed
// in dark themes.
var outlinedNames = regexp.MustCompile(`class-colour|form-colour|tag-filled|DynRel|button.*filled`)

// fillStroke returns the markup text of a fill and stroke attribute pair.
func fillStroke(fill, stroke colors.Code) string {
	return fill.Attr("fill") + " " + stroke.Attr("stroke")
}

// legacyFixes are the single color corrections applied to every
// icon in palettes that change specific colors.
var legacyFixes = []Rule{
	{Name: "blue-fill", Before: `fill="#1177D7"`, After: `fill="#3D8FDD"`},
	{Name: "green-fill", Before: `fill="#039C23"`, After: `fill="#22B445"`},
	{Name: "white-fill", Before: `fill="#FFFFFF"`, After: `fill="#383838"`},
	{Name: "black-stroke", Before: `stroke="#000000"`, After: `stroke="#D4D4D4"`},
	{Name: "dark-grey-stroke", Before: `stroke="#404040"`, After: `stroke="#BDBDBD"`},
	{Name: "near-black-stroke", Before: `stroke="#1F1F1F"`, After: `stroke="#C8C8C8"`},
}

// Rules returns the ordered name driven substitution table for the
// given palette. The grey badge and outline removal rules write
// colors already resolved through the palette, so the generic
// rewrite that follows keeps fill and stroke equal.
func Rules(p *palette.Palette) []Rule {
	grey, _ := palette.PairByName("grey")
	yellow, _ := palette.PairByName("yellow")
	orange, _ := palette.PairByName("orange")
	greyBadge := colors.Code(p.Fill(string(grey.Dark)))

	rules := []Rule{
		{
			Name:   "grey-badge",
			Match:  nameContains("class-colour-10", "form-colour-10", "tag-filled-grey", "button-grey-filled"),
			Before: fillStroke(grey.Light, grey.Dark),
			After:  fillStroke(greyBadge, greyBadge),
		},
		{
			Name:   "dynamic-relation",
			Match:  nameContains("Rel1ExtDoc", "RelNExtDoc"),
			Before: fillStroke(yellow.Light, yellow.Dark),
			After:  fillStroke(orange.Light, orange.Dark),
		},
	}
	for _, pr := range palette.Pairs {
		target := colors.Code(p.Fill(string(pr.Light)))
		rules = append(rules, Rule{
			Name:   "outline-" + pr.Name,
			Match:  outlinedNames.MatchString,
			Before: fillStroke(pr.Light, pr.Dark),
			After:  fillStroke(target, target),
		})
	}
	return append(rules, legacyFixes...)
}

// ApplyRules applies the rules that match the icon name to the
// markup, in order.
func ApplyRules(rules []Rule, markup, name string) string {
	for i := range rules {
		r := &rules[i]
		if r.Applies(name) {
			markup = strings.ReplaceAll(markup, r.Before, r.After)
		}
	}
	return markup
}
