// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotGeneric is returned for icon names that are not in the
	// generic icon grammar or name an unknown archetype. Callers
	// should fall back to other ways of resolving the icon.
	ErrNotGeneric = errors.New("generic: not a generic icon")

	// ErrGeometry is returned when an archetype cannot fit its
	// shapes in the requested canvas.
	ErrGeometry = errors.New("generic: degenerate icon geometry")
)

// Prefix starts every generic icon name.
const Prefix = "@"

// Spec is a parsed generic icon name: @keyword|p1|p2|...
type Spec struct {

	// Keyword selects the archetype, matched exactly.
	Keyword string

	// Params are the positional parameters, trimmed.
	// Any of them may be missing or empty.
	Params []string
}

// IsGeneric returns whether the name is a generic icon name with
// a known keyword.
func IsGeneric(name string) bool {
	s, err := ParseSpec(name)
	if err != nil {
		return false
	}
	_, ok := archetypes[s.Keyword]
	return ok
}

// ParseSpec parses a generic icon name. It returns [ErrNotGeneric]
// if the name does not start with [Prefix] or has no keyword.
// The keyword is not checked against the archetypes.
func ParseSpec(name string) (Spec, error) {
	rest, ok := strings.CutPrefix(name, Prefix)
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q does not start with %q", ErrNotGeneric, name, Prefix)
	}
	parts := strings.Split(rest, "|")
	s := Spec{Keyword: strings.TrimSpace(parts[0])}
	if s.Keyword == "" {
		return Spec{}, fmt.Errorf("%w: %q has no keyword", ErrNotGeneric, name)
	}
	for _, p := range parts[1:] {
		s.Params = append(s.Params, strings.TrimSpace(p))
	}
	return s, nil
}

// Param returns parameter i (1 based, as in the name), or def if it
// is missing or empty.
func (s Spec) Param(i int, def string) string {
	if i < 1 || i > len(s.Params) || s.Params[i-1] == "" {
		return def
	}
	return s.Params[i-1]
}

// IntParam returns parameter i as an integer, or def if it is
// missing or not an integer.
func (s Spec) IntParam(i int, def int) int {
	v, err := strconv.Atoi(s.Param(i, ""))
	if err != nil {
		return def
	}
	return v
}

// String returns the spec in the generic icon grammar.
func (s Spec) String() string {
	return Prefix + strings.Join(append([]string{s.Keyword}, s.Params...), "|")
}
