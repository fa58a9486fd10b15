// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"
)

// Type is the kind of palette an icon is rendered with:
// the theme (light or dark) and state (enabled or disabled).
type Type int32

const (
	// None is no palette; icons are not themed.
	None Type = iota

	// LightSkin is the light theme. Icons are drawn
	// for a light theme, so it changes no colors.
	LightSkin

	// LightSkinDisabled is the disabled state in a light theme.
	LightSkinDisabled

	// DarkSkin is the dark theme.
	DarkSkin

	// DarkSkinDisabled is the disabled state in a dark theme.
	DarkSkinDisabled

	// Explicit marks an icon that must not be themed;
	// it never changes colors.
	Explicit

	// TypesN is the number of palette types.
	TypesN
)

var typeNames = [...]string{"None", "LightSkin", "LightSkinDisabled", "DarkSkin", "DarkSkinDisabled", "Explicit"}

// typeAliases are the additional lower case names accepted by [Type.SetString].
var typeAliases = map[string]Type{
	"light":          LightSkin,
	"light-disabled": LightSkinDisabled,
	"dark":           DarkSkin,
	"dark-disabled":  DarkSkinDisabled,
}

// Types returns all of the palette types.
func Types() []Type {
	return []Type{None, LightSkin, LightSkinDisabled, DarkSkin, DarkSkinDisabled, Explicit}
}

// String returns the name of the palette type.
func (t Type) String() string {
	if t.IsValid() {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// IsValid returns whether the value is a valid palette type.
func (t Type) IsValid() bool {
	return t >= None && t < TypesN
}

// IsDark returns whether the palette type is one of the dark theme types.
func (t Type) IsDark() bool {
	return t == DarkSkin || t == DarkSkinDisabled
}

// IsDisabled returns whether the palette type is one of the disabled types.
func (t Type) IsDisabled() bool {
	return t == LightSkinDisabled || t == DarkSkinDisabled
}

// SetString sets the palette type from its name, case insensitively.
// The names light, dark, light-disabled and dark-disabled are also accepted.
func (t *Type) SetString(s string) error {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, nm := range typeNames {
		if strings.ToLower(nm) == ls {
			*t = Type(i)
			return nil
		}
	}
	if a, ok := typeAliases[ls]; ok {
		*t = a
		return nil
	}
	return fmt.Errorf("palette.Type.SetString: %q is not a valid palette type", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}
