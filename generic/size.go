// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeType is the requested size of an icon.
type SizeType int32

const (
	// Small icons are drawn on a 16 pixel canvas.
	Small SizeType = iota

	// Medium icons are drawn on the 32 pixel canvas, like Large.
	Medium

	// Large icons are drawn on a 32 pixel canvas.
	Large

	// SizeTypesN is the number of size types.
	SizeTypesN
)

var sizeNames = [...]string{"Small", "Medium", "Large"}

// Pixels returns the canvas size in pixels.
func (s SizeType) Pixels() int {
	if s == Small {
		return 16
	}
	return 32
}

// String returns the name of the size type.
func (s SizeType) String() string {
	if s.IsValid() {
		return sizeNames[s]
	}
	return fmt.Sprintf("SizeType(%d)", int32(s))
}

// IsValid returns whether the value is a valid size type.
func (s SizeType) IsValid() bool {
	return s >= Small && s < SizeTypesN
}

// SetString sets the size type from its name, case insensitively.
func (s *SizeType) SetString(str string) error {
	for i, nm := range sizeNames {
		if strings.EqualFold(nm, strings.TrimSpace(str)) {
			*s = SizeType(i)
			return nil
		}
	}
	return fmt.Errorf("generic.SizeType.SetString: %q is not a valid size type", str)
}

// MarshalText implements [encoding.TextMarshaler].
func (s SizeType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *SizeType) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Grid is the pixel position of each of the 17 rulers of the 16 unit
// design space on a canvas, from 0 to the canvas size.
type Grid [17]int

// NewGrid returns the grid for a canvas of the given size in pixels.
// Positions are rounded to the nearest pixel, halves up.
func NewGrid(px int) Grid {
	var g Grid
	for i := range g {
		g[i] = (2*i*px + 16) / 32
	}
	return g
}

// FormatFloat formats a coordinate for markup: fixed point with at
// most four decimals, trailing zeros trimmed, and always a '.'
// decimal separator.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
