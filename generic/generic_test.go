// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"strings"
	"testing"

	"cogentcore.org/svgtheme/palette"
	"cogentcore.org/svgtheme/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	s, err := ParseSpec("@arrow| U |Blue")
	require.NoError(t, err)
	assert.Equal(t, "arrow", s.Keyword)
	assert.Equal(t, []string{"U", "Blue"}, s.Params)
	assert.Equal(t, "U", s.Param(1, "x"))
	assert.Equal(t, "x", s.Param(3, "x"))
	assert.Equal(t, 7, s.IntParam(2, 7))
	assert.Equal(t, "@arrow|U|Blue", s.String())

	for _, name := range []string{"arrow|U", "", "@", "@|U"} {
		_, err := ParseSpec(name)
		assert.ErrorIs(t, err, ErrNotGeneric, name)
	}

	assert.True(t, IsGeneric("@arrow"))
	assert.True(t, IsGeneric("@textonly|A"))
	assert.False(t, IsGeneric("@Arrow"))
	assert.False(t, IsGeneric("arrow"))
}

func TestNotGeneric(t *testing.T) {
	for _, name := range []string{"arrow|U", "@unknown|U", "@edit|paste"} {
		_, err := Synthesize(name, Large)
		assert.ErrorIs(t, err, ErrNotGeneric, name)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(16)
	for i := range g {
		assert.Equal(t, i, g[i])
	}
	g = NewGrid(32)
	for i := range g {
		assert.Equal(t, 2*i, g[i])
	}
	g = NewGrid(24)
	assert.Equal(t, 0, g[0])
	assert.Equal(t, 2, g[1])
	assert.Equal(t, 12, g[8])
	assert.Equal(t, 24, g[16])
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		2:        "2",
		10:       "10",
		1.5:      "1.5",
		0.125:    "0.125",
		100.50:   "100.5",
		1.23456:  "1.2346",
		-0.00001: "0",
		-2.25:    "-2.25",
	}
	for v, want := range tests {
		assert.Equal(t, want, FormatFloat(v))
	}
}

func TestSizeType(t *testing.T) {
	assert.Equal(t, 16, Small.Pixels())
	assert.Equal(t, 32, Medium.Pixels())
	assert.Equal(t, 32, Large.Pixels())
	var s SizeType
	require.NoError(t, s.SetString("large"))
	assert.Equal(t, Large, s)
	assert.Error(t, s.SetString("huge"))
	assert.Equal(t, "Medium", Medium.String())
}

func TestEnumText(t *testing.T) {
	for s := Small; s < SizeTypesN; s++ {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var got SizeType
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}
	assert.False(t, SizeTypesN.IsValid())
	assert.Equal(t, "SizeType(7)", SizeType(7).String())

	for d := None; d < DirectionsN; d++ {
		b, err := d.MarshalText()
		require.NoError(t, err)
		var got Direction
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, d, got)
	}
	var d Direction
	require.NoError(t, d.SetString("West"))
	assert.Equal(t, Left, d)
	require.NoError(t, d.SetString("ceiling"))
	assert.Equal(t, Ceiling, d)
	assert.Error(t, d.SetString("bogus"))
	assert.False(t, DirectionsN.IsValid())
	assert.Equal(t, "Direction(12)", Direction(12).String())
}

func TestHeader(t *testing.T) {
	ic, err := Synthesize("@arrow|U|Blue", Large)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ic.Markup, `<?xml version="1.0" encoding="UTF-8"?>
<svg x="0" y="0" width="32" height="32" viewBox="0 0 32 32" version="1.1" xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, ic.Markup, `  <g id="icon">
    <style type="text/css"> .White{fill:#FFFFFF;} .Red{fill:#D11C1C;} .Green{fill:#039C23;} .Blue{fill:#1177D7;} .Yellow{fill:#FFB115;} .Black{fill:#727272;} .st0{opacity:0.75;} .st1{opacity:0.5;} </style>
`)
	assert.True(t, strings.HasSuffix(ic.Markup, "  </g>\n</svg>"))
}

func TestArrow(t *testing.T) {
	assert.Equal(t, Up, ParseDirection("U"))
	assert.Equal(t, Up, ParseDirection("north"))
	assert.Equal(t, Right, ParseDirection("R"))
	assert.Equal(t, End, ParseDirection("Last"))
	assert.Equal(t, Stop, ParseDirection("x"))
	assert.Equal(t, None, ParseDirection("bogus"))

	ic, err := Synthesize("@arrow|U|Blue", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `    <polygon points="12,16 20,16 20,28 12,28" class="Blue"/>
    <polygon points="16,4 28,16 4,16" class="Blue"/>
`)
	assert.Equal(t, palette.None, ic.Palette)

	ic, err = Synthesize("@arrow|u", Small)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<polygon points="6,8 10,8 10,14 6,14" class="Blue"/>`)
	assert.Contains(t, ic.Markup, `<polygon points="8,2 14,8 2,8" class="Blue"/>`)

	ic, err = Synthesize("@arrow|down|Red", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<polygon points="16,28 28,16 4,16" class="Red"/>`)

	ic, err = Synthesize(`@arrow|r|fill="#FF0000"`, Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<polygon points="16,12 16,20 4,20 4,12" fill="#FF0000"/>`)
	assert.Contains(t, ic.Markup, `<polygon points="28,16 16,28 16,4" fill="#FF0000"/>`)

	ic, err = Synthesize("@arrow|bogus|Blue", Large)
	require.NoError(t, err)
	assert.NotContains(t, ic.Markup, "<polygon")

	ic, err = Synthesize("@arrow|u|Blue|-20", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<polygon points="12,16 20,16 20,18 12,18" class="Blue"/>`)

	ic, err = Synthesize("@arrow|c|Blue", Large)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(ic.Markup, "<polygon"))
	assert.Contains(t, ic.Markup, `<polygon points="4,2 28,2 28,6 4,6" class="Blue"/>`)

	ic, err = Synthesize("@arrowsmall|u|Green", Large)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(ic.Markup, "<polygon"))

	ic, err = Synthesize("@arrow1|x", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<polygon points="8,8 24,8 24,24 8,24" class="Blue"/>`)
}

func TestCircle(t *testing.T) {
	ic, err := Synthesize("@circle|violet|70", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<circle cx="16" cy="16" r="11" fill="url(#circleGradient)"/>`)
	assert.Contains(t, ic.Markup, `<stop offset="0%" stop-color="violet"/>`)
	assert.Contains(t, ic.Markup, `<stop offset="100%" stop-color="#FFFFFF"/>`)
	assert.Equal(t, palette.LightSkin, ic.Palette)

	ic, err = Synthesize("@circlegradient1", Small)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<circle cx="8" cy="8" r="6" fill="url(#circleGradient)"/>`)
	assert.Contains(t, ic.Markup, `stop-color="Green"`)

	ic, err = Synthesize("@circle|Red|5", Large)
	require.NoError(t, err)
	assert.NotContains(t, ic.Markup, "<circle")

	ic, err = Synthesize("@circle|Red|250", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `r="16"`)
}

func TestText(t *testing.T) {
	ic, err := Synthesize("@text|WW", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `    <rect x="0.5" y="0.5" width="31" height="31" rx="2" ry="2" stroke="#727272" fill="#FFFFFF"/>
    <text x="16" y="21" font-family="sans-serif" font-size="16px" text-anchor="middle" class="Black">WW</text>
`)

	tests := []struct {
		name string
		size SizeType
		want string
	}{
		{"@text|AB", Large, `font-size="18px"`},
		{"@text|MM", Large, `font-size="18px"`},
		{"@text|WW", Small, `font-size="7px"`},
		{"@text|MM", Small, `font-size="7px"`},
		{"@text|AB", Small, `font-size="9px"`},
		{"@text|A|Black|serif|bold", Large, `y="22" font-family="serif" font-size="18px" font-weight="bold"`},
		{"@text|A||| b", Small, `y="12"`},
		{"@text|A", Small, `y="11"`},
		{"@text| a&b |Red", Large, `class="Red">a&amp;b</text>`},
		{"@text|A||||#FF0000|none", Large, `stroke="#FF0000" fill="none"`},
	}
	for _, test := range tests {
		ic, err := Synthesize(test.name, test.size)
		require.NoError(t, err, test.name)
		assert.Contains(t, ic.Markup, test.want, test.name)
	}

	ic, err = Synthesize("@textonly|AB|Blue", Large)
	require.NoError(t, err)
	assert.NotContains(t, ic.Markup, "<rect")
	assert.Contains(t, ic.Markup, `class="Blue">AB</text>`)
}

func TestEdit(t *testing.T) {
	ic, err := Synthesize("@edit|selectall1", Small)
	require.NoError(t, err)
	assert.Equal(t, 17, strings.Count(ic.Markup, "<polygon"))
	assert.Contains(t, ic.Markup, `<polygon points="0,0 3,0 3,1 0,1" class="Black"/>`)
	assert.Contains(t, ic.Markup, `<polygon points="3,3 13,3 13,13 3,13" class="Blue"/>`)

	ic, err = Synthesize("@editsmall", Small)
	require.NoError(t, err)
	assert.Equal(t, 13, strings.Count(ic.Markup, "<polygon"))

	ic, err = Synthesize("@edit|delete1", Large)
	require.NoError(t, err)
	assert.Contains(t, ic.Markup, `<path d="M0,0 32,0 32,32 0,32 Z M2,2 2,30 30,30 30,2 Z" class="Black"/>`)
	assert.Contains(t, ic.Markup, `class="Red"`)

	// margins are clamped
	a, err := Synthesize("@edit|copy|9", Large)
	require.NoError(t, err)
	b, err := Synthesize("@edit|copy|4", Large)
	require.NoError(t, err)
	assert.Equal(t, b.Markup, a.Markup)

	for _, v := range []string{"selectall2", "selectall3", "delete2", "copy"} {
		for m := range MaxMargin + 1 {
			_, err := Synthesize("@edit|"+v+"|"+FormatFloat(float64(m)), Small)
			assert.NoError(t, err, v)
		}
	}
}

func TestGeometry(t *testing.T) {
	_, err := EditFrame(16, 5)
	assert.ErrorIs(t, err, ErrGeometry)
	_, err = EditFrame(4, 2)
	assert.ErrorIs(t, err, ErrGeometry)
	f, err := EditFrame(32, 2)
	require.NoError(t, err)
	assert.Equal(t, 24, f.Size())

	_, err = SynthesizePixels("@edit|selectall1|2", 4)
	assert.ErrorIs(t, err, ErrGeometry)
	_, err = SynthesizePixels("@circle", 0)
	assert.ErrorIs(t, err, ErrGeometry)

	ic, err := SynthesizePixels("@edit", 24)
	require.NoError(t, err)
	assert.Equal(t, 24, ic.Pixels)
	assert.Equal(t, Large, ic.Size)
}

func TestWellFormedAndClone(t *testing.T) {
	names := []string{
		"@circle|violet|70", "@circlegradient1|Red", "@arrow|U|Blue", "@arrow|e", "@arrow1|b|Green|3",
		"@arrowsmall|f", "@edit|selectall2|1|Black|Blue|White", "@editsmall|delete1",
		"@text|WW", "@text|<A>|Black|serif|B", "@textonly|MM",
	}
	for _, kw := range Keywords() {
		names = append(names, "@"+kw)
	}
	for _, size := range []SizeType{Small, Medium, Large} {
		for _, name := range names {
			ic, err := Synthesize(name, size)
			require.NoError(t, err, name)
			_, err = svg.ReadString(ic.Markup)
			assert.NoError(t, err, name)

			cl, err := ic.Clone()
			require.NoError(t, err, name)
			assert.Equal(t, ic.Markup, cl.Markup, name)
			assert.Equal(t, ic.Size, cl.Size)
			assert.Equal(t, name, cl.Source)
		}
	}
}
