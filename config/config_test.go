// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/svgtheme/base/errors"
	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, palette.LightSkin, c.Palette)
	assert.Equal(t, generic.Large, c.Size)
	assert.Equal(t, "icons", c.IconsDir)
	assert.Equal(t, "themed", c.OutputDir)
	assert.Equal(t, image.Point{}, c.Target.Point())

	assert.Error(t, SetFromDefaultTags(c.Target))
}

func TestTarget(t *testing.T) {
	var tg Target
	require.NoError(t, tg.SetString("24x24"))
	assert.Equal(t, image.Pt(24, 24), tg.Point())
	require.NoError(t, tg.SetString(" 16X32 "))
	assert.Equal(t, image.Pt(16, 32), tg.Point())
	require.NoError(t, tg.SetString("24"))
	assert.Equal(t, "24x24", tg.String())
	for _, s := range []string{"", "x", "ax4", "4xb", "-1x2"} {
		assert.Error(t, tg.SetString(s), s)
	}
}

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpen(t *testing.T) {
	fn := writeFile(t, "svgtheme.toml", `
palette = "dark"
size = "Small"
icons_dir = "assets/icons"
target = "24x24"
`)
	c, err := Open(fn)
	errors.Test(t, err)
	require.NotNil(t, c)
	assert.Equal(t, palette.DarkSkin, c.Palette)
	assert.Equal(t, generic.Small, c.Size)
	assert.Equal(t, "assets/icons", c.IconsDir)
	assert.Equal(t, "themed", c.OutputDir)
	assert.Equal(t, image.Pt(24, 24), c.Target.Point())

	fn = writeFile(t, "svgtheme.yaml", `
palette: DarkSkinDisabled
output_dir: out
`)
	c, err = Open(fn)
	errors.Test(t, err)
	require.NotNil(t, c)
	assert.Equal(t, palette.DarkSkinDisabled, c.Palette)
	assert.Equal(t, generic.Large, c.Size)
	assert.Equal(t, "out", c.OutputDir)

	c, err = Open(writeFile(t, "empty.yml", ""))
	errors.Test(t, err)
	require.NotNil(t, c)
	assert.Equal(t, *Defaults(), *c)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "bad.toml", `colour = "red"`))
	assert.Error(t, err)
	_, err = Open(writeFile(t, "bad.yaml", "palette: purple\n"))
	assert.Error(t, err)
	_, err = Open(writeFile(t, "svgtheme.json", "{}"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	c := Defaults()
	c.Palette = palette.DarkSkin
	c.Size = generic.Medium
	c.Target = Target{X: 24, Y: 24}
	for _, name := range []string{"c.toml", "c.yaml"} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, c.Save(fn))
		o, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, c, o, name)
	}
	assert.Error(t, c.Save(filepath.Join(t.TempDir(), "c.ini")))
}
