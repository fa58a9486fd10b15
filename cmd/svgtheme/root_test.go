// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/icons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	page     = `<svg><path fill="#FFFFFF" stroke="#000000"/></svg>`
	darkPage = `<svg><path fill="#383838" stroke="#D4D4D4"/></svg>`
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(t.Context(), &stdout, &stderr, args...)
	return stdout.String(), err
}

func runLog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(t.Context(), &stdout, &stderr, args...)
	return stderr.String(), err
}

func iconsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.svg"), []byte(page), 0666))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.svg"), []byte(page), 0666))
	return dir
}

func TestThemes(t *testing.T) {
	out, err := run(t, "themes")
	require.NoError(t, err)
	assert.Equal(t, "None\tunthemed\nLightSkin\tlight\nLightSkinDisabled\tlight disabled\nDarkSkin\tdark\nDarkSkinDisabled\tdark disabled\nExplicit\tunthemed\n", out)

	out, err = run(t, "keywords")
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "@arrow")
	assert.Contains(t, strings.Fields(out), "@textonly")
}

func TestPaletteCmd(t *testing.T) {
	out, err := run(t, "palette", "dark")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "DarkSkin: fill=true stroke=true specific=true gray=false", lines[0])
	assert.Greater(t, len(lines), 20)

	out, err = run(t, "palette", "--palette", "LightSkin")
	require.NoError(t, err)
	assert.Equal(t, "LightSkin: fill=false stroke=false specific=false gray=false\n", out)

	_, err = run(t, "palette", "sepia")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := iconsDir(t)
	out, err := run(t, "render", "page", "--icons", dir, "--palette", "dark")
	require.NoError(t, err)
	assert.Equal(t, darkPage+"\n", out)

	out, err = run(t, "render", "sub/b", "--icons", dir)
	require.NoError(t, err)
	assert.Equal(t, page+"\n", out)

	out, err = run(t, "render", "@arrow|U|Blue", "--size", "Small")
	require.NoError(t, err)
	ic, err := generic.Synthesize("@arrow|U|Blue", generic.Small)
	require.NoError(t, err)
	assert.Equal(t, ic.Markup+"\n", out)

	fn := filepath.Join(t.TempDir(), "out", "arrow.svg")
	_, err = run(t, "render", "@arrow|d", "--target", "24", "-o", fn)
	require.NoError(t, err)
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), `width="24"`)

	_, err = run(t, "render", "missing", "--icons", dir)
	assert.ErrorIs(t, err, icons.ErrNotFound)

	out, err = run(t, "render", "missing", "--icons", dir, "--placeholder", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, `stroke="#727272"`)

	_, err = run(t, "render", "page", "--size", "Huge")
	assert.Error(t, err)
}

func TestRenderConfig(t *testing.T) {
	dir := iconsDir(t)
	fn := filepath.Join(t.TempDir(), "svgtheme.toml")
	require.NoError(t, os.WriteFile(fn, []byte("palette = \"DarkSkin\"\nicons_dir = \""+filepath.ToSlash(dir)+"\"\n"), 0666))
	out, err := run(t, "render", "page", "--config", fn)
	require.NoError(t, err)
	assert.Equal(t, darkPage+"\n", out)

	// flags override the config
	out, err = run(t, "render", "page", "--config", fn, "-p", "light")
	require.NoError(t, err)
	assert.Equal(t, page+"\n", out)

	_, err = run(t, "render", "page", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRewrite(t *testing.T) {
	dir := iconsDir(t)
	out, err := run(t, "rewrite", filepath.Join(dir, "page.svg"), "-p", "dark")
	require.NoError(t, err)
	assert.Equal(t, darkPage+"\n", out)

	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader(page))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"rewrite", "-", "-p", "dark"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, darkPage+"\n", stdout.String())

	_, err = run(t, "rewrite", filepath.Join(dir, "none.svg"))
	assert.Error(t, err)
}

func TestWatchOnce(t *testing.T) {
	dir := iconsDir(t)
	out := filepath.Join(t.TempDir(), "themed")
	_, err := run(t, "watch", dir, "--out", out, "--once", "-p", "dark")
	require.NoError(t, err)
	for _, name := range []string{"page.svg", "sub/b.svg"} {
		b, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, darkPage, string(b), name)
	}

	// broken icons are logged and skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.svg"), []byte(`<svg><path fill="#FFFFFF"></svg>`), 0666))
	log, err := runLog(t, "watch", dir, "--out", out, "--once", "-p", "dark")
	require.NoError(t, err)
	assert.Contains(t, log, "broken")
	assert.NoFileExists(t, filepath.Join(out, "broken.svg"))
	assert.FileExists(t, filepath.Join(out, "page.svg"))
}

func TestWatchOutputInside(t *testing.T) {
	dir := iconsDir(t)
	out := filepath.Join(dir, "themed")
	for range 2 {
		_, err := run(t, "watch", dir, "--out", out, "--once", "-p", "dark")
		require.NoError(t, err)
	}
	assert.FileExists(t, filepath.Join(out, "page.svg"))
	assert.FileExists(t, filepath.Join(out, "sub", "b.svg"))
	assert.NoDirExists(t, filepath.Join(out, "themed"))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		var stdout, stderr bytes.Buffer
		done <- Execute(ctx, &stdout, &stderr, "watch", dir, "--out", out, "-p", "dark", "--debounce", "10ms")
	}()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.svg"), []byte(page), 0666))
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "new.svg"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "themed"))
		return err == nil
	}, 300*time.Millisecond, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch(t *testing.T) {
	dir := iconsDir(t)
	out := filepath.Join(t.TempDir(), "themed")
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		var stdout, stderr bytes.Buffer
		done <- Execute(ctx, &stdout, &stderr, "watch", dir, "--out", out, "-p", "dark", "--debounce", "10ms")
	}()

	exists := func(name string) func() bool {
		return func() bool {
			_, err := os.Stat(filepath.Join(out, name))
			return err == nil
		}
	}
	// the first pass runs once the directory is watched
	require.Eventually(t, exists("page.svg"), 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.svg"), []byte(page), 0666))
	require.Eventually(t, func() bool {
		b, err := os.ReadFile(filepath.Join(out, "new.svg"))
		return err == nil && string(b) == darkPage
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(dir, "page.svg")))
	require.Eventually(t, func() bool { return !exists("page.svg")() }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
