// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/svgtheme/base/errors"
)

// ErrNotFound is returned when an icon name cannot be resolved.
// Callers should fall back to another icon, such as [Placeholder].
var ErrNotFound = errors.New("icons: icon not found")

// Source resolves the markup of non generic icons by name.
type Source interface {

	// Markup returns the SVG markup of the named icon, or an error
	// wrapping [ErrNotFound] if there is no such icon.
	Markup(name string) (string, error)
}

// DirSource is a [Source] of .svg files in a filesystem. The icon
// name is the file path without the extension.
type DirSource struct {
	FS fs.FS
}

// NewDirSource returns a source of the .svg files in the filesystem.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{FS: fsys}
}

// Markup implements [Source].
func (ds *DirSource) Markup(name string) (string, error) {
	fname := name
	if path.Ext(fname) != ".svg" {
		fname += ".svg"
	}
	if !fs.ValidPath(fname) {
		return "", fmt.Errorf("%w: invalid icon name %q", ErrNotFound, name)
	}
	b, err := fs.ReadFile(ds.FS, fname)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Names returns the names of the icons in the filesystem, in lexical order.
func (ds *DirSource) Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(ds.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".svg" {
			names = append(names, strings.TrimSuffix(p, ".svg"))
		}
		return nil
	})
	return names, err
}

// MapSource is an in memory [Source] from icon names to markup.
type MapSource map[string]string

// Markup implements [Source].
func (ms MapSource) Markup(name string) (string, error) {
	m, ok := ms[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return m, nil
}
