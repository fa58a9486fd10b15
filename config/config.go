// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the svgtheme tool,
// read from TOML or YAML files.
package config

import (
	"bytes"
	"encoding"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/svgtheme/base/errors"
	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/palette"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the svgtheme tool.
type Config struct {

	// Palette is the palette type icons are themed for.
	Palette palette.Type `default:"LightSkin" toml:"palette" yaml:"palette"`

	// Size is the size generic icons are synthesized at.
	Size generic.SizeType `default:"Large" toml:"size" yaml:"size"`

	// IconsDir is the directory of the .svg icons resolved by name.
	IconsDir string `default:"icons" toml:"icons_dir" yaml:"icons_dir"`

	// OutputDir is the directory themed icons are written to.
	OutputDir string `default:"themed" toml:"output_dir" yaml:"output_dir"`

	// Target is the size icons are drawn at, as WxH, or 0x0 if unknown.
	Target Target `default:"0x0" toml:"target" yaml:"target"`
}

// Target is a target icon size, written as WxH.
type Target image.Point

// Point returns the target as an [image.Point].
func (t Target) Point() image.Point {
	return image.Point(t)
}

// String returns the target in the form WxH.
func (t Target) String() string {
	return fmt.Sprintf("%dx%d", t.X, t.Y)
}

// SetString sets the target from the form WxH. A single number N
// is the same as NxN.
func (t *Target) SetString(s string) error {
	ws, hs, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		hs = ws
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return fmt.Errorf("config.Target: invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return fmt.Errorf("config.Target: invalid height in %q: %w", s, err)
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("config.Target: negative size %q", s)
	}
	*t = Target{X: w, Y: h}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Target) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}

// Defaults returns a new config with the values of the `default:`
// field tags.
func Defaults() *Config {
	c := &Config{}
	errors.Must(SetFromDefaultTags(c))
	return c
}

// SetFromDefaultTags sets the fields of the given struct pointer
// from their `default:` tags. Fields are set from strings through
// [encoding.TextUnmarshaler] or, for basic kinds, strconv.
func SetFromDefaultTags(obj any) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaultTags: %T is not a pointer to a struct", obj)
	}
	val = val.Elem()
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || !f.IsExported() {
			continue
		}
		if err := setString(val.Field(i), def); err != nil {
			return fmt.Errorf("config.SetFromDefaultTags: field %s of %s from %q: %w", f.Name, typ.Name(), def, err)
		}
	}
	return nil
}

func setString(fv reflect.Value, s string) error {
	if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}

// Open returns the config read from the given file, on top of the
// defaults. The format is chosen by the extension: .toml, or .yaml
// and .yml.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := Defaults()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err = dec.Decode(c); errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	default:
		return nil, fmt.Errorf("config.Open: unsupported config file type %q of %s", ext, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the config to the given file, in the format chosen
// by the extension as in [Open].
func (c *Config) Save(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config.Save: unsupported config file type %q of %s", ext, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
