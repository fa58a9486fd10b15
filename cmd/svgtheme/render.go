// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/svgtheme/icons"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRenderCmd(a *app) *cobra.Command {
	var out string
	var placeholder bool

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render a generic icon or an icon from the icons directory",
		Example: `  svgtheme render '@arrow|U|Blue' --palette dark
  svgtheme render page --icons ./icons --target 24 -o page.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.renderer()
			var d *icons.Document
			if placeholder {
				d = r.RenderOrPlaceholder(args[0], a.cfg.Size, a.cfg.Palette)
			} else {
				var err error
				d, err = r.RequestRenderAt(args[0], a.cfg.Size, a.cfg.Palette, a.cfg.Target.Point())
				if err != nil {
					return err
				}
			}
			return writeMarkup(cmd.OutOrStdout(), out, d.Markup)
		},
	}
	addOutFlag(cmd.Flags(), &out)
	cmd.Flags().BoolVar(&placeholder, "placeholder", false, "render the placeholder icon for icons that cannot be resolved")
	return cmd
}

func newRewriteCmd(a *app) *cobra.Command {
	var out, name string

	cmd := &cobra.Command{
		Use:   "rewrite FILE",
		Short: "Rewrite the colors of an .svg file for a palette",
		Long: `rewrite remaps the colors of the given .svg file, or of stdin if FILE
is -, for the palette. The icon name selects the name specific color
fixes and defaults to the base name of the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b []byte
			var err error
			if args[0] == "-" {
				b, err = io.ReadAll(cmd.InOrStdin())
			} else {
				b, err = os.ReadFile(args[0])
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				}
			}
			if err != nil {
				return err
			}
			d, err := a.renderer().RenderMarkup(name, string(b), a.cfg.Size, a.cfg.Palette, a.cfg.Target.Point())
			if err != nil {
				return err
			}
			return writeMarkup(cmd.OutOrStdout(), out, d.Markup)
		},
	}
	addOutFlag(cmd.Flags(), &out)
	cmd.Flags().StringVarP(&name, "name", "n", "", "icon name used for the name specific color fixes")
	return cmd
}

// addOutFlag adds the flag of the file the icon is written to.
func addOutFlag(fs *pflag.FlagSet, out *string) {
	fs.StringVarP(out, "out", "o", "", "file to write the icon to, instead of stdout")
}

// writeMarkup writes the markup to the named file, or to w if
// filename is empty.
func writeMarkup(w io.Writer, filename, markup string) error {
	if filename == "" {
		_, err := fmt.Fprintln(w, markup)
		return err
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, []byte(markup), 0666)
}
