// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"cogentcore.org/svgtheme/generic"
	"cogentcore.org/svgtheme/palette"
	"github.com/spf13/cobra"
)

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [TYPE]",
		Short: "Print the color table of a palette",
		Long: `palette prints the flags and color table of the given palette type,
or of the configured palette if none is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.cfg.Palette
			if len(args) == 1 {
				if err := t.SetString(args[0]); err != nil {
					return err
				}
			}
			p := a.cache.Get(t)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: fill=%v stroke=%v specific=%v gray=%v\n", p.Type,
				p.ModifyGenericFill, p.ModifyGenericStroke, p.ChangeSpecificColor, p.AllColorsToGray)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, e := range p.Entries() {
				if e.Target.Stroke != "" && e.Target.Stroke != e.Target.Fill {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Source, e.Target.Fill, e.Target.Stroke)
				} else {
					fmt.Fprintf(tw, "%s\t%s\n", e.Source, e.Target.Fill)
				}
			}
			return tw.Flush()
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the palette types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range palette.Types() {
				mode := "light"
				switch {
				case t == palette.None || t == palette.Explicit:
					mode = "unthemed"
				case t.IsDark():
					mode = "dark"
				}
				if t.IsDisabled() {
					mode += " disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, mode)
			}
			return nil
		},
	}
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the generic icon keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range generic.Keywords() {
				fmt.Fprintln(cmd.OutOrStdout(), generic.Prefix+k)
			}
			return nil
		},
	}
}
