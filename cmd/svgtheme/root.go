// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/svgtheme/base/logx"
	"cogentcore.org/svgtheme/config"
	"cogentcore.org/svgtheme/icons"
	"cogentcore.org/svgtheme/palette"
	"github.com/spf13/cobra"
)

// rootFlags are the flags shared by all commands.
type rootFlags struct {
	configFile string
	vv, v, q   bool

	palette  string
	size     string
	target   string
	iconsDir string
}

// app is the state the commands run with, set up before each run
// from the config file and the flags.
type app struct {
	flags rootFlags
	cfg   *config.Config
	cache *palette.Cache
}

// NewRootCmd returns the svgtheme root command with all of its
// subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "svgtheme",
		Short: "svgtheme renders themed vector icons",
		Long: `svgtheme renders vector icons for light, dark, and disabled palettes.
Generic icon names such as @arrow|U|Blue are synthesized, and other
names are read from the icons directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logx.Init(cmd.ErrOrStderr(), a.flags.vv, a.flags.v, a.flags.q)
			return a.setup(cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.flags.configFile, "config", "c", "", "config file (.toml or .yaml)")
	pf.BoolVarP(&a.flags.v, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&a.flags.vv, "vv", false, "show debug log messages")
	pf.BoolVarP(&a.flags.q, "quiet", "q", false, "only show error log messages")
	pf.StringVarP(&a.flags.palette, "palette", "p", "", "palette type, such as LightSkin or dark")
	pf.StringVarP(&a.flags.size, "size", "s", "", "generic icon size: Small, Medium, or Large")
	pf.StringVarP(&a.flags.target, "target", "t", "", "target size in pixels, as WxH or N")
	pf.StringVar(&a.flags.iconsDir, "icons", "", "directory of the .svg icons")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newRewriteCmd(a))
	cmd.AddCommand(newPaletteCmd(a))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newKeywordsCmd())
	cmd.AddCommand(newWatchCmd(a))

	return cmd
}

// Execute runs the root command with the given arguments.
func Execute(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// setup loads the config and applies the flags that were set on top.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.configFile != "" {
		c, err := config.Open(a.flags.configFile)
		if err != nil {
			return err
		}
		a.cfg = c
		slog.Info("loaded config", "file", a.flags.configFile)
	} else {
		a.cfg = config.Defaults()
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		if err := a.cfg.Palette.SetString(a.flags.palette); err != nil {
			return err
		}
	}
	if flags.Changed("size") {
		if err := a.cfg.Size.SetString(a.flags.size); err != nil {
			return err
		}
	}
	if flags.Changed("target") {
		if err := a.cfg.Target.SetString(a.flags.target); err != nil {
			return err
		}
	}
	if flags.Changed("icons") {
		a.cfg.IconsDir = a.flags.iconsDir
	}
	a.cache = palette.NewCache()
	return nil
}

// renderer returns a renderer reading icons from the configured
// icons directory.
func (a *app) renderer() *icons.Renderer {
	return icons.NewRenderer(a.cache, icons.NewDirSource(os.DirFS(a.cfg.IconsDir)))
}
