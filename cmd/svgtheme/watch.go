// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/svgtheme/base/errors"
	"cogentcore.org/svgtheme/icons"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var out string
	var once bool
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [DIR]",
		Short: "Theme every icon of a directory, and again whenever it changes",
		Long: `watch writes every .svg icon of DIR (the icons directory by default),
themed for the palette, to the output directory, keeping the relative
paths. It then watches DIR and themes icons again as they are written,
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.IconsDir
			if len(args) == 1 {
				dir = args[0]
			}
			if out == "" {
				out = a.cfg.OutputDir
			}
			absOut, err := filepath.Abs(out)
			if err != nil {
				return err
			}
			src := icons.NewDirSource(os.DirFS(dir))
			w := &iconWatcher{
				dir:      dir,
				out:      out,
				absOut:   absOut,
				app:      a,
				source:   src,
				renderer: icons.NewRenderer(a.cache, src),
				debounce: debounce,
			}
			if once {
				_, err := w.themeAll()
				return err
			}
			return w.run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from the config)")
	cmd.Flags().BoolVar(&once, "once", false, "theme the icons once and exit without watching")
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "time to wait for writes to settle")
	return cmd
}

// iconWatcher themes the icons of a directory into an output
// directory when they change.
type iconWatcher struct {
	dir, out string
	absOut   string
	app      *app
	source   *icons.DirSource
	renderer *icons.Renderer
	debounce time.Duration
}

// themeAll themes every icon of the directory and returns the number
// of icons written. Icons that fail are logged and skipped.
func (w *iconWatcher) themeAll() (int, error) {
	names, err := w.source.Names()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, name := range names {
		if w.inOut(filepath.Join(w.dir, filepath.FromSlash(name))) {
			continue
		}
		if errors.Log(w.theme(name)) != nil {
			continue
		}
		n++
	}
	slog.Info("themed icons", "dir", w.dir, "out", w.out, "count", n, "palette", w.app.cfg.Palette)
	return n, nil
}

// theme writes the themed icon with the given name.
func (w *iconWatcher) theme(name string) error {
	cfg := w.app.cfg
	d, err := w.renderer.RequestRenderAt(name, cfg.Size, cfg.Palette, cfg.Target.Point())
	if err != nil {
		return err
	}
	return writeMarkup(nil, w.outPath(name), d.Markup)
}

// inOut returns whether the path is the output directory or inside
// it. Themed icons written there are never themed again.
func (w *iconWatcher) inOut(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return abs == w.absOut || strings.HasPrefix(abs, w.absOut+string(filepath.Separator))
}

func (w *iconWatcher) outPath(name string) string {
	return filepath.Join(w.out, filepath.FromSlash(name)+".svg")
}

// iconName returns the icon name of the given event path, or false
// if it is not an .svg file of the directory.
func (w *iconWatcher) iconName(path string) (string, bool) {
	rel, err := filepath.Rel(w.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") || filepath.Ext(rel) != ".svg" || w.inOut(path) {
		return "", false
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))), true
}

// run watches the directory until the context is done. The directory
// and its subdirectories are watched before the first full pass, so
// no write is missed between the two.
func (w *iconWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = filepath.WalkDir(w.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.inOut(p) {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	if _, err := w.themeAll(); err != nil {
		return err
	}
	slog.Info("watching icons", "dir", w.dir)

	pending := map[string]struct{}{}
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if w.inOut(event.Name) {
						continue
					}
					if err := watcher.Add(event.Name); err != nil {
						slog.Warn("watching directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}
			name, ok := w.iconName(event.Name)
			if !ok || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(fmt.Errorf("watching %s: %w", w.dir, err))

		case <-timer.C:
			for name := range pending {
				w.update(name)
			}
			clear(pending)
		}
	}
}

// update themes the named icon again, or removes its output if the
// icon is gone.
func (w *iconWatcher) update(name string) {
	err := w.theme(name)
	if errors.Is(err, icons.ErrNotFound) {
		// renamed away or removed
		if err := os.Remove(w.outPath(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errors.Log(err)
			return
		}
		slog.Debug("removed themed icon", "name", name)
		return
	}
	if errors.Log(err) != nil {
		return
	}
	slog.Debug("themed icon", "name", name)
}
