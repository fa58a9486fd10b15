// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up leveled logging for svgtheme tools on top of
// log/slog. Libraries log through the default slog logger, mostly at
// debug level, and commands choose what is shown through [UserLevel].
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the lowest level of the messages shown to the user.
// Commands set it from their verbosity flags.
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the level selected by the verbosity flags:
// vv shows debug messages, v info messages, and q only errors.
// The most verbose flag given wins, and with none the level is
// [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// Init sets [UserLevel] from the verbosity flags and makes the
// default logger write to w at that level.
func Init(w io.Writer, vv, v, q bool) {
	UserLevel = LevelFromFlags(vv, v, q)
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}
