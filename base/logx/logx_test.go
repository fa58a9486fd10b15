// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("palette built", "type", "DarkSkin")
	l.With("n", 3).WithGroup("cache").Warn("miss", "key", "x")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "palette built")
	assert.Contains(t, out, "type")
	assert.Contains(t, out, "DarkSkin")
	assert.Contains(t, out, "cache.key")
}

func TestInit(t *testing.T) {
	defer func(l *slog.Logger, lvl slog.Level) {
		slog.SetDefault(l)
		UserLevel = lvl
	}(slog.Default(), UserLevel)

	var buf bytes.Buffer
	Init(&buf, false, false, true)
	assert.Equal(t, slog.LevelError, UserLevel)
	slog.Warn("warning hidden")
	slog.Error("error shown")
	assert.NotContains(t, buf.String(), "warning hidden")
	assert.Contains(t, buf.String(), "error shown")
}
