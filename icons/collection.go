// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"log/slog"
	"runtime"
	"sync"

	"cogentcore.org/svgtheme/base/ordmap"
	"golang.org/x/sync/errgroup"
)

// Collection holds the live icon documents of an application by
// key, in the order they were added. It is safe for concurrent use.
type Collection struct {
	mu   sync.RWMutex
	docs *ordmap.Map[string, *Document]
}

// NewCollection returns a new empty collection.
func NewCollection() *Collection {
	return &Collection{docs: ordmap.New[string, *Document]()}
}

// Add adds the document under the given key, replacing any document
// already there.
func (c *Collection) Add(key string, d *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs.Add(key, d)
}

// Get returns the document with the given key.
func (c *Collection) Get(key string) (*Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docs.ValueByKeyTry(key)
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docs.Len()
}

// Keys returns the keys of the documents, in the order they were added.
func (c *Collection) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docs.Keys()
}

// ThemeChanged replaces every document with one rethemed for the
// newly active theme, using [ResolvePaletteForTheme]. The documents
// are regenerated concurrently. Documents that fail to regenerate
// are kept as they were, and the first error is returned.
func (c *Collection) ThemeChanged(isDark bool) error {
	c.mu.RLock()
	keys := c.docs.Keys()
	old := make([]*Document, len(keys))
	for i, k := range keys {
		old[i], _ = c.docs.ValueByKeyTry(k)
	}
	c.mu.RUnlock()

	res := make([]*Document, len(old))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range old {
		g.Go(func() error {
			nd, err := d.Retheme(ResolvePaletteForTheme(d.Palette, isDark))
			if err != nil {
				return err
			}
			res[i] = nd
			return nil
		})
	}
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := 0
	for i, k := range keys {
		// a document added again since the snapshot wins
		if cur, _ := c.docs.ValueByKeyTry(k); res[i] == nil || cur != old[i] {
			continue
		}
		c.docs.Add(k, res[i])
		replaced++
	}
	slog.Debug("theme changed", "dark", isDark, "documents", len(keys), "replaced", replaced)
	return err
}
