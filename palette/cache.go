// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds the palettes built so far, keyed by type.
// Palettes are built lazily on first use and never invalidated;
// switching themes uses a different type. A Cache is safe for
// concurrent use and is typically owned by the renderer, living
// as long as the application.
type Cache struct {
	mu       sync.RWMutex
	palettes map[Type]*Palette
	group    singleflight.Group
}

// NewCache returns a new empty palette cache.
func NewCache() *Cache {
	return &Cache{palettes: map[Type]*Palette{}}
}

// Get returns the palette of the given type, building it if this is
// the first request for it. Concurrent first requests for the same
// type build it only once.
func (c *Cache) Get(t Type) *Palette {
	if p := c.lookup(t); p != nil {
		return p
	}
	v, _, _ := c.group.Do(t.String(), func() (any, error) {
		if p := c.lookup(t); p != nil {
			return p, nil
		}
		p := Build(t)
		slog.Debug("built palette", "type", t, "entries", p.Len())
		c.mu.Lock()
		c.palettes[t] = p
		c.mu.Unlock()
		return p, nil
	})
	return v.(*Palette)
}

// Len returns the number of palettes that have been built.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.palettes)
}

func (c *Cache) lookup(t Type) *Palette {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.palettes[t]
}
