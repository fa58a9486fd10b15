// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	assert.Equal(t, 3, om.Len())
	assert.True(t, om.Has("key1"))
	assert.False(t, om.Has("key3"))

	v, ok := om.ValueByKeyTry("key2")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	om.Add("key1", 11)
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())
	v, _ = om.ValueByKeyTry("key1")
	assert.Equal(t, 11, v)

	assert.Error(t, om.AddNew("key0", 5))
	assert.NoError(t, om.AddNew("key3", 3))
	assert.Equal(t, 4, om.Len())

	var keys []string
	sum := 0
	for k, v := range om.All() {
		keys = append(keys, k)
		sum += v
	}
	assert.Equal(t, om.Keys(), keys)
	assert.Equal(t, 16, sum)
}

func TestZeroMap(t *testing.T) {
	var om Map[int, string]
	assert.Equal(t, 0, om.Len())
	om.Add(1, "a")
	assert.Equal(t, 1, om.Len())
	var nilmap *Map[int, string]
	assert.Equal(t, 0, nilmap.Len())
}
