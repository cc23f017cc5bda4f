// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/aggtree/catalog"
)

func TestCatalogIsolatesCategories(t *testing.T) {
	c := catalog.New()
	c.Upsert("drama", "Heat", 8)
	c.Upsert("comedy", "Heat", 2)
	c.Upsert("drama", "Heat", 6)
	c.Upsert("comedy", "Airplane", 9)

	assert.Equal(t, []string{"comedy", "drama"}, c.Categories())
	assert.Equal(t, 2, c.Len())

	e, found := c.FindExact("drama", "Heat")
	require.True(t, found)
	assert.Equal(t, 2, e.Count)
	assert.Equal(t, 7.0, e.Mean)

	e, found = c.FindExact("comedy", "Heat")
	require.True(t, found)
	assert.Equal(t, 1, e.Count)
	assert.Equal(t, 2.0, e.Mean)

	_, found = c.FindExact("drama", "Airplane")
	assert.False(t, found)

	e, found = c.FindNearest("comedy", 8)
	require.True(t, found)
	assert.Equal(t, "Airplane", e.Key)

	tree, ok := c.Tree("drama")
	require.True(t, ok)
	assert.Equal(t, 1, tree.Len())
}

func TestCatalogUnknownCategory(t *testing.T) {
	var c catalog.Catalog
	_, found := c.FindExact("horror", "Alien")
	assert.False(t, found)
	_, found = c.FindNearest("horror", 5)
	assert.False(t, found)
	_, ok := c.Tree("horror")
	assert.False(t, ok)
	assert.Empty(t, c.Categories())

	// The zero value accepts upserts.
	c.Upsert("horror", "Alien", 8)
	e, found := c.FindExact("horror", "Alien")
	require.True(t, found)
	assert.Equal(t, 8.0, e.Sum)
}
