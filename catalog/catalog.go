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

// Package catalog keeps one independent aggtree.Tree per category label.
package catalog

import (
	"sort"

	"github.com/ajwerner/aggtree"
)

// Catalog maps category labels to trees. The zero value is ready to use.
// Like the trees it holds, a Catalog is not safe for concurrent use.
type Catalog struct {
	trees map[string]*aggtree.Tree
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{trees: make(map[string]*aggtree.Tree)}
}

// Upsert records value for key in the tree of category, creating the tree
// on first use.
func (c *Catalog) Upsert(category, key string, value float64) {
	t, ok := c.trees[category]
	if !ok {
		if c.trees == nil {
			c.trees = make(map[string]*aggtree.Tree)
		}
		t = aggtree.New()
		c.trees[category] = t
	}
	t.Upsert(key, value)
}

// Tree returns the tree for category.
func (c *Catalog) Tree(category string) (*aggtree.Tree, bool) {
	t, ok := c.trees[category]
	return t, ok
}

// Categories returns the known categories in sorted order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.trees))
	for k := range c.trees {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.trees)
}

// FindExact looks key up in the tree of category.
func (c *Catalog) FindExact(category, key string) (aggtree.Entry, bool) {
	t, ok := c.trees[category]
	if !ok {
		return aggtree.Entry{}, false
	}
	return t.FindExact(key)
}

// FindNearest returns the entry of category whose mean is closest to
// target. See aggtree.Tree.FindNearest for the tie-breaking rule.
func (c *Catalog) FindNearest(category string, target float64) (aggtree.Entry, bool) {
	t, ok := c.trees[category]
	if !ok {
		return aggtree.Entry{}, false
	}
	return t.FindNearest(target)
}
