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

// Package aggtree indexes entries by a unique string key in a red-black
// tree while keeping a running average of the values upserted for each
// key. Entries can be looked up by key or by the mean closest to a target.
package aggtree

import (
	"strings"

	"github.com/ajwerner/aggtree/internal/abstract"
)

// Entry is a copy of a key and its aggregate as stored in a Tree.
type Entry struct {
	Key string
	Aggregate
}

// Tree is a red-black tree of keyed running averages. The zero value is not
// usable; use New.
//
// A Tree is not safe for concurrent use. Distinct trees share no state.
type Tree struct {
	m abstract.Map[string, Aggregate, *Aggregate]
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{
		m: abstract.MakeMap[string, Aggregate, *Aggregate](strings.Compare),
	}
}

// Upsert records value for key. The first upsert of a key creates its entry;
// later ones update the entry's aggregate without changing the tree's shape.
func (t *Tree) Upsert(key string, value float64) {
	t.m.Upsert(key, observe(value))
}

// FindExact returns the entry for key.
func (t *Tree) FindExact(key string) (_ Entry, found bool) {
	a, found := t.m.Get(key)
	if !found {
		return Entry{}, false
	}
	return Entry{Key: key, Aggregate: a}, true
}

// Len returns the number of distinct keys in the tree.
func (t *Tree) Len() int {
	return t.m.Len()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.m.Height()
}

// String returns a string description of the tree's structure.
func (t *Tree) String() string {
	return t.m.String()
}

// Iterator iterates over the entries of a Tree in key order.
type Iterator struct {
	it abstract.Iterator[string, Aggregate, *Aggregate]
}

// MakeIter returns a new Iterator. It is not safe to continue using an
// Iterator after the tree is modified.
func (t *Tree) MakeIter() Iterator {
	return Iterator{t.m.MakeIter()}
}

func (it *Iterator) First()            { it.it.First() }
func (it *Iterator) Last()             { it.it.Last() }
func (it *Iterator) Next()             { it.it.Next() }
func (it *Iterator) Prev()             { it.it.Prev() }
func (it *Iterator) SeekGE(key string) { it.it.SeekGE(key) }
func (it *Iterator) SeekLT(key string) { it.it.SeekLT(key) }
func (it *Iterator) Valid() bool       { return it.it.Valid() }

// Cur returns the entry at the current position. It is illegal to call Cur
// if the Iterator is not valid.
func (it *Iterator) Cur() Entry {
	return Entry{Key: it.it.Key(), Aggregate: it.it.Value()}
}
