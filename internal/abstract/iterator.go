// Copyright 2018 The Cockroach Authors.
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

package abstract

// Iterator is responsible for search and traversal within a Map. Nodes
// carry parent links, so the iterator needs no stack.
type Iterator[K, V any, VP Aug[V]] struct {
	r   *Map[K, V, VP]
	cur Handle
}

// Reset positions the Iterator at an invalid position.
func (i *Iterator[K, V, VP]) Reset() {
	i.cur = None
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, VP]) SeekGE(key K) {
	i.Reset()
	a := &i.r.arena
	for h := i.r.root; h != None; {
		if i.r.cfg.cmp(key, a.at(h).key) <= 0 {
			i.cur = h
			h = a.left(h)
		} else {
			h = a.right(h)
		}
	}
}

// SeekLT seeks to the last key less-than the provided key.
func (i *Iterator[K, V, VP]) SeekLT(key K) {
	i.Reset()
	a := &i.r.arena
	for h := i.r.root; h != None; {
		if i.r.cfg.cmp(a.at(h).key, key) < 0 {
			i.cur = h
			h = a.right(h)
		} else {
			h = a.left(h)
		}
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, VP]) First() {
	i.cur = i.r.arena.min(i.r.root)
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, VP]) Last() {
	i.cur = i.r.arena.max(i.r.root)
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, VP]) Next() {
	if i.cur == None {
		return
	}
	i.cur = i.r.arena.successor(i.cur)
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, VP]) Prev() {
	if i.cur == None {
		return
	}
	i.cur = i.r.arena.predecessor(i.cur)
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, VP]) Valid() bool {
	return i.cur != None
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, VP]) Key() K {
	return i.r.arena.at(i.cur).key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, VP]) Value() V {
	return i.r.arena.at(i.cur).value
}
