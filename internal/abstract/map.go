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

import "strings"

// Map is an implementation of a red-black tree whose values are merged,
// rather than replaced, when a key is upserted more than once.
//
// Nodes live in an arena and refer to one another by Handle. Entries are
// never removed, so a node's handle is stable for the life of the map.
//
// A Map is not safe for concurrent use; callers must serialize all
// operations, including reads.
type Map[K, V any, VP Aug[V]] struct {
	root  Handle
	arena arena[K, V]
	cfg   Config[K]
}

// MakeMap constructs an empty Map ordered by cmp.
func MakeMap[K, V any, VP Aug[V]](cmp func(K, K) int) Map[K, V, VP] {
	return Map[K, V, VP]{cfg: makeConfig(cmp)}
}

// Upsert adds k to the map with value v. If k is already present, v is
// merged into the existing value and the shape of the tree is left
// untouched. It returns true if a new entry was created.
func (m *Map[K, V, VP]) Upsert(k K, v V) (inserted bool) {
	parent, cur := None, m.root
	var c int
	for cur != None {
		n := m.arena.at(cur)
		c = m.cfg.cmp(k, n.key)
		switch {
		case c < 0:
			parent, cur = cur, n.left
		case c > 0:
			parent, cur = cur, n.right
		default:
			VP(&n.value).Merge(v)
			return false
		}
	}
	h := m.arena.alloc(k, v, parent)
	switch {
	case parent == None:
		m.root = h
	case c < 0:
		m.arena.at(parent).left = h
	default:
		m.arena.at(parent).right = h
	}
	m.fixInsert(h)
	return true
}

// fixInsert restores the red-black invariants after n, a new red node, has
// been linked into the tree.
func (m *Map[K, V, VP]) fixInsert(n Handle) {
	a := &m.arena
	for n != m.root && a.isRed(n) && a.isRed(a.parent(n)) {
		// The parent is red so it cannot be the root; g exists.
		p := a.parent(n)
		g := a.parent(p)
		if p == a.left(g) {
			if u := a.right(g); a.isRed(u) {
				a.setColor(p, black)
				a.setColor(u, black)
				a.setColor(g, red)
				n = g
				continue
			}
			if n == a.right(p) {
				m.rotateLeft(p)
				p = n
			}
			m.rotateRight(g)
		} else {
			if u := a.left(g); a.isRed(u) {
				a.setColor(p, black)
				a.setColor(u, black)
				a.setColor(g, red)
				n = g
				continue
			}
			if n == a.left(p) {
				m.rotateRight(p)
				p = n
			}
			m.rotateLeft(g)
		}
		// p now occupies g's old position with g as its child.
		a.swapColors(p, g)
		break
	}
	a.setColor(m.root, black)
}

// rotateLeft lifts x's right child y into x's position:
//
//	  x            y
//	 / \          / \
//	a   y   =>   x   c
//	   / \      / \
//	  b   c    a   b
//
// It is illegal to call if x has no right child.
func (m *Map[K, V, VP]) rotateLeft(x Handle) {
	xn := m.arena.at(x)
	y := xn.right
	yn := m.arena.at(y)
	xn.right = yn.left
	if yn.left != None {
		m.arena.at(yn.left).parent = x
	}
	yn.parent = xn.parent
	m.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

// rotateRight lifts x's left child y into x's position. It is the mirror
// of rotateLeft and it is illegal to call if x has no left child.
func (m *Map[K, V, VP]) rotateRight(x Handle) {
	xn := m.arena.at(x)
	y := xn.left
	yn := m.arena.at(y)
	xn.left = yn.right
	if yn.right != None {
		m.arena.at(yn.right).parent = x
	}
	yn.parent = xn.parent
	m.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// replaceChild makes repl take the place of old under parent, or the root
// if parent is None. It does not touch repl's parent link.
func (m *Map[K, V, VP]) replaceChild(parent, old, repl Handle) {
	if parent == None {
		m.root = repl
		return
	}
	if p := m.arena.at(parent); p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// Find returns the handle of the node holding k, or None.
func (m *Map[K, V, VP]) Find(k K) Handle {
	cur := m.root
	for cur != None {
		n := m.arena.at(cur)
		switch c := m.cfg.cmp(k, n.key); {
		case c < 0:
			cur = n.left
		case c > 0:
			cur = n.right
		default:
			return cur
		}
	}
	return None
}

// Get returns a copy of the value stored for k.
func (m *Map[K, V, VP]) Get(k K) (v V, found bool) {
	h := m.Find(k)
	if h == None {
		return v, false
	}
	return m.arena.at(h).value, true
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (m *Map[K, V, VP]) MakeIter() Iterator[K, V, VP] {
	it := Iterator[K, V, VP]{r: m}
	it.Reset()
	return it
}

// Height returns the number of nodes on the longest path from the root to
// a leaf.
func (m *Map[K, V, VP]) Height() int {
	return m.height(m.root)
}

func (m *Map[K, V, VP]) height(h Handle) int {
	if h == None {
		return 0
	}
	n := m.arena.at(h)
	return 1 + max(m.height(n.left), m.height(n.right))
}

// Len returns the number of entries currently in the map.
func (m *Map[K, V, VP]) Len() int {
	return m.arena.len()
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (m *Map[K, V, VP]) String() string {
	if m.root == None {
		return ";"
	}
	var b strings.Builder
	m.arena.writeString(&b, m.root)
	return b.String()
}
