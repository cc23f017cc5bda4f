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

import "math"

// arena owns every node of a Map. Handle h lives at nodes[h-1] so that the
// zero Handle can mean "no node".
//
// Pointers returned by at are invalidated by the next alloc.
type arena[K, V any] struct {
	nodes []node[K, V]
}

func (a *arena[K, V]) alloc(k K, v V, parent Handle) Handle {
	if len(a.nodes) >= math.MaxInt32 {
		panic("abstract: arena exhausted")
	}
	a.nodes = append(a.nodes, node[K, V]{
		key:    k,
		value:  v,
		color:  red,
		parent: parent,
	})
	return Handle(len(a.nodes))
}

func (a *arena[K, V]) at(h Handle) *node[K, V] {
	return &a.nodes[h-1]
}

func (a *arena[K, V]) len() int {
	return len(a.nodes)
}

func (a *arena[K, V]) parent(h Handle) Handle { return a.at(h).parent }
func (a *arena[K, V]) left(h Handle) Handle   { return a.at(h).left }
func (a *arena[K, V]) right(h Handle) Handle  { return a.at(h).right }

// isRed returns false for None: absent children count as black.
func (a *arena[K, V]) isRed(h Handle) bool {
	return h != None && a.at(h).color == red
}

func (a *arena[K, V]) setColor(h Handle, c color) {
	a.at(h).color = c
}

func (a *arena[K, V]) swapColors(x, y Handle) {
	xn, yn := a.at(x), a.at(y)
	xn.color, yn.color = yn.color, xn.color
}

// min returns the leftmost node of the subtree rooted at h.
func (a *arena[K, V]) min(h Handle) Handle {
	if h == None {
		return None
	}
	for l := a.left(h); l != None; l = a.left(h) {
		h = l
	}
	return h
}

// max returns the rightmost node of the subtree rooted at h.
func (a *arena[K, V]) max(h Handle) Handle {
	if h == None {
		return None
	}
	for r := a.right(h); r != None; r = a.right(h) {
		h = r
	}
	return h
}

// successor returns the in-order successor of h, or None.
func (a *arena[K, V]) successor(h Handle) Handle {
	if r := a.right(h); r != None {
		return a.min(r)
	}
	p := a.parent(h)
	for p != None && h == a.right(p) {
		h, p = p, a.parent(p)
	}
	return p
}

// predecessor returns the in-order predecessor of h, or None.
func (a *arena[K, V]) predecessor(h Handle) Handle {
	if l := a.left(h); l != None {
		return a.max(l)
	}
	p := a.parent(h)
	for p != None && h == a.left(p) {
		h, p = p, a.parent(p)
	}
	return p
}
