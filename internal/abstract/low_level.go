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

// LowLevelMap is exposed to developers within this module for use in
// implementing augmented search functionality. It is a read-only view of
// the tree's structure.
type LowLevelMap[K, V any, VP Aug[V]] Map[K, V, VP]

// LowLevel converts a Map to a LowLevelMap. Given this package is internal,
// callers outside of this module cannot construct a LowLevelMap.
func LowLevel[K, V any, VP Aug[V]](m *Map[K, V, VP]) *LowLevelMap[K, V, VP] {
	return (*LowLevelMap[K, V, VP])(m)
}

// Root returns the root node, or None if the map is empty.
func (l *LowLevelMap[K, V, VP]) Root() Handle {
	return l.root
}

// Left returns the left child of h, or None. It is illegal to call with
// None, as are the other accessors below.
func (l *LowLevelMap[K, V, VP]) Left(h Handle) Handle {
	return l.arena.left(h)
}

// Right returns the right child of h, or None.
func (l *LowLevelMap[K, V, VP]) Right(h Handle) Handle {
	return l.arena.right(h)
}

// Key returns the key stored at h.
func (l *LowLevelMap[K, V, VP]) Key(h Handle) K {
	return l.arena.at(h).key
}

// Value returns a copy of the value stored at h.
func (l *LowLevelMap[K, V, VP]) Value(h Handle) V {
	return l.arena.at(h).value
}

// IsRed reports whether h is a red node. None is black.
func (l *LowLevelMap[K, V, VP]) IsRed(h Handle) bool {
	return l.arena.isRed(h)
}
