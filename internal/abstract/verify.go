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

import (
	"errors"
	"fmt"
)

// Errors returned by Verify.
var (
	ErrRedRoot          = errors.New("root is red")
	ErrRedViolation     = errors.New("red node has a red child")
	ErrBlackHeight      = errors.New("black-height mismatch")
	ErrOrder            = errors.New("keys out of order")
	ErrParentLink       = errors.New("parent link does not match child link")
	ErrUnreachableNodes = errors.New("allocated nodes unreachable from root")
)

// Verify walks the whole tree and checks the red-black and search-tree
// invariants along with the consistency of parent and child links. It
// returns the first violation found. It is meant for tests.
func (m *Map[K, V, VP]) Verify() error {
	if m.root == None {
		if n := m.arena.len(); n != 0 {
			return fmt.Errorf("%w: %d nodes, empty root", ErrUnreachableNodes, n)
		}
		return nil
	}
	if m.arena.isRed(m.root) {
		return ErrRedRoot
	}
	if p := m.arena.parent(m.root); p != None {
		return fmt.Errorf("%w: root %v has parent %d", ErrParentLink, m.arena.at(m.root).key, p)
	}
	v := verifier[K, V, VP]{m: m}
	if _, err := v.walk(m.root, None, None); err != nil {
		return err
	}
	if v.seen != m.arena.len() {
		return fmt.Errorf("%w: reached %d of %d", ErrUnreachableNodes, v.seen, m.arena.len())
	}
	return nil
}

type verifier[K, V any, VP Aug[V]] struct {
	m    *Map[K, V, VP]
	seen int
}

// walk checks the subtree rooted at h, whose keys must lie strictly between
// the keys at lo and hi (None meaning unbounded), and returns its
// black-height.
func (v *verifier[K, V, VP]) walk(h, lo, hi Handle) (int, error) {
	if h == None {
		return 0, nil
	}
	a := &v.m.arena
	if v.seen++; v.seen > a.len() {
		return 0, fmt.Errorf("%w: cycle through %v", ErrParentLink, a.at(h).key)
	}
	n := a.at(h)
	cmp := v.m.cfg.cmp
	if lo != None && cmp(a.at(lo).key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: %v not after %v", ErrOrder, n.key, a.at(lo).key)
	}
	if hi != None && cmp(n.key, a.at(hi).key) >= 0 {
		return 0, fmt.Errorf("%w: %v not before %v", ErrOrder, n.key, a.at(hi).key)
	}
	for _, c := range [2]Handle{n.left, n.right} {
		if c == None {
			continue
		}
		if p := a.parent(c); p != h {
			return 0, fmt.Errorf("%w: %v is a child of %v but points at %d",
				ErrParentLink, a.at(c).key, n.key, p)
		}
		if n.color == red && a.isRed(c) {
			return 0, fmt.Errorf("%w: %v -> %v", ErrRedViolation, n.key, a.at(c).key)
		}
	}
	lh, err := v.walk(n.left, lo, h)
	if err != nil {
		return 0, err
	}
	rh, err := v.walk(n.right, h, hi)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: at %v left %d, right %d", ErrBlackHeight, n.key, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}
