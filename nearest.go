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

package aggtree

import (
	"math"

	"github.com/ajwerner/aggtree/internal/abstract"
)

type lowLevel = abstract.LowLevelMap[string, Aggregate, *Aggregate]

// match is the best candidate seen so far by a nearest scan.
type match struct {
	h    abstract.Handle
	dist float64
}

// FindNearest returns the entry whose mean is closest to target. The tree is
// ordered by key rather than by mean, so every entry is examined. Entries
// are visited in pre-order (node, left subtree, right subtree) and the first
// one at the minimal distance wins. It returns false only if the tree is
// empty.
func (t *Tree) FindNearest(target float64) (_ Entry, found bool) {
	ll := abstract.LowLevel(&t.m)
	best := nearest(ll, ll.Root(), target, match{h: abstract.None})
	if best.h == abstract.None {
		return Entry{}, false
	}
	return Entry{Key: ll.Key(best.h), Aggregate: ll.Value(best.h)}, true
}

func nearest(ll *lowLevel, h abstract.Handle, target float64, best match) match {
	if h == abstract.None {
		return best
	}
	// The first node visited is always taken so that a NaN distance still
	// yields a result.
	if d := math.Abs(ll.Value(h).Mean - target); best.h == abstract.None || d < best.dist {
		best = match{h: h, dist: d}
	}
	best = nearest(ll, ll.Left(h), target, best)
	return nearest(ll, ll.Right(h), target, best)
}
