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

import (
	"fmt"
	"strings"
)

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "r"
	}
	return "b"
}

// Handle addresses a node in the arena of a Map. A handle stays valid for
// as long as the map is not Reset; nodes are never moved or freed.
type Handle int32

// None is the Handle of an absent node. A missing child is always None; the
// map has no sentinel leaves.
const None Handle = 0

type node[K, V any] struct {
	key                 K
	value               V
	color               color
	parent, left, right Handle
}

// writeString writes the subtree rooted at h in a format similar to
// https://en.wikipedia.org/wiki/Newick_format, with each node annotated
// by its color.
func (a *arena[K, V]) writeString(b *strings.Builder, h Handle) {
	n := a.at(h)
	if n.left != None {
		b.WriteString("(")
		a.writeString(b, n.left)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v/%v", n.key, n.value, n.color)
	if n.right != None {
		b.WriteString("(")
		a.writeString(b, n.right)
		b.WriteString(")")
	}
}
