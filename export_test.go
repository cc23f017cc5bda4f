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

import "github.com/ajwerner/aggtree/internal/abstract"

type handle = abstract.Handle

const noHandle = abstract.None

func lowLevelOf(tree *Tree) *lowLevel {
	return abstract.LowLevel(&tree.m)
}

// shapeOf renders the tree's keys and colors without the aggregates.
func shapeOf(tree *Tree) string {
	ll := lowLevelOf(tree)
	var walk func(h handle) string
	walk = func(h handle) string {
		if h == noHandle {
			return "."
		}
		c := "b"
		if ll.IsRed(h) {
			c = "r"
		}
		return "(" + walk(ll.Left(h)) + " " + ll.Key(h) + "/" + c + " " + walk(ll.Right(h)) + ")"
	}
	return walk(ll.Root())
}
