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

// Aggregate is the running statistic kept for each key of a Tree.
type Aggregate struct {
	// Sum is the sum of every value upserted for the key.
	Sum float64
	// Count is the number of values upserted for the key.
	Count int
	// Mean is Sum / Count, recomputed on every merge.
	Mean float64
}

func observe(v float64) Aggregate {
	return Aggregate{Sum: v, Count: 1, Mean: v}
}

// Merge folds o into a.
func (a *Aggregate) Merge(o Aggregate) {
	a.Count += o.Count
	a.Sum += o.Sum
	if a.Count > 0 {
		a.Mean = a.Sum / float64(a.Count)
	}
}
