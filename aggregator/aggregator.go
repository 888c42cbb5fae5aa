// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.


package aggregator

import (
	"sort"

	"github.com/nullromo/compression-accelerator/models/bench"
)

// Aggregator groups benchmark metrics by kind. Only known kinds are kept.
type Aggregator struct {
	groups map[bench.Kind]*Group
}

// New returns an empty aggregator with one group per known kind.
func New() *Aggregator {

	a := Aggregator{
		groups: make(map[bench.Kind]*Group),
	}
	for _, kind := range bench.Kinds() {
		a.groups[kind] = newGroup(kind)
	}

	return &a
}

// Add stores the metrics of a record in the group of its kind. It returns
// false if the record's kind is not aggregated.
func (a *Aggregator) Add(record *bench.Record, m bench.Metrics) bool {
	group, ok := a.groups[record.Kind]
	if !ok {
		return false
	}
	group.set(record.Length, m)
	return true
}

// Group returns the group for the given kind, or nil for unknown kinds.
func (a *Aggregator) Group(kind bench.Kind) *Group {
	return a.groups[kind]
}

// Lengths returns the union of the lengths of all groups in ascending order.
func (a *Aggregator) Lengths() []uint64 {
	seen := make(map[uint64]struct{})
	for _, group := range a.groups {
		for _, length := range group.order {
			seen[length] = struct{}{}
		}
	}

	lengths := make([]uint64, 0, len(seen))
	for length := range seen {
		lengths = append(lengths, length)
	}
	sort.Slice(lengths, func(i, j int) bool {
		return lengths[i] < lengths[j]
	})

	return lengths
}

// Len returns the number of entries across all groups.
func (a *Aggregator) Len() int {
	total := 0
	for _, group := range a.groups {
		total += group.Len()
	}
	return total
}
