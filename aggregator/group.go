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

// Group holds the metrics of one benchmark kind, keyed by input length.
type Group struct {
	kind    bench.Kind
	metrics map[uint64]bench.Metrics
	order   []uint64
}

func newGroup(kind bench.Kind) *Group {
	g := Group{
		kind:    kind,
		metrics: make(map[uint64]bench.Metrics),
	}

	return &g
}

// Kind returns the benchmark kind of the group.
func (g *Group) Kind() bench.Kind {
	return g.kind
}

// Lookup returns the metrics stored for the given length.
func (g *Group) Lookup(length uint64) (bench.Metrics, bool) {
	m, ok := g.metrics[length]
	return m, ok
}

// Len returns the number of distinct lengths in the group.
func (g *Group) Len() int {
	return len(g.order)
}

// Lengths returns the distinct lengths of the group in ascending order.
func (g *Group) Lengths() []uint64 {
	lengths := make([]uint64, len(g.order))
	copy(lengths, g.order)
	sort.Slice(lengths, func(i, j int) bool {
		return lengths[i] < lengths[j]
	})
	return lengths
}

// set stores the metrics for a length. A later value for the same length
// replaces the earlier one but keeps its original position.
func (g *Group) set(length uint64, m bench.Metrics) {
	_, ok := g.metrics[length]
	if !ok {
		g.order = append(g.order, length)
	}
	g.metrics[length] = m
}
