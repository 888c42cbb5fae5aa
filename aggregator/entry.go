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
	"fmt"

	"github.com/nullromo/compression-accelerator/models/bench"
)

// Entry is the flattened form of one aggregated value, used for snapshots.
type Entry struct {
	Kind       bench.Kind `cbor:"1,keyasint"`
	Length     uint64     `cbor:"2,keyasint"`
	Ratio      float64    `cbor:"3,keyasint"`
	Efficiency float64    `cbor:"4,keyasint"`
}

// Entries returns all aggregated values, group by group in rendering order,
// and in insertion order within each group.
func (a *Aggregator) Entries() []Entry {
	entries := make([]Entry, 0, a.Len())
	for _, kind := range bench.Kinds() {
		group := a.groups[kind]
		for _, length := range group.order {
			m := group.metrics[length]
			entry := Entry{
				Kind:       kind,
				Length:     length,
				Ratio:      m.Ratio,
				Efficiency: m.Efficiency,
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// FromEntries rebuilds an aggregator from previously exported entries.
func FromEntries(entries []Entry) (*Aggregator, error) {
	a := New()
	for i, entry := range entries {
		group, ok := a.groups[entry.Kind]
		if !ok {
			return nil, fmt.Errorf("invalid kind in entry %d (kind: %s)", i, entry.Kind)
		}
		group.set(entry.Length, bench.Metrics{Ratio: entry.Ratio, Efficiency: entry.Efficiency})
	}
	return a, nil
}
