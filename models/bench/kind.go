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


package bench

// Kind is the input-generation strategy used for a benchmark run.
type Kind string

// Known benchmark kinds.
const (
	KindReal   = Kind("real")
	KindRandom = Kind("random")
	KindRepeat = Kind("repeat")
)

// Kinds returns the known kinds in the order in which they are rendered in
// aggregated reports.
func Kinds() []Kind {
	return []Kind{KindRandom, KindReal, KindRepeat}
}

// Known returns whether the kind is one of the aggregated benchmark kinds.
func (k Kind) Known() bool {
	switch k {
	case KindReal, KindRandom, KindRepeat:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
