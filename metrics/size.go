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


package metrics

import (
	"sort"
	"sync"

	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// Size accumulates original and compressed byte counts per category.
type Size struct {
	sync.Mutex
	title      string
	original   map[string]metrics.Counter
	compressed map[string]metrics.Counter
}

func NewSize(title string) *Size {
	s := Size{
		title:      title,
		original:   make(map[string]metrics.Counter),
		compressed: make(map[string]metrics.Counter),
	}

	return &s
}

func (s *Size) Bytes(category string, originalCount uint64, compressedCount uint64) {
	s.Lock()
	defer s.Unlock()
	original, ok := s.original[category]
	if !ok {
		original = metrics.NewCounter()
		s.original[category] = original
	}
	compressed, ok := s.compressed[category]
	if !ok {
		compressed = metrics.NewCounter()
		s.compressed[category] = compressed
	}
	original.Inc(int64(originalCount))
	compressed.Inc(int64(compressedCount))
}

// Totals returns the original and compressed byte counts of a category.
func (s *Size) Totals(category string) (int64, int64) {
	s.Lock()
	defer s.Unlock()
	original, ok := s.original[category]
	if !ok {
		return 0, 0
	}
	return original.Count(), s.compressed[category].Count()
}

func (s *Size) Output(log zerolog.Logger) {
	s.Lock()
	defer s.Unlock()

	log = log.With().Str("metrics", s.title).Str("type", "size").Logger()

	categories := make([]string, 0, len(s.original))
	originalTotal := int64(0)
	compressedTotal := int64(0)
	for category, original := range s.original {
		categories = append(categories, category)
		originalTotal += original.Count()
		compressedTotal += s.compressed[category].Count()
	}
	sort.Strings(categories)

	if originalTotal == 0 || compressedTotal == 0 {
		log.Info().Msg("no size metrics recorded")
		return
	}

	log.Info().
		Int64("original_total", originalTotal).
		Int64("compressed_total", compressedTotal).
		Float64("ratio", float64(originalTotal)/float64(compressedTotal)).
		Msg("size metrics for all categories")

	for _, category := range categories {
		originalCount := s.original[category].Count()
		compressedCount := s.compressed[category].Count()
		log.Info().
			Str("category", category).
			Int64("original_count", originalCount).
			Int64("compressed_count", compressedCount).
			Float64("original_percentage", float64(originalCount)/float64(originalTotal)).
			Float64("compressed_percentage", float64(compressedCount)/float64(compressedTotal)).
			Float64("ratio", float64(originalCount)/float64(compressedCount)).
			Msg("size metrics for one category")
	}
}
