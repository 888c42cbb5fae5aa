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

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names of a benchmark row, in column order.
const (
	FieldType             = "type"
	FieldLength           = "length"
	FieldCycles           = "cycles"
	FieldCompressedLength = "compressed length"
)

// Record is a single row of benchmark output.
type Record struct {
	Kind             Kind
	Length           uint64
	Cycles           uint64
	CompressedLength uint64
}

// Metrics are the values derived from a record.
type Metrics struct {
	Ratio      float64
	Efficiency float64
}

// ParseRecord converts the non-empty fields of a row into a record. The line
// number is only used for error reporting.
func ParseRecord(line int, fields []string) (*Record, error) {

	names := []string{FieldType, FieldLength, FieldCycles, FieldCompressedLength}
	if len(fields) < len(names) {
		return nil, &ParseError{Line: line, Field: names[len(fields)], Err: ErrMissingField}
	}

	values := make([]uint64, 0, 3)
	for i, name := range names[1:] {
		value, err := strconv.ParseUint(strings.TrimSpace(fields[i+1]), 10, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Field: name, Value: fields[i+1], Err: err}
		}
		values = append(values, value)
	}

	record := Record{
		Kind:             Kind(fields[0]),
		Length:           values[0],
		Cycles:           values[1],
		CompressedLength: values[2],
	}

	return &record, nil
}

// Metrics computes the compression ratio and the cycles spent per byte of
// input for the record.
func (r Record) Metrics() (Metrics, error) {
	if r.CompressedLength == 0 {
		return Metrics{}, fmt.Errorf("could not compute ratio (length: %d): %w", r.Length, ErrZeroDenominator)
	}
	if r.Length == 0 {
		return Metrics{}, fmt.Errorf("could not compute efficiency (cycles: %d): %w", r.Cycles, ErrZeroDenominator)
	}

	m := Metrics{
		Ratio:      float64(r.Length) / float64(r.CompressedLength),
		Efficiency: float64(r.Cycles) / float64(r.Length),
	}

	return m, nil
}
