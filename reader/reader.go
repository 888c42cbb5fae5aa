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


package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/nullromo/compression-accelerator/models/bench"
)

// Reader reads rows of delimited benchmark output. Empty fields are dropped,
// and rows that are too short or that are header rows are skipped.
type Reader struct {
	cfg  Config
	csv  *csv.Reader
	line int
}

// New returns a new reader for the given input.
func New(r io.Reader, opts ...Option) (*Reader, error) {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	err := validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid reader configuration: %w", err)
	}

	c := csv.NewReader(r)
	c.Comma = cfg.Delimiter
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	rd := Reader{
		cfg: cfg,
		csv: c,
	}

	return &rd, nil
}

// Fields returns the non-empty fields of the next row that passes the filter.
// It returns io.EOF once the input is exhausted.
func (r *Reader) Fields() ([]string, error) {
	for {
		row, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		r.line, _ = r.csv.FieldPos(0)

		fields := make([]string, 0, len(row))
		for _, field := range row {
			if field == "" {
				continue
			}
			fields = append(fields, field)
		}

		if len(fields) < r.cfg.MinFields {
			continue
		}
		if r.header(fields[0]) {
			continue
		}

		return fields, nil
	}
}

// Record returns the next row converted to a benchmark record. Rows that can
// not be converted result in a *bench.ParseError.
func (r *Reader) Record() (*bench.Record, error) {
	fields, err := r.Fields()
	if err != nil {
		return nil, err
	}

	return bench.ParseRecord(r.line, fields)
}

// Line returns the line number of the row that was read last.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) header(field string) bool {
	for _, header := range r.cfg.Headers {
		if field == header {
			return true
		}
	}
	return false
}
