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


package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/nullromo/compression-accelerator/aggregator"
	"github.com/nullromo/compression-accelerator/metrics"
	"github.com/nullromo/compression-accelerator/reader"
)

// Banners printed before each report.
const (
	BannerRows  = "Per-row results:"
	BannerLatex = "LaTeX table:"
	BannerFlat  = "Spreadsheet columns:"
)

// Generator reads benchmark output and prints the per-row, LaTeX and
// spreadsheet reports.
type Generator struct {
	cfg Config
	log zerolog.Logger
	out io.Writer
}

// New returns a new report generator that writes its reports to out.
func New(log zerolog.Logger, out io.Writer, opts ...Option) (*Generator, error) {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	err := validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}

	g := Generator{
		cfg: cfg,
		log: log.With().Str("component", "report").Logger(),
		out: out,
	}

	return &g, nil
}

// File opens the benchmark output at path and generates all reports for it.
func (g *Generator) File(path string) (*aggregator.Aggregator, error) {

	input, err := OpenInput(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input: %w", err)
	}

	return g.Input(input)
}

// Input generates all reports for the given input and closes it afterwards.
// A failure to close is reported along with any generation error.
func (g *Generator) Input(input io.ReadCloser) (agg *aggregator.Aggregator, err error) {
	defer func() {
		closeErr := input.Close()
		if closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("could not close input: %w", closeErr)).ErrorOrNil()
		}
	}()

	return g.Generate(input)
}

// Generate prints the per-row report while reading the input, and then the
// LaTeX and spreadsheet reports for the aggregated values.
func (g *Generator) Generate(input io.Reader) (*aggregator.Aggregator, error) {

	agg, err := g.Rows(input)
	if err != nil {
		return nil, err
	}

	err = g.Tables(agg)
	if err != nil {
		return nil, err
	}

	return agg, nil
}

// Rows prints one line per benchmark record and aggregates the records by kind.
func (g *Generator) Rows(input io.Reader) (*aggregator.Aggregator, error) {

	rows, err := reader.New(input,
		reader.WithDelimiter(g.cfg.Delimiter),
		reader.WithHeaders(g.cfg.Headers...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not initialize reader: %w", err)
	}

	_, err = fmt.Fprintln(g.out, BannerRows)
	if err != nil {
		return nil, fmt.Errorf("could not write banner: %w", err)
	}

	agg := aggregator.New()
	size := metrics.NewSize("benchmark")
	count := 0
	for {
		record, err := rows.Record()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record: %w", err)
		}

		m, err := record.Metrics()
		if err != nil {
			return nil, fmt.Errorf("could not compute metrics (line: %d): %w", rows.Line(), err)
		}

		_, err = fmt.Fprintln(g.out, RowLine(record, m))
		if err != nil {
			return nil, fmt.Errorf("could not write row: %w", err)
		}
		count++
		size.Bytes(record.Kind.String(), record.Length, record.CompressedLength)

		ok := agg.Add(record, m)
		if !ok {
			g.log.Debug().
				Int("line", rows.Line()).
				Str("type", record.Kind.String()).
				Msg("skipping aggregation of unknown benchmark type")
		}
	}

	g.log.Info().
		Int("records", count).
		Int("aggregated", agg.Len()).
		Msg("benchmark records processed")
	size.Output(g.log)

	return agg, nil
}

// Tables prints the LaTeX and spreadsheet reports for aggregated values.
func (g *Generator) Tables(agg *aggregator.Aggregator) error {

	_, err := fmt.Fprintln(g.out, BannerLatex)
	if err != nil {
		return fmt.Errorf("could not write banner: %w", err)
	}
	err = Latex(g.out, agg)
	if err != nil {
		return fmt.Errorf("could not write LaTeX table: %w", err)
	}

	_, err = fmt.Fprintln(g.out, BannerFlat)
	if err != nil {
		return fmt.Errorf("could not write banner: %w", err)
	}
	err = Flat(g.out, agg)
	if err != nil {
		return fmt.Errorf("could not write spreadsheet columns: %w", err)
	}

	return nil
}
