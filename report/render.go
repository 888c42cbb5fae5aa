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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nullromo/compression-accelerator/aggregator"
	"github.com/nullromo/compression-accelerator/models/bench"
)

const (
	rowFormat = "%s\t%d\t%8.4f\t%7.3f"

	ratioFormat      = "%.4f"
	efficiencyFormat = "%.3f"
	flatFormat       = "%.4f"

	latexMissing = "-"
	latexRule    = `\hline`
)

// RowLine formats the per-row report line for a record. Ratio and efficiency
// are right-aligned in fixed-width columns.
func RowLine(record *bench.Record, m bench.Metrics) string {
	return fmt.Sprintf(rowFormat, record.Kind, record.Length, m.Ratio, m.Efficiency)
}

// Latex writes one LaTeX table row per distinct length, in ascending order,
// with the ratio and efficiency of each group side by side. Groups without a
// value for a length get placeholder cells.
func Latex(w io.Writer, agg *aggregator.Aggregator) error {
	for _, length := range agg.Lengths() {
		cells := []string{strconv.FormatUint(length, 10)}
		for _, kind := range bench.Kinds() {
			m, ok := agg.Group(kind).Lookup(length)
			if !ok {
				cells = append(cells, latexMissing, latexMissing)
				continue
			}
			cells = append(cells, fmt.Sprintf(ratioFormat, m.Ratio), fmt.Sprintf(efficiencyFormat, m.Efficiency))
		}

		_, err := fmt.Fprintf(w, "%s \\\\\n%s\n", strings.Join(cells, " & "), latexRule)
		if err != nil {
			return err
		}
	}
	return nil
}

// Flat writes, for every group and metric, a header line followed by one
// value per length in ascending order.
func Flat(w io.Writer, agg *aggregator.Aggregator) error {
	for _, kind := range bench.Kinds() {
		group := agg.Group(kind)
		lengths := group.Lengths()

		columns := []struct {
			name  string
			value func(bench.Metrics) float64
		}{
			{name: "ratio", value: func(m bench.Metrics) float64 { return m.Ratio }},
			{name: "efficiency", value: func(m bench.Metrics) float64 { return m.Efficiency }},
		}
		for _, column := range columns {
			_, err := fmt.Fprintf(w, "%s %s\n", kind, column.name)
			if err != nil {
				return err
			}
			for _, length := range lengths {
				m, _ := group.Lookup(length)
				_, err = fmt.Fprintf(w, flatFormat+"\n", column.value(m))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
