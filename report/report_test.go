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


package report_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullromo/compression-accelerator/aggregator"
	"github.com/nullromo/compression-accelerator/models/bench"
	"github.com/nullromo/compression-accelerator/report"
	"github.com/nullromo/compression-accelerator/testing/mocks"
)

const genericReport = `Per-row results:
random	1000	  1.0000	  3.000
real	1000	  2.5000	  1.500
repeat	1000	 20.0000	  0.800
random	100	  2.0000	  2.000
real	100	  4.0000	  0.500
repeat	100	 10.0000	  0.900
other	100	 10.0000	  0.100
LaTeX table:
100 & 2.0000 & 2.000 & 4.0000 & 0.500 & 10.0000 & 0.900 \\
\hline
1000 & 1.0000 & 3.000 & 2.5000 & 1.500 & 20.0000 & 0.800 \\
\hline
Spreadsheet columns:
random ratio
2.0000
1.0000
random efficiency
2.0000
3.0000
real ratio
4.0000
2.5000
real efficiency
0.5000
1.5000
repeat ratio
10.0000
20.0000
repeat efficiency
0.9000
0.8000
`

const emptyReport = `Per-row results:
LaTeX table:
Spreadsheet columns:
random ratio
random efficiency
real ratio
real efficiency
repeat ratio
repeat efficiency
`

func newGenerator(t *testing.T, out io.Writer, opts ...report.Option) *report.Generator {
	t.Helper()

	gen, err := report.New(mocks.NoopLogger, out, opts...)
	require.NoError(t, err)

	return gen
}

func TestNew(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		gen, err := report.New(mocks.NoopLogger, &bytes.Buffer{}, report.WithDelimiter(' '), report.WithHeaders("TYPE"))

		require.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("handles invalid delimiter", func(t *testing.T) {
		t.Parallel()

		for _, delimiter := range []rune{0, '"', '\n', '\r'} {
			_, err := report.New(mocks.NoopLogger, &bytes.Buffer{}, report.WithDelimiter(delimiter))

			assert.Error(t, err, "delimiter %q", delimiter)
		}
	})

	t.Run("handles empty header marker", func(t *testing.T) {
		t.Parallel()

		_, err := report.New(mocks.NoopLogger, &bytes.Buffer{}, report.WithHeaders("type", ""))

		assert.Error(t, err)
	})
}

func TestGenerator_Generate(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		agg, err := gen.Generate(strings.NewReader(mocks.GenericInput))

		require.NoError(t, err)
		assert.Equal(t, genericReport, out.String())
		assert.Equal(t, 6, agg.Len())
	})

	t.Run("handles header without data", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		agg, err := gen.Generate(strings.NewReader("type;length;cycles;compressedLength\n"))

		require.NoError(t, err)
		assert.Equal(t, emptyReport, out.String())
		assert.Zero(t, agg.Len())
	})

	t.Run("keeps unknown kinds out of aggregated reports", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		agg, err := gen.Generate(strings.NewReader("zeros;42;84;2\n"))

		require.NoError(t, err)
		assert.Equal(t, strings.Replace(emptyReport, "Per-row results:\n", "Per-row results:\nzeros\t42\t 21.0000\t  2.000\n", 1), out.String())
		assert.Zero(t, agg.Len())
	})

	t.Run("uses the latest value for duplicate lengths", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		agg, err := gen.Generate(strings.NewReader("real;100;50;25\nreal;100;100;50\n"))

		require.NoError(t, err)
		got, ok := agg.Group(bench.KindReal).Lookup(100)
		require.True(t, ok)
		assert.Equal(t, bench.Metrics{Ratio: 2, Efficiency: 1}, got)
		assert.Contains(t, out.String(), "100 & - & - & 2.0000 & 1.000 & - & - \\\\\n")
	})

	t.Run("uses configured delimiter", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out, report.WithDelimiter(','), report.WithHeaders("kind"))

		_, err := gen.Generate(strings.NewReader("kind,length,cycles,compressed\nrandom,100,200,50\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "random\t100\t  2.0000\t  2.000\n")
	})

	t.Run("handles malformed numbers", func(t *testing.T) {
		t.Parallel()

		gen := newGenerator(t, &bytes.Buffer{})

		_, err := gen.Generate(strings.NewReader("real;100;50;25\nreal;abc;50;25\n"))

		var perr *bench.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, bench.FieldLength, perr.Field)
	})

	t.Run("handles zero compressed length", func(t *testing.T) {
		t.Parallel()

		gen := newGenerator(t, &bytes.Buffer{})

		_, err := gen.Generate(strings.NewReader("real;100;50;0\n"))

		assert.ErrorIs(t, err, bench.ErrZeroDenominator)
	})

	t.Run("handles output failure", func(t *testing.T) {
		t.Parallel()

		out := mocks.BaselineWriter(t)
		out.WriteFunc = func([]byte) (int, error) {
			return 0, mocks.GenericError
		}
		gen := newGenerator(t, out)

		_, err := gen.Generate(strings.NewReader(mocks.GenericInput))

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestGenerator_File(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "benchmark.csv")
		require.NoError(t, os.WriteFile(path, []byte(mocks.GenericInput), 0644))

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		_, err := gen.File(path)

		require.NoError(t, err)
		assert.Equal(t, genericReport, out.String())
	})

	t.Run("reads compressed input", func(t *testing.T) {
		t.Parallel()

		var compressed bytes.Buffer
		enc, err := zstd.NewWriter(&compressed)
		require.NoError(t, err)
		_, err = enc.Write([]byte(mocks.GenericInput))
		require.NoError(t, err)
		require.NoError(t, enc.Close())

		path := filepath.Join(t.TempDir(), "benchmark.csv"+report.CompressedSuffix)
		require.NoError(t, os.WriteFile(path, compressed.Bytes(), 0644))

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		_, err = gen.File(path)

		require.NoError(t, err)
		assert.Equal(t, genericReport, out.String())
	})

	t.Run("handles missing file", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		_, err := gen.File(filepath.Join(t.TempDir(), "missing.csv"))

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, out.String())
	})
}

func TestGenerator_Input(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		closed := false
		input := mocks.BaselineReader(t, mocks.GenericInput)
		input.CloseFunc = func() error {
			closed = true
			return nil
		}

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		agg, err := gen.Input(input)

		require.NoError(t, err)
		assert.True(t, closed)
		assert.Equal(t, genericReport, out.String())
		assert.Equal(t, 6, agg.Len())
	})

	t.Run("handles close failure", func(t *testing.T) {
		t.Parallel()

		input := mocks.BaselineReader(t, mocks.GenericInput)
		input.CloseFunc = func() error {
			return mocks.GenericError
		}

		var out bytes.Buffer
		gen := newGenerator(t, &out)

		_, err := gen.Input(input)

		assert.ErrorIs(t, err, mocks.GenericError)
		assert.Equal(t, genericReport, out.String())
	})

	t.Run("reports both read and close failures", func(t *testing.T) {
		t.Parallel()

		closeErr := errors.New("close failed")
		input := mocks.BaselineReader(t, "real;100;50;0\n")
		input.CloseFunc = func() error {
			return closeErr
		}

		gen := newGenerator(t, &bytes.Buffer{})

		_, err := gen.Input(input)

		assert.ErrorIs(t, err, bench.ErrZeroDenominator)
		assert.ErrorIs(t, err, closeErr)
	})

	t.Run("closes input after read failure", func(t *testing.T) {
		t.Parallel()

		closed := false
		input := mocks.BaselineReader(t, "")
		input.ReadFunc = func([]byte) (int, error) {
			return 0, mocks.GenericError
		}
		input.CloseFunc = func() error {
			closed = true
			return nil
		}

		gen := newGenerator(t, &bytes.Buffer{})

		_, err := gen.Input(input)

		assert.ErrorIs(t, err, mocks.GenericError)
		assert.True(t, closed)
	})
}

func TestRowLine(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got := report.RowLine(mocks.GenericRecord, mocks.GenericMetrics)

		assert.Equal(t, "real\t100\t  4.0000\t  0.500", got)
	})

	t.Run("aligns values in fixed-width columns", func(t *testing.T) {
		t.Parallel()

		small := report.RowLine(mocks.GenericRecord, bench.Metrics{Ratio: 1, Efficiency: 0.5})
		large := report.RowLine(mocks.GenericRecord, bench.Metrics{Ratio: 123.45678, Efficiency: 98.7654})

		assert.Equal(t, "real\t100\t  1.0000\t  0.500", small)
		assert.Equal(t, "real\t100\t123.4568\t 98.765", large)
		assert.Equal(t, len(small), len(large))
	})

	t.Run("rounds to fixed precision", func(t *testing.T) {
		t.Parallel()

		record := bench.Record{Kind: bench.KindRandom, Length: 3, Cycles: 10, CompressedLength: 7}
		m, err := record.Metrics()
		require.NoError(t, err)

		got := report.RowLine(&record, m)

		assert.Equal(t, "random\t3\t  0.4286\t  3.333", got)
	})
}

func TestLatex(t *testing.T) {
	t.Run("joins groups on length", func(t *testing.T) {
		t.Parallel()

		agg := aggregator.New()
		agg.Add(&bench.Record{Kind: bench.KindRepeat, Length: 100}, bench.Metrics{Ratio: 10, Efficiency: 0.9})
		agg.Add(&bench.Record{Kind: bench.KindRandom, Length: 2}, bench.Metrics{Ratio: 1, Efficiency: 3})
		agg.Add(&bench.Record{Kind: bench.KindRandom, Length: 100}, bench.Metrics{Ratio: 2, Efficiency: 2})
		agg.Add(&bench.Record{Kind: bench.KindReal, Length: 10}, bench.Metrics{Ratio: 4, Efficiency: 0.5})

		var out bytes.Buffer
		err := report.Latex(&out, agg)

		require.NoError(t, err)
		want := `2 & 1.0000 & 3.000 & - & - & - & - \\
\hline
10 & - & - & 4.0000 & 0.500 & - & - \\
\hline
100 & 2.0000 & 2.000 & - & - & 10.0000 & 0.900 \\
\hline
`
		assert.Equal(t, want, out.String())
	})

	t.Run("handles empty aggregator", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		err := report.Latex(&out, aggregator.New())

		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestFlat(t *testing.T) {
	t.Run("sorts lengths numerically", func(t *testing.T) {
		t.Parallel()

		agg := aggregator.New()
		agg.Add(&bench.Record{Kind: bench.KindReal, Length: 100}, bench.Metrics{Ratio: 3, Efficiency: 0.3})
		agg.Add(&bench.Record{Kind: bench.KindReal, Length: 2}, bench.Metrics{Ratio: 1, Efficiency: 0.1})
		agg.Add(&bench.Record{Kind: bench.KindReal, Length: 10}, bench.Metrics{Ratio: 2, Efficiency: 0.2})

		var out bytes.Buffer
		err := report.Flat(&out, agg)

		require.NoError(t, err)
		want := `random ratio
random efficiency
real ratio
1.0000
2.0000
3.0000
real efficiency
0.1000
0.2000
0.3000
repeat ratio
repeat efficiency
`
		assert.Equal(t, want, out.String())
	})

	t.Run("handles output failure", func(t *testing.T) {
		t.Parallel()

		out := mocks.BaselineWriter(t)
		out.WriteFunc = func([]byte) (int, error) {
			return 0, mocks.GenericError
		}

		err := report.Flat(out, aggregator.New())

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestColumnRatio(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := report.ColumnRatio([]string{"real", "100", "x", "y", "250"}, 4, 1)

		require.NoError(t, err)
		assert.Equal(t, 2.5, got)
	})

	t.Run("handles missing columns", func(t *testing.T) {
		t.Parallel()

		_, err := report.ColumnRatio([]string{"real", "100"}, 4, 1)

		assert.Error(t, err)
	})

	t.Run("handles malformed numbers", func(t *testing.T) {
		t.Parallel()

		_, err := report.ColumnRatio([]string{"real", "abc", "x", "y", "250"}, 4, 1)

		assert.Error(t, err)
	})

	t.Run("accepts padded numbers", func(t *testing.T) {
		t.Parallel()

		got, err := report.ColumnRatio([]string{"real", " 100\t", "x", "y", " 250"}, 4, 1)

		require.NoError(t, err)
		assert.Equal(t, 2.5, got)
	})

	t.Run("handles zero denominator", func(t *testing.T) {
		t.Parallel()

		_, err := report.ColumnRatio([]string{"real", "0", "x", "y", "250"}, 4, 1)

		assert.ErrorIs(t, err, bench.ErrZeroDenominator)
	})
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "4.0", report.FormatRatio(4))
	assert.Equal(t, "0.0", report.FormatRatio(0))
	assert.Equal(t, "2.5", report.FormatRatio(2.5))
	assert.Equal(t, "0.3333333333333333", report.FormatRatio(1.0/3.0))
	assert.Equal(t, "-4.0", report.FormatRatio(-4))
}
