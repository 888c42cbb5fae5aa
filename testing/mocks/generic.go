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


package mocks

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/nullromo/compression-accelerator/models/bench"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test report components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericLength = uint64(100)

	GenericRecord = &bench.Record{
		Kind:             bench.KindReal,
		Length:           GenericLength,
		Cycles:           50,
		CompressedLength: 25,
	}

	GenericMetrics = bench.Metrics{
		Ratio:      4,
		Efficiency: 0.5,
	}

	// GenericInput contains a header row, one row for every known kind at two lengths
	// in descending order, and a row of unknown kind.
	GenericInput = `type;length;cycles;compressedLength
random;1000;3000;1000
real;1000;1500;400
repeat;1000;800;50
random;100;200;50
real;100;50;25
repeat;100;90;10
other;100;10;10
`
)

// GenericRecords returns the given number of records of the given kind, with lengths
// increasing in powers of two.
func GenericRecords(kind bench.Kind, number int) []*bench.Record {
	records := make([]*bench.Record, 0, number)
	for i := 0; i < number; i++ {
		length := uint64(2) << i
		record := bench.Record{
			Kind:             kind,
			Length:           length,
			Cycles:           length * 3,
			CompressedLength: length/2 + 1,
		}
		records = append(records, &record)
	}
	return records
}
