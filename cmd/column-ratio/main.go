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


package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/nullromo/compression-accelerator/reader"
	"github.com/nullromo/compression-accelerator/report"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagDenominator int
		flagInput       string
		flagLevel       string
		flagNumerator   int
	)

	pflag.IntVarP(&flagDenominator, "denominator", "d", 1, "zero-based column used as denominator")
	pflag.StringVarP(&flagInput, "input", "i", "sw-benchmark.csv", "path to space-delimited benchmark output (.zst for compressed input)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.IntVarP(&flagNumerator, "numerator", "n", 4, "zero-based column used as numerator")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	input, err := report.OpenInput(flagInput)
	if err != nil {
		log.Error().Str("input", flagInput).Err(err).Msg("could not open input")
		return failure
	}
	defer input.Close()

	rows, err := reader.New(input,
		reader.WithDelimiter(' '),
		reader.WithHeaders("TYPE"),
	)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize reader")
		return failure
	}

	count := 0
	for {
		fields, err := rows.Fields()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("could not read row")
			return failure
		}

		ratio, err := report.ColumnRatio(fields, flagNumerator, flagDenominator)
		if err != nil {
			log.Error().Int("line", rows.Line()).Err(err).Msg("could not compute ratio")
			return failure
		}

		fmt.Println(report.FormatRatio(ratio))
		count++
	}

	log.Info().Int("rows", count).Msg("column ratios printed")

	return success
}
