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
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/nullromo/compression-accelerator/aggregator"
	"github.com/nullromo/compression-accelerator/codec/zbor"
	"github.com/nullromo/compression-accelerator/report"
	"github.com/nullromo/compression-accelerator/snapshot"
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
		flagInput        string
		flagLevel        string
		flagLoadSnapshot string
		flagSaveSnapshot string
	)

	pflag.StringVarP(&flagInput, "input", "i", "benchmark.csv", "path to semicolon-delimited benchmark output (.zst for compressed input)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVar(&flagLoadSnapshot, "load-snapshot", "", "render the aggregated reports from this snapshot instead of reading input")
	pflag.StringVar(&flagSaveSnapshot, "save-snapshot", "", "write the aggregated values to this snapshot file")

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

	codec := zbor.NewCodec()
	generate, err := report.New(log, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize report generator")
		return failure
	}

	// When given a snapshot, the input was already processed on a previous
	// run and only the aggregated reports can be printed.
	if flagLoadSnapshot != "" {
		agg, err := loadSnapshot(flagLoadSnapshot, codec)
		if err != nil {
			log.Error().Str("snapshot", flagLoadSnapshot).Err(err).Msg("could not load snapshot")
			return failure
		}
		err = generate.Tables(agg)
		if err != nil {
			log.Error().Err(err).Msg("could not print reports")
			return failure
		}
		return success
	}

	agg, err := generate.File(flagInput)
	if err != nil {
		log.Error().Str("input", flagInput).Err(err).Msg("could not generate reports")
		return failure
	}

	if flagSaveSnapshot == "" {
		return success
	}

	err = saveSnapshot(flagSaveSnapshot, codec, agg)
	if err != nil {
		log.Error().Str("snapshot", flagSaveSnapshot).Err(err).Msg("could not save snapshot")
		return failure
	}

	log.Info().Str("snapshot", flagSaveSnapshot).Int("entries", agg.Len()).Msg("snapshot saved")

	return success
}

func loadSnapshot(path string, codec snapshot.Codec) (*aggregator.Aggregator, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file: %w", err)
	}
	defer file.Close()

	return snapshot.Load(file, codec)
}

func saveSnapshot(path string, codec snapshot.Codec, agg *aggregator.Aggregator) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not open snapshot file: %w", err)
	}

	return snapshot.Store(file, codec, agg)
}
