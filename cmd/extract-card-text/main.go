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
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/nullromo/compression-accelerator/cards"
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
		flagInput string
		flagLevel string
	)

	pflag.StringVarP(&flagInput, "input", "i", "AllCards.json", "path to the card database (see https://mtgjson.com/)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")

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
		log.Error().Str("input", flagInput).Err(err).Msg("could not open card database")
		return failure
	}
	defer input.Close()

	count, err := cards.Extract(input, os.Stdout)
	if err != nil {
		log.Error().Int("extracted", count).Err(err).Msg("could not extract card text")
		return failure
	}

	log.Info().Int("cards", count).Msg("card text extracted")

	return success
}
