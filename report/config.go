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
	"github.com/nullromo/compression-accelerator/reader"
)

// DefaultConfig is the default configuration for the Generator.
var DefaultConfig = Config{
	Delimiter: reader.DefaultConfig.Delimiter,
	Headers:   reader.DefaultConfig.Headers,
}

// Config contains the parameters of a Generator.
type Config struct {
	// Delimiter separates the fields of the benchmark output.
	Delimiter rune `validate:"required,ne=34,ne=10,ne=13"`

	// Headers are the first-field values that mark header rows.
	Headers []string `validate:"dive,required"`
}

// Option is an option that can be given to the generator to configure optional
// parameters on initialization.
type Option func(*Config)

// WithDelimiter sets the field delimiter of the benchmark output.
func WithDelimiter(delimiter rune) Option {
	return func(cfg *Config) {
		cfg.Delimiter = delimiter
	}
}

// WithHeaders sets the first-field values that mark header rows.
func WithHeaders(headers ...string) Option {
	return func(cfg *Config) {
		cfg.Headers = headers
	}
}
