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

// DefaultConfig is the default configuration for the Reader.
var DefaultConfig = Config{
	Delimiter: ';',
	Headers:   []string{"type", "TYPE"},
	MinFields: 2,
}

// Config contains the parameters of a Reader.
type Config struct {
	// Delimiter separates the fields of a row.
	Delimiter rune `validate:"required,ne=34,ne=10,ne=13"`

	// Headers are the values of the first field that mark a row as a header
	// row. Matching is case sensitive.
	Headers []string `validate:"dive,required"`

	// MinFields is the minimum number of non-empty fields a row needs to be
	// yielded. Shorter rows are skipped.
	MinFields int `validate:"min=1"`
}

// Option is an option that can be given to the reader to configure optional
// parameters on initialization.
type Option func(*Config)

// WithDelimiter sets the rune that separates fields of a row.
func WithDelimiter(delimiter rune) Option {
	return func(cfg *Config) {
		cfg.Delimiter = delimiter
	}
}

// WithHeaders sets the first-field values which identify header rows.
func WithHeaders(headers ...string) Option {
	return func(cfg *Config) {
		cfg.Headers = headers
	}
}

// WithMinFields sets the number of non-empty fields under which a row is skipped.
func WithMinFields(count int) Option {
	return func(cfg *Config) {
		cfg.MinFields = count
	}
}
