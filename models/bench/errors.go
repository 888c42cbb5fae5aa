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


package bench

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrMissingField    = errors.New("missing field")
	ErrZeroDenominator = errors.New("zero denominator")
)

// ParseError is returned when a row of benchmark output can not be turned
// into a record.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (p *ParseError) Error() string {
	if p.Value == "" {
		return fmt.Sprintf("could not parse %s on line %d: %s", p.Field, p.Line, p.Err)
	}
	return fmt.Sprintf("could not parse %s %q on line %d: %s", p.Field, p.Value, p.Line, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}
