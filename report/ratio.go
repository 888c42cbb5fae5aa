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
	"strconv"
	"strings"

	"github.com/nullromo/compression-accelerator/models/bench"
)

// ColumnRatio divides the integer value of the numerator column by the one of
// the denominator column.
func ColumnRatio(fields []string, numerator int, denominator int) (float64, error) {
	if numerator >= len(fields) || denominator >= len(fields) {
		return 0, fmt.Errorf("not enough fields (have: %d, need: %d)", len(fields), max(numerator, denominator)+1)
	}

	num, err := strconv.ParseInt(strings.TrimSpace(fields[numerator]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse numerator (column: %d): %w", numerator, err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(fields[denominator]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse denominator (column: %d): %w", denominator, err)
	}
	if den == 0 {
		return 0, fmt.Errorf("could not divide by column %d: %w", denominator, bench.ErrZeroDenominator)
	}

	return float64(num) / float64(den), nil
}

// FormatRatio formats a ratio with as many digits as needed to represent it,
// keeping at least one decimal so that integral ratios print as "4.0".
func FormatRatio(ratio float64) string {
	formatted := strconv.FormatFloat(ratio, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
