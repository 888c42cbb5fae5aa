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


package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDatabase is returned when the card database is not a JSON object
// mapping card names to cards.
var ErrInvalidDatabase = errors.New("invalid card database")

type card struct {
	Text *string `json:"text"`
}

// Extract reads a card database and writes the name and rules text of every
// card that has one, in the order of the database. Cards without text are
// skipped. It returns the number of cards written.
func Extract(r io.Reader, w io.Writer) (int, error) {

	dec := json.NewDecoder(r)
	err := expectDelim(dec, '{')
	if err != nil {
		return 0, err
	}

	count := 0
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return count, fmt.Errorf("could not read card name: %w", err)
		}
		name, ok := token.(string)
		if !ok {
			return count, fmt.Errorf("unexpected token %v instead of card name: %w", token, ErrInvalidDatabase)
		}

		var c card
		err = dec.Decode(&c)
		if err != nil {
			return count, fmt.Errorf("could not decode card (name: %s): %w", name, err)
		}
		if c.Text == nil {
			continue
		}

		_, err = fmt.Fprintf(w, "%s %s\n", name, *c.Text)
		if err != nil {
			return count, fmt.Errorf("could not write card text: %w", err)
		}
		count++
	}

	err = expectDelim(dec, '}')
	if err != nil {
		return count, err
	}

	return count, nil
}

func expectDelim(dec *json.Decoder, delim json.Delim) error {
	token, err := dec.Token()
	if err != nil {
		return fmt.Errorf("could not read card database: %w", err)
	}
	if token != delim {
		return fmt.Errorf("unexpected token %v instead of %q: %w", token, delim, ErrInvalidDatabase)
	}
	return nil
}
