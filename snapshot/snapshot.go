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


package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/nullromo/compression-accelerator/aggregator"
)

// Version is the snapshot format version written by Save.
const Version = 1

// ErrUnsupportedVersion is returned when loading a snapshot written in an
// unknown format version.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Codec marshals snapshots to bytes and back.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// Snapshot is the serialized form of an aggregator.
type Snapshot struct {
	Version uint               `cbor:"1,keyasint"`
	Entries []aggregator.Entry `cbor:"2,keyasint"`
}

// Save writes the aggregated values to the writer.
func Save(w io.Writer, codec Codec, agg *aggregator.Aggregator) error {

	s := Snapshot{
		Version: Version,
		Entries: agg.Entries(),
	}
	data, err := codec.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}

	return nil
}

// Store saves the aggregated values to the writer and closes it. A failure
// to close is reported along with any save error.
func Store(w io.WriteCloser, codec Codec, agg *aggregator.Aggregator) error {

	err := Save(w, codec, agg)
	closeErr := w.Close()
	if closeErr != nil {
		err = multierror.Append(err, fmt.Errorf("could not close snapshot: %w", closeErr))
	}

	return err
}

// Load reads a snapshot from the reader and rebuilds the aggregator.
func Load(r io.Reader, codec Codec) (*aggregator.Aggregator, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	var s Snapshot
	err = codec.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("could not load snapshot (version: %d): %w", s.Version, ErrUnsupportedVersion)
	}

	agg, err := aggregator.FromEntries(s.Entries)
	if err != nil {
		return nil, fmt.Errorf("could not rebuild aggregator: %w", err)
	}

	return agg, nil
}
