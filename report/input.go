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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks input files that are Zstandard compressed.
const CompressedSuffix = ".zst"

type decompressedFile struct {
	*zstd.Decoder
	file *os.File
}

func (d *decompressedFile) Close() error {
	d.Decoder.Close()
	return d.file.Close()
}

// OpenInput opens the file at path for reading. Files ending in ".zst" are
// decompressed on the fly.
func OpenInput(path string) (io.ReadCloser, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return file, nil
	}

	decoder, err := zstd.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("could not initialize decompression: %w", err)
	}

	return &decompressedFile{Decoder: decoder, file: file}, nil
}
