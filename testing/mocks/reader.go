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


package mocks

import (
	"io"
	"strings"
	"testing"
)

type Reader struct {
	ReadFunc  func(p []byte) (int, error)
	CloseFunc func() error
}

// BaselineReader returns a reader that yields the given content and closes
// without error.
func BaselineReader(t *testing.T, content string) *Reader {
	t.Helper()

	var source io.Reader = strings.NewReader(content)
	r := Reader{
		ReadFunc: func(p []byte) (int, error) {
			return source.Read(p)
		},
		CloseFunc: func() error {
			return nil
		},
	}

	return &r
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.ReadFunc(p)
}

func (r *Reader) Close() error {
	return r.CloseFunc()
}
