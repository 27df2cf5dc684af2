// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package workload

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajroetker/matbench/internal/rawio"
	"github.com/ajroetker/matbench/kernel"
)

// Stats counts the work done by a generator.
type Stats struct {
	BytesWritten int64
	Writes       int
	BytesRead    int64
	Reads        int
	Values       int
	Dropped      int
}

// writeTokens emits every value of mats followed by a single space, and a
// newline after each row. Each token is a separate Write call; a failed or
// short write stops the output.
func writeTokens(w io.Writer, mats ...*kernel.Matrix) (Stats, error) {
	var st Stats
	put := func(tok []byte) error {
		n, err := w.Write(tok)
		st.Writes++
		st.BytesWritten += int64(n)
		if err != nil {
			return err
		}
		if n != len(tok) {
			return io.ErrShortWrite
		}
		return nil
	}

	newline := []byte{'\n'}
	tok := make([]byte, 0, 16)
	for _, m := range mats {
		for i := range m.N {
			for _, v := range m.Row(i) {
				tok = strconv.AppendInt(tok[:0], int64(v), 10)
				tok = append(tok, ' ')
				if err := put(tok); err != nil {
					return st, fmt.Errorf("write: %w", err)
				}
			}
			if err := put(newline); err != nil {
				return st, fmt.Errorf("write newline: %w", err)
			}
		}
		st.Values += len(m.Data)
	}
	return st, nil
}

// WriteMatrices creates (or truncates) path and writes mats to it in the
// text format, using one unbuffered write system call per token.
func WriteMatrices(path string, mats ...*kernel.Matrix) (Stats, error) {
	f, err := rawio.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open for write: %w", err)
	}
	st, err := writeTokens(f, mats...)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close: %w", cerr)
	}
	return st, err
}
