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


package kernel

import (
	"fmt"
	"strings"
)

// MaxSize is the largest side length accepted for a Matrix.
const MaxSize = 5000

// Matrix is a square N x N grid of int32 values stored row-major in a
// single contiguous slice. A Matrix is never resized after New.
type Matrix struct {
	N    int
	Data []int32
}

// New allocates a zeroed n x n matrix.
// It panics if n is negative or larger than MaxSize.
func New(n int) *Matrix {
	if n < 0 || n > MaxSize {
		panic(fmt.Sprintf("kernel: matrix size %d out of range [0, %d]", n, MaxSize))
	}
	return &Matrix{N: n, Data: make([]int32, n*n)}
}

// FromRows builds a matrix from a square slice of rows. Useful in tests.
func FromRows(rows [][]int32) *Matrix {
	m := New(len(rows))
	for i, row := range rows {
		if len(row) != m.N {
			panic(fmt.Sprintf("kernel: row %d has %d values, want %d", i, len(row), m.N))
		}
		copy(m.Row(i), row)
	}
	return m
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) int32 {
	return m.Data[i*m.N+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v int32) {
	m.Data[i*m.N+j] = v
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []int32 {
	return m.Data[i*m.N : (i+1)*m.N]
}

// Zero clears every cell.
func (m *Matrix) Zero() {
	clear(m.Data)
}

// Equal reports whether m and o have the same size and contents.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.N != o.N {
		return false
	}
	for i, v := range m.Data {
		if o.Data[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line. Intended for small matrices
// in test failures.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.N {
		sb.WriteByte('[')
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
