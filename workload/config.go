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
	"errors"
	"fmt"

	"github.com/ajroetker/matbench/kernel"
)

// Default matrix sizes. Each mode has its own so the CPU and I/O stress
// tests can be scaled independently.
const (
	DefaultCPUSize = 1000
	DefaultIOSize  = 1000
)

// DefaultFile is where the I/O generator writes its matrices.
const DefaultFile = "./matrices.txt"

// DefaultChunkSize is the read buffer size used by the I/O generator.
const DefaultChunkSize = 32

// ErrInvalidSize is returned for a matrix size outside [1, kernel.MaxSize].
var ErrInvalidSize = errors.New("invalid matrix size")

// Config describes one workload.
type Config struct {
	Mode Mode

	// Size is the matrix side length. Zero selects DefaultSize(Mode).
	Size int

	// Seed seeds the CPU generator. Zero seeds from the current time.
	Seed int64

	// File is the I/O generator's data file. Empty selects DefaultFile.
	File string

	// ChunkSize is the raw read size in bytes. Zero selects DefaultChunkSize.
	ChunkSize int
}

// DefaultSize returns the fixed matrix size used by mode.
func DefaultSize(mode Mode) int {
	if mode == ModeIO {
		return DefaultIOSize
	}
	return DefaultCPUSize
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Mode != ModeCPU && c.Mode != ModeIO {
		return fmt.Errorf("%w %s", ErrUnknownMode, c.Mode)
	}
	if c.Size == 0 {
		c.Size = DefaultSize(c.Mode)
	}
	if c.Size < 1 || c.Size > kernel.MaxSize {
		return fmt.Errorf("%w N=%d: must be between 1 and %d", ErrInvalidSize, c.Size, kernel.MaxSize)
	}
	if c.File == "" {
		c.File = DefaultFile
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("invalid chunk size %d", c.ChunkSize)
	}
	return nil
}
