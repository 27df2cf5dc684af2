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

	"github.com/ajroetker/matbench/kernel"
)

// Workload holds the three matrices of one run. A and B are the operands,
// C is the zeroed accumulator passed to kernel.Multiply.
type Workload struct {
	Config Config
	A, B   *kernel.Matrix
	C      *kernel.Matrix
	Stats  Stats
}

// N returns the matrix size.
func (w *Workload) N() int { return w.A.N }

// Build validates cfg, allocates the matrices and runs the generator
// selected by cfg.Mode. Progress lines are written to out.
func Build(cfg Config, out io.Writer) (*Workload, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Size
	w := &Workload{
		Config: cfg,
		A:      kernel.New(n),
		B:      kernel.New(n),
		C:      kernel.New(n),
	}

	switch cfg.Mode {
	case ModeCPU:
		FillRandom(NewRand(cfg.Seed), w.A, w.B, w.C)
		fmt.Fprintf(out, "Mode: %s (random matrices, N=%d)\n", cfg.Mode.Label(), n)

	case ModeIO:
		wst, err := WriteMatrices(cfg.File, w.A, w.B)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "Matrices written (syscall write) to file: %s\n", cfg.File)

		rst, err := ReadMatrices(cfg.File, cfg.ChunkSize, w.A, w.B)
		if err != nil {
			return nil, err
		}
		w.Stats = Stats{
			BytesWritten: wst.BytesWritten,
			Writes:       wst.Writes,
			BytesRead:    rst.BytesRead,
			Reads:        rst.Reads,
			Values:       rst.Values,
			Dropped:      rst.Dropped,
		}
		fmt.Fprintf(out, "Mode: %s (syscall read, N=%d)\n", cfg.Mode.Label(), n)
	}
	return w, nil
}
