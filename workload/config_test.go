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
	"testing"

	"github.com/ajroetker/matbench/kernel"
)

func TestParseMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Mode
	}{
		{"cpu", ModeCPU},
		{"io", ModeIO},
	} {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "CPU", "disk", "i/o"} {
		if _, err := ParseMode(bad); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q): got %v, want ErrUnknownMode", bad, err)
		}
	}
}

func TestModeLabel(t *testing.T) {
	if ModeCPU.Label() != "CPU-bound" || ModeIO.Label() != "I/O-bound" {
		t.Errorf("labels: %q %q", ModeCPU.Label(), ModeIO.Label())
	}
	if Mode(9).String() != "Mode(9)" {
		t.Errorf("String() of invalid mode = %q", Mode(9).String())
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	for _, mode := range Modes() {
		cfg := Config{Mode: mode}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if cfg.Size != DefaultSize(mode) {
			t.Errorf("%s: Size = %d, want %d", mode, cfg.Size, DefaultSize(mode))
		}
		if cfg.File != DefaultFile || cfg.ChunkSize != DefaultChunkSize {
			t.Errorf("%s: defaults not applied: %+v", mode, cfg)
		}
	}
}

func TestConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		target error
	}{
		{"negative size", Config{Size: -1}, ErrInvalidSize},
		{"too large", Config{Size: kernel.MaxSize + 1}, ErrInvalidSize},
		{"bad mode", Config{Mode: Mode(5)}, ErrUnknownMode},
		{"bad chunk", Config{ChunkSize: -4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("got %v, want %v", err, tt.target)
			}
		})
	}
}

func TestFillRandomRange(t *testing.T) {
	const n = 64
	for seed := int64(1); seed <= 20; seed++ {
		a, b, c := kernel.New(n), kernel.New(n), kernel.New(n)
		c.Data[0] = 99
		FillRandom(NewRand(seed), a, b, c)

		seen := make(map[int32]bool)
		for _, m := range []*kernel.Matrix{a, b} {
			for i, v := range m.Data {
				if v < 0 || v > MaxRandomValue {
					t.Fatalf("seed=%d: value %d at %d outside [0,%d]", seed, v, i, MaxRandomValue)
				}
				seen[v] = true
			}
		}
		if len(seen) != MaxRandomValue+1 {
			t.Errorf("seed=%d: only %d distinct values in %d cells", seed, len(seen), 2*n*n)
		}
		for _, v := range c.Data {
			if v != 0 {
				t.Fatalf("seed=%d: C not zeroed", seed)
			}
		}
	}
}

func TestFillRandomSeeded(t *testing.T) {
	a1, b1 := kernel.New(8), kernel.New(8)
	a2, b2 := kernel.New(8), kernel.New(8)
	FillRandom(NewRand(7), a1, b1, kernel.New(8))
	FillRandom(NewRand(7), a2, b2, kernel.New(8))
	if !a1.Equal(a2) || !b1.Equal(b2) {
		t.Error("same seed produced different matrices")
	}
	if a1.Equal(b1) {
		t.Error("A and B are not independent")
	}
}
