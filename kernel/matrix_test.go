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
	"errors"
	"testing"
)

func TestParseLoopOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    LoopOrder
		wantErr bool
	}{
		{"ijk", OrderIJK, false},
		{"ikj", OrderIKJ, false},
		{"jik", OrderJIK, false},
		{"IJK", 0, true},
		{"kij", 0, true},
		{"xyz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLoopOrder(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLoopOrder) {
				t.Errorf("ParseLoopOrder(%q): got err %v, want ErrUnknownLoopOrder", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLoopOrder(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLoopOrder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoopOrderString(t *testing.T) {
	if got := LoopOrder(3).String(); got != "LoopOrder(3)" {
		t.Errorf("String() of invalid order = %q", got)
	}
	names := OrderNames()
	want := []string{"ijk", "ikj", "jik"}
	if len(names) != len(want) {
		t.Fatalf("OrderNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("OrderNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMatrixAccessors(t *testing.T) {
	m := New(3)
	m.Set(1, 2, 5)
	if m.At(1, 2) != 5 || m.Data[5] != 5 {
		t.Fatalf("Set/At do not use row-major layout: %v", m.Data)
	}

	row := m.Row(1)
	row[0] = 9
	if m.At(1, 0) != 9 {
		t.Error("Row does not alias matrix storage")
	}

	m.Zero()
	for i, v := range m.Data {
		if v != 0 {
			t.Fatalf("Zero left %d at index %d", v, i)
		}
	}

	if New(2).Equal(New(3)) {
		t.Error("matrices of different size compare equal")
	}
}

func TestNewOutOfRangePanics(t *testing.T) {
	for _, n := range []int{-1, MaxSize + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", n)
				}
			}()
			New(n)
		}()
	}
}
