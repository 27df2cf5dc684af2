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

//go:generate go tool stringer -type=Mode -linecomment

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned for a mode name that is neither "cpu" nor "io".
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects how operands are produced.
type Mode int

const (
	ModeCPU Mode = iota // cpu
	ModeIO              // io
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{ModeCPU, ModeIO}
}

// ParseMode maps "cpu" or "io" to its Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want cpu or io)", ErrUnknownMode, s)
}

// Label is the human-readable name printed in the run summary.
func (m Mode) Label() string {
	switch m {
	case ModeCPU:
		return "CPU-bound"
	case ModeIO:
		return "I/O-bound"
	}
	return m.String()
}
