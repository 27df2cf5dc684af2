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

//go:generate go tool stringer -type=LoopOrder -linecomment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownLoopOrder is returned for a loop order name or value that is
// not one of the supported nestings.
var ErrUnknownLoopOrder = errors.New("unknown loop order")

// LoopOrder selects the nesting of the i (row), j (column) and k
// (contraction) loops in Multiply.
type LoopOrder int

const (
	OrderIJK LoopOrder = iota // ijk
	OrderIKJ                  // ikj
	OrderJIK                  // jik
)

// Orders returns every supported loop order.
func Orders() []LoopOrder {
	return []LoopOrder{OrderIJK, OrderIKJ, OrderJIK}
}

// OrderNames returns the names accepted by ParseLoopOrder.
func OrderNames() []string {
	return lo.Map(Orders(), func(o LoopOrder, _ int) string { return o.String() })
}

// Valid reports whether o is one of the supported loop orders.
func (o LoopOrder) Valid() bool {
	return o >= OrderIJK && o <= OrderJIK
}

// ParseLoopOrder maps "ijk", "ikj" or "jik" to its LoopOrder.
// Matching is exact; any other string returns ErrUnknownLoopOrder.
func ParseLoopOrder(s string) (LoopOrder, error) {
	for _, o := range Orders() {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownLoopOrder, s, strings.Join(OrderNames(), ", "))
}
