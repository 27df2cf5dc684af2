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
	"math/rand"
	"time"

	"github.com/ajroetker/matbench/kernel"
)

// MaxRandomValue is the largest value FillRandom produces.
const MaxRandomValue = 9

// NewRand returns the generator's random source. A zero seed is replaced by
// the current time, so runs are not reproducible unless a seed is given.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// FillRandom fills a and b with independent uniform values in
// [0, MaxRandomValue] and zeroes c.
func FillRandom(rng *rand.Rand, a, b, c *kernel.Matrix) {
	for i := range a.Data {
		a.Data[i] = int32(rng.Intn(MaxRandomValue + 1))
		b.Data[i] = int32(rng.Intn(MaxRandomValue + 1))
	}
	c.Zero()
}
