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

import "fmt"

// kernels holds one implementation per LoopOrder, indexed by the order.
var kernels = [...]func(a, b, c []int32, n int){
	OrderIJK: multiplyIJK,
	OrderIKJ: multiplyIKJ,
	OrderJIK: multiplyJIK,
}

// Multiply accumulates the product of a and b into c:
//
//	C[i][j] += sum(A[i][k] * B[k][j]) for k in 0..N-1
//
// c is not cleared first; callers pass a zeroed matrix to get C = A * B.
// All loop orders produce identical results. It returns ErrUnknownLoopOrder
// for an unsupported order and panics if the three matrices differ in size.
func Multiply(order LoopOrder, a, b, c *Matrix) error {
	if !order.Valid() {
		return fmt.Errorf("%w %s", ErrUnknownLoopOrder, order)
	}
	n := a.N
	if b.N != n || c.N != n {
		panic(fmt.Sprintf("kernel: size mismatch A=%d B=%d C=%d", a.N, b.N, c.N))
	}
	kernels[order](a.Data, b.Data, c.Data, n)
	return nil
}

// multiplyIJK walks B down a column in the innermost loop.
func multiplyIJK(a, b, c []int32, n int) {
	for i := range n {
		for j := range n {
			for k := range n {
				c[i*n+j] += a[i*n+k] * b[k*n+j]
			}
		}
	}
}

// multiplyIKJ is the cache-friendly order: the innermost loop reads B and
// writes C with unit stride.
func multiplyIKJ(a, b, c []int32, n int) {
	for i := range n {
		for k := range n {
			for j := range n {
				c[i*n+j] += a[i*n+k] * b[k*n+j]
			}
		}
	}
}

func multiplyJIK(a, b, c []int32, n int) {
	for j := range n {
		for i := range n {
			for k := range n {
				c[i*n+j] += a[i*n+k] * b[k*n+j]
			}
		}
	}
}
