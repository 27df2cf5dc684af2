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


// Package kernel provides a naive integer matrix multiplication whose loop
// nesting can be chosen at run time.
//
// The three loop orders compute the same product. They differ only in the
// order in which memory is touched, which is what a profiler observes:
//
//   - ijk: the innermost loop walks a column of B (stride N)
//   - ikj: the innermost loop walks a row of B and a row of C (stride 1)
//   - jik: like ijk, but the outer loop runs over columns of C
//
// # Example Usage
//
//	a, b, c := kernel.New(n), kernel.New(n), kernel.New(n)
//	// ... fill a and b ...
//	if err := kernel.Multiply(kernel.OrderIKJ, a, b, c); err != nil {
//	    return err
//	}
//	fmt.Println(c.At(0, 0))
package kernel
