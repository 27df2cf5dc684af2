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


// Package rawio provides unbuffered file handles where every Read and Write
// is exactly one system call. It exists so that I/O benchmarks measure
// syscall cost rather than library buffering.
package rawio

import "io"

// Handle is the common surface of File on every platform.
type Handle interface {
	io.ReadWriteCloser
	Name() string
}

var _ Handle = (*File)(nil)
