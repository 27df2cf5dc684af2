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


// Package workload builds the operands for a benchmark run.
//
// Two generators exist. The CPU generator fills the operands with small
// pseudo-random integers entirely in memory. The I/O generator writes two
// zero matrices to a text file with one write system call per token, then
// reads the file back with raw fixed-size reads and a hand-rolled
// incremental integer parser.
//
// # File Format
//
// The file holds 2·N lines of N space-terminated decimal integers: the
// rows of A followed by the rows of B. There is no header; the reader stops
// filling after 2·N² values and discards anything beyond that.
package workload
