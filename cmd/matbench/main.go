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


// Command matbench multiplies two square integer matrices with a chosen
// loop order, after building the operands either in memory (CPU-bound) or
// through a raw-syscall file round trip (I/O-bound). It is meant to be run
// under a profiler to compare cache behaviour and CPU versus I/O cost.
//
// Usage:
//
//	matbench [ijk|ikj|jik] [cpu|io]
//	matbench ikj io --size 500 --profile wall
//	matbench sweep --sizes 250,500 --reps 5 --out results.csv
//	matbench cpuinfo
//
// The loop order defaults to ijk and the mode to cpu. An unrecognized
// value for either prints a diagnostic to stderr and exits with status 1
// before any work is done.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
