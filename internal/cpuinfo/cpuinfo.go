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


// Package cpuinfo reports the host facts that matter when reading
// loop-order benchmark numbers: architecture, CPU count, cache line size
// and the vector extensions detected by golang.org/x/sys/cpu.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Feature is a named CPU capability flag.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Info describes the host.
type Info struct {
	GOOS          string
	GOARCH        string
	NumCPU        int
	CacheLineSize int
	Features      []Feature
}

// Describe collects Info for the running process.
func Describe() Info {
	info := Info{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		CacheLineSize: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
	switch runtime.GOARCH {
	case "arm64":
		info.Features = arm64Features()
	case "amd64":
		info.Features = amd64Features()
	}
	return info
}

func arm64Features() []Feature {
	return []Feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, "SVE2"},
		{"HasATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"HasSSE2", cpu.X86.HasSSE2, ""},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, ""},
		{"HasFMA", cpu.X86.HasFMA, ""},
		{"HasAVX512F", cpu.X86.HasAVX512F, ""},
	}
}

// WriteTo prints the report in the same layout as the cpuinfo command.
func (info Info) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "GOOS: %s\n", info.GOOS)
	fmt.Fprintf(cw, "GOARCH: %s\n", info.GOARCH)
	fmt.Fprintf(cw, "NumCPU: %d\n", info.NumCPU)
	fmt.Fprintf(cw, "Cache line: %d bytes\n", info.CacheLineSize)
	if len(info.Features) > 0 {
		fmt.Fprintf(cw, "=== golang.org/x/sys/cpu (%s) ===\n", info.GOARCH)
	}
	for _, f := range info.Features {
		if f.Note != "" {
			fmt.Fprintf(cw, "  %-11s %v (%s)\n", f.Name+":", f.Present, f.Note)
		} else {
			fmt.Fprintf(cw, "  %-11s %v\n", f.Name+":", f.Present)
		}
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
