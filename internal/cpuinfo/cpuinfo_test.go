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


package cpuinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	info := Describe()
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("Describe() = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.NumCPU < 1 {
		t.Errorf("NumCPU = %d", info.NumCPU)
	}
	// x/sys/cpu pads to at least 32 bytes on every supported architecture.
	if info.CacheLineSize < 32 {
		t.Errorf("CacheLineSize = %d", info.CacheLineSize)
	}
}

func TestWriteTo(t *testing.T) {
	info := Info{
		GOOS:          "linux",
		GOARCH:        "amd64",
		NumCPU:        8,
		CacheLineSize: 64,
		Features: []Feature{
			{Name: "HasAVX2", Present: true},
			{Name: "HasSVE", Present: false, Note: "Scalable Vector Extension"},
		},
	}
	var buf bytes.Buffer
	n, err := info.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
	out := buf.String()
	for _, want := range []string{
		"GOARCH: amd64\n",
		"Cache line: 64 bytes\n",
		"HasAVX2:    true\n",
		"HasSVE:     false (Scalable Vector Extension)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
