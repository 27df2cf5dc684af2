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


package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
	"github.com/spf13/pflag"
)

var errUnknownProfile = errors.New("unknown profile kind")

// profileKinds lists the values accepted by --profile. "wall" samples all
// goroutines regardless of state, so time blocked in read and write shows
// up; the others are the runtime's own profilers.
var profileKinds = []string{"cpu", "mem", "block", "trace", "wall"}

func addProfileFlags(fs *pflag.FlagSet, kind, dir *string) {
	fs.StringVar(kind, "profile", "", "write a profile: cpu, mem, block, trace or wall")
	fs.StringVar(dir, "profile-dir", ".", "directory for profile output")
}

// startProfile starts the requested profiler and returns the function that
// stops it and flushes its output. An empty kind is a no-op.
func startProfile(kind, dir string) (func() error, error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() error { return nil }, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "block":
		mode = profile.BlockProfile
	case "trace":
		mode = profile.TraceProfile
	case "wall":
		return startWallProfile(dir)
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", errUnknownProfile, kind, profileKinds)
	}
	p := profile.Start(mode, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
	return func() error {
		p.Stop()
		return nil
	}, nil
}

func startWallProfile(dir string) (func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, "fgprof.pprof"))
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() (err error) {
		defer closeFile(f, &err)
		if serr := stop(); serr != nil {
			return fmt.Errorf("fgprof: %w", serr)
		}
		return nil
	}, nil
}

// closeFile closes c and stores the close error in *errp unless an earlier
// error is already there. Output files only count as written once closed.
func closeFile(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close: %w", cerr)
	}
}
