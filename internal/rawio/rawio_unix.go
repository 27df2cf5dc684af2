//go:build unix

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


package rawio

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// File is an open file descriptor used without any user-space buffering.
type File struct {
	fd   int
	name string
}

// Create opens path for writing, creating it with mode 0644 or truncating
// it if it exists.
func Create(path string) (*File, error) {
	return open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC|unix.O_CLOEXEC, 0o644)
}

// Open opens path read-only.
func Open(path string) (*File, error) {
	return open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
}

func open(path string, flags int, perm uint32) (*File, error) {
	fd, err := ignoringEINTR(func() (int, error) {
		return unix.Open(path, flags, perm)
	})
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return &File{fd: fd, name: path}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Write issues a single write(2). A short count is returned as-is with a
// nil error; callers decide whether that is fatal.
func (f *File) Write(p []byte) (int, error) {
	n, err := ignoringEINTR(func() (int, error) {
		return unix.Write(f.fd, p)
	})
	if n < 0 {
		n = 0
	}
	if err != nil {
		return n, &os.PathError{Op: "write", Path: f.name, Err: err}
	}
	return n, nil
}

// Read issues a single read(2). End of file is reported as io.EOF.
func (f *File) Read(p []byte) (int, error) {
	n, err := ignoringEINTR(func() (int, error) {
		return unix.Read(f.fd, p)
	})
	if n < 0 {
		n = 0
	}
	if err != nil {
		return n, &os.PathError{Op: "read", Path: f.name, Err: err}
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Close releases the descriptor. Closing twice returns an error.
func (f *File) Close() error {
	if f.fd < 0 {
		return &os.PathError{Op: "close", Path: f.name, Err: os.ErrClosed}
	}
	err := unix.Close(f.fd)
	f.fd = -1
	if err != nil {
		return &os.PathError{Op: "close", Path: f.name, Err: err}
	}
	return nil
}

// ignoringEINTR retries fn while it fails with EINTR.
func ignoringEINTR(fn func() (int, error)) (int, error) {
	for {
		n, err := fn()
		if err != unix.EINTR {
			return n, err
		}
	}
}
