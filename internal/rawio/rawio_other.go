//go:build !unix

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

import "os"

// File wraps an *os.File. os.File does no user-space buffering: a Read is
// one system call, and a Write goes straight to the kernel, though it may
// retry a short write internally.
type File struct {
	f *os.File
}

// Create opens path for writing, creating or truncating it.
func Create(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Open opens path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (f *File) Name() string { return f.f.Name() }
func (f *File) Write(p []byte) (int, error) { return f.f.Write(p) }
func (f *File) Read(p []byte) (int, error) { return f.f.Read(p) }
func (f *File) Close() error { return f.f.Close() }
