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
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepWritesCSV(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")
	code, stdout, stderr := runCLI(t, "sweep",
		"--sizes", "3,4", "--orders", "ijk,ikj", "--modes", "cpu,io", "--reps", "2",
		"--seed", "9", "--file", filepath.Join(dir, "m.txt"), "--out", out)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--- Running N=3, Order=ijk, Mode=cpu (2 reps) ---")
	assert.Contains(t, stderr, "Wrote 24 rows for 8 configurations")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 1+2*2*2*(2+1))
	assert.Equal(t, csvHeader, records[0])

	means := 0
	for _, rec := range records[1:] {
		secs, err := strconv.ParseFloat(rec[5], 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, secs, 0.0)
		if rec[4] == "Mean" {
			means++
			assert.Equal(t, "AVG", rec[3])
		}
	}
	assert.Equal(t, 8, means)
}

func TestSweepToStdout(t *testing.T) {
	code, stdout, stderr := runCLI(t, "sweep", "--sizes", "2", "--orders", "jik", "--modes", "cpu", "--reps", "1")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "N,Order,Mode,Repetition,Run_Type,Runtime_s", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2,jik,cpu,1,Individual,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2,jik,cpu,AVG,Mean,"), lines[2])
}

func TestSweepRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"order", []string{"sweep", "--orders", "ijk,zzz"}, "unknown loop order"},
		{"mode", []string{"sweep", "--modes", "gpu"}, "unknown mode"},
		{"size", []string{"sweep", "--sizes", "0,-4"}, "invalid matrix size"},
		{"reps", []string{"sweep", "--reps", "0"}, "--reps must be at least 1"},
		{"positional", []string{"sweep", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
