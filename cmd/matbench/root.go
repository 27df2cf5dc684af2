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
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/matbench/internal/cpuinfo"
	"github.com/ajroetker/matbench/kernel"
	"github.com/ajroetker/matbench/workload"
)

// runOptions holds the flags shared by the single-run command.
type runOptions struct {
	size       int
	seed       int64
	file       string
	chunk      int
	verbose    bool
	profile    string
	profileDir string
}

func addWorkloadFlags(fs *pflag.FlagSet, size *int, seed *int64, file *string, chunk *int) {
	fs.IntVar(size, "size", 0, fmt.Sprintf("matrix size N (0 = mode default, max %d)", kernel.MaxSize))
	fs.Int64Var(seed, "seed", 0, "seed for the CPU generator (0 = current time)")
	fs.StringVar(file, "file", workload.DefaultFile, "data file used by io mode")
	fs.IntVar(chunk, "chunk", workload.DefaultChunkSize, "raw read size in bytes for io mode")
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "matbench [ijk|ikj|jik] [cpu|io]",
		Short: "Loop-order matrix multiplication benchmark",
		Long: `matbench multiplies two N x N integer matrices once, using the chosen
loop nesting, and prints the top-left cell of the result.

In cpu mode the operands are filled with random values in [0,9].
In io mode two zero matrices are written to a text file one token per
write system call, then read back with raw 32-byte reads and parsed.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), opts, args)
		},
	}

	fs := cmd.Flags()
	addWorkloadFlags(fs, &opts.size, &opts.seed, &opts.file, &opts.chunk)
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "print host info, timings and I/O counts")
	addProfileFlags(fs, &opts.profile, &opts.profileDir)

	// The first positional token is a loop order, so cobra's own help and
	// completion commands must not claim it. --help still works.
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			_, _, err := parseSelection(append([]string{"help"}, args...))
			return err
		},
	})

	cmd.AddCommand(newSweepCmd(), newCPUInfoCmd())
	return cmd
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "matbench: %v\n", err)
		return 1
	}
	return 0
}

// parseSelection reads the optional loop order and mode arguments.
func parseSelection(args []string) (kernel.LoopOrder, workload.Mode, error) {
	order, mode := kernel.OrderIJK, workload.ModeCPU
	var err error
	if len(args) >= 1 {
		if order, err = kernel.ParseLoopOrder(args[0]); err != nil {
			return 0, 0, err
		}
	}
	if len(args) >= 2 {
		if mode, err = workload.ParseMode(args[1]); err != nil {
			return 0, 0, err
		}
	}
	return order, mode, nil
}

func runBench(out io.Writer, opts *runOptions, args []string) (err error) {
	order, mode, err := parseSelection(args)
	if err != nil {
		return err
	}
	cfg := workload.Config{
		Mode:      mode,
		Size:      opts.size,
		Seed:      opts.seed,
		File:      opts.file,
		ChunkSize: opts.chunk,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stop, err := startProfile(opts.profile, opts.profileDir)
	if err != nil {
		return err
	}
	defer func() {
		if serr := stop(); err == nil {
			err = serr
		}
	}()

	if opts.verbose {
		if _, err := cpuinfo.Describe().WriteTo(out); err != nil {
			return err
		}
	}

	start := time.Now()
	w, err := workload.Build(cfg, out)
	if err != nil {
		return err
	}
	setup := time.Since(start)

	start = time.Now()
	if err := kernel.Multiply(order, w.A, w.B, w.C); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.verbose {
		report(out, order, w, setup, elapsed)
	}
	fmt.Fprintf(out, "Result[0][0] = %d\n", w.C.At(0, 0))
	return nil
}

// report prints run statistics with locale digit grouping.
func report(out io.Writer, order kernel.LoopOrder, w *workload.Workload, setup, elapsed time.Duration) {
	p := message.NewPrinter(language.English)
	n := w.N()
	p.Fprintf(out, "Loop order: %s\n", order)
	p.Fprintf(out, "Multiply-adds: %d\n", n*n*n)
	p.Fprintf(out, "Setup: %v, multiply: %v\n", setup.Round(time.Microsecond), elapsed.Round(time.Microsecond))
	if w.Config.Mode == workload.ModeIO {
		st := w.Stats
		p.Fprintf(out, "Written: %d bytes in %d writes\n", st.BytesWritten, st.Writes)
		p.Fprintf(out, "Read: %d bytes in %d reads (%d values, %d dropped)\n",
			st.BytesRead, st.Reads, st.Values, st.Dropped)
	}
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU facts relevant to cache experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cpuinfo.Describe().WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
