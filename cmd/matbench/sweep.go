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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/matbench/kernel"
	"github.com/ajroetker/matbench/workload"
)

type sweepOptions struct {
	sizes  []int
	orders []string
	modes  []string
	reps   int
	seed   int64
	file   string
	chunk  int
	out    string
}

// sweepConfig is one (N, order, mode) combination.
type sweepConfig struct {
	cfg   workload.Config
	order kernel.LoopOrder
}

var csvHeader = []string{"N", "Order", "Mode", "Repetition", "Run_Type", "Runtime_s"}

func newSweepCmd() *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Time every size, loop order and mode combination and write CSV",
		Long: `sweep runs each combination of --sizes, --orders and --modes --reps
times in this process and records the wall time of workload setup plus
multiplication. For every combination it writes one Individual row per
repetition and one Mean row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&opts.sizes, "sizes", []int{250, 500, 1000}, "matrix sizes to run")
	fs.StringSliceVar(&opts.orders, "orders", kernel.OrderNames(), "loop orders to run")
	fs.StringSliceVar(&opts.modes, "modes", []string{"cpu", "io"}, "modes to run")
	fs.IntVar(&opts.reps, "reps", 5, "repetitions per combination")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for the CPU generator (0 = current time)")
	fs.StringVar(&opts.file, "file", workload.DefaultFile, "data file used by io mode")
	fs.IntVar(&opts.chunk, "chunk", workload.DefaultChunkSize, "raw read size in bytes for io mode")
	fs.StringVarP(&opts.out, "out", "o", "", "CSV output path (default stdout)")
	return cmd
}

// plan expands the options into the list of runs, rejecting any bad value
// before anything is executed.
func (o *sweepOptions) plan() ([]sweepConfig, error) {
	if o.reps < 1 {
		return nil, fmt.Errorf("--reps must be at least 1, got %d", o.reps)
	}
	if len(o.sizes) == 0 || len(o.orders) == 0 || len(o.modes) == 0 {
		return nil, errors.New("--sizes, --orders and --modes must not be empty")
	}
	orders := make([]kernel.LoopOrder, 0, len(o.orders))
	for _, s := range lo.Uniq(o.orders) {
		order, err := kernel.ParseLoopOrder(s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	modes := make([]workload.Mode, 0, len(o.modes))
	for _, s := range lo.Uniq(o.modes) {
		mode, err := workload.ParseMode(s)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}

	var runs []sweepConfig
	for _, n := range lo.Uniq(o.sizes) {
		for _, order := range orders {
			for _, mode := range modes {
				cfg := workload.Config{Mode: mode, Size: n, Seed: o.seed, File: o.file, ChunkSize: o.chunk}
				if err := cfg.Validate(); err != nil {
					return nil, err
				}
				runs = append(runs, sweepConfig{cfg: cfg, order: order})
			}
		}
	}
	return runs, nil
}

func runSweep(stdout, progress io.Writer, opts *sweepOptions) (err error) {
	runs, err := opts.plan()
	if err != nil {
		return err
	}

	dest := stdout
	if opts.out != "" {
		f, cerr := os.Create(opts.out)
		if cerr != nil {
			return cerr
		}
		defer closeFile(f, &err)
		dest = f
	}
	cw := csv.NewWriter(dest)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	rows := 0
	for _, run := range runs {
		n, mode := run.cfg.Size, run.cfg.Mode
		p.Fprintf(progress, "--- Running N=%d, Order=%s, Mode=%s (%d reps) ---\n", n, run.order, mode, opts.reps)

		times := make([]time.Duration, 0, opts.reps)
		for rep := 1; rep <= opts.reps; rep++ {
			elapsed, err := timeRun(run)
			if err != nil {
				return fmt.Errorf("N=%d order=%s mode=%s: %w", n, run.order, mode, err)
			}
			times = append(times, elapsed)
			if err := cw.Write(sweepRow(n, run, strconv.Itoa(rep), "Individual", elapsed.Seconds())); err != nil {
				return err
			}
			rows++
		}

		mean := lo.SumBy(times, func(d time.Duration) float64 { return d.Seconds() }) / float64(len(times))
		if err := cw.Write(sweepRow(n, run, "AVG", "Mean", mean)); err != nil {
			return err
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	p.Fprintf(progress, "Wrote %d rows for %d configurations\n", rows, len(runs))
	return nil
}

func sweepRow(n int, run sweepConfig, rep, kind string, seconds float64) []string {
	return []string{
		strconv.Itoa(n),
		run.order.String(),
		run.cfg.Mode.String(),
		rep,
		kind,
		strconv.FormatFloat(seconds, 'f', 6, 64),
	}
}

// timeRun builds the workload and multiplies once, returning the wall time
// of both steps together.
func timeRun(run sweepConfig) (time.Duration, error) {
	start := time.Now()
	w, err := workload.Build(run.cfg, io.Discard)
	if err != nil {
		return 0, err
	}
	if err := kernel.Multiply(run.order, w.A, w.B, w.C); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
