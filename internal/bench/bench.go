// Copyright 2025 go-sortsuite Authors
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

// Package bench times the sorting algorithms over a deterministically
// generated array and summarizes the samples. Timer ownership lives here;
// the algorithms themselves never touch the clock.
package bench

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/algobench/go-sortsuite/sorts"
)

// Generate returns the deterministic n-element benchmark array
// (i*37 + 11) mod 1000, the shared input every language port times against.
func Generate(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32((i*37 + 11) % 1000)
	}
	return data
}

// Result summarizes the timing samples for one algorithm.
type Result struct {
	Algo   string
	Size   int
	Runs   int
	Min    time.Duration
	Mean   time.Duration
	Median time.Duration
	Stddev time.Duration
}

// Runner times sort functions over fresh copies of a shared input array.
type Runner struct {
	input  []int32
	warmup int
	runs   int
}

// NewRunner builds a Runner over input with the given warmup and measured
// run counts. runs must be >= 1.
func NewRunner(input []int32, warmup, runs int) (*Runner, error) {
	if runs < 1 {
		return nil, errors.Errorf("runs must be >= 1, got %d", runs)
	}
	if warmup < 0 {
		return nil, errors.Errorf("warmup must be >= 0, got %d", warmup)
	}
	return &Runner{input: input, warmup: warmup, runs: runs}, nil
}

// Run times sortFn over copies of the runner's input and returns summary
// statistics. The input itself is never mutated, so successive calls time
// the same workload.
func (r *Runner) Run(name string, sortFn func([]int32) error) (Result, error) {
	buf := make([]int32, len(r.input))

	for w := 0; w < r.warmup; w++ {
		copy(buf, r.input)
		if err := sortFn(buf); err != nil {
			return Result{}, errors.WithMessagef(err, "warmup run of %s", name)
		}
	}

	samples := make([]time.Duration, 0, r.runs)
	for i := 0; i < r.runs; i++ {
		copy(buf, r.input)
		start := time.Now()
		err := sortFn(buf)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "timed run of %s", name)
		}
		if !sorts.IsSorted(buf) {
			return Result{}, errors.Errorf("%s left the array unsorted", name)
		}
		samples = append(samples, elapsed)
	}

	return summarize(name, len(r.input), samples), nil
}

func summarize(name string, size int, samples []time.Duration) Result {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sorts.Mergesort(sorted)

	var sum time.Duration
	for _, s := range sorted {
		sum += s
	}
	mean := sum / time.Duration(len(sorted))

	var sq float64
	for _, s := range sorted {
		d := float64(s - mean)
		sq += d * d
	}
	stddev := time.Duration(math.Sqrt(sq / float64(len(sorted))))

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Result{
		Algo:   name,
		Size:   size,
		Runs:   len(sorted),
		Min:    sorted[0],
		Mean:   mean,
		Median: median,
		Stddev: stddev,
	}
}
