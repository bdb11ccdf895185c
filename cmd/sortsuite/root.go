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

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/algobench/go-sortsuite/sorts"
)

// algorithm adapts one sort to the common in-place signature shared by the
// run, selftest and bench commands.
type algorithm struct {
	name string
	// nonNegOnly marks the distribution sorts, which must reject negative
	// input before running.
	nonNegOnly bool
	// sort sorts the slice in place.
	sort func([]int32) error
}

// sorted returns a sorted copy of in, leaving in untouched.
func (a algorithm) sorted(in []int32) ([]int32, error) {
	out := make([]int32, len(in))
	copy(out, in)
	if err := a.sort(out); err != nil {
		return nil, err
	}
	return out, nil
}

func algorithms() []algorithm {
	plain := func(fn func([]int32)) func([]int32) error {
		return func(data []int32) error {
			fn(data)
			return nil
		}
	}
	return []algorithm{
		{name: "quicksort", sort: plain(sorts.Quicksort[int32])},
		{name: "quicksort-functional", sort: func(data []int32) error {
			copy(data, sorts.QuicksortFunctional(data))
			return nil
		}},
		{name: "quicksort-threeway", sort: plain(sorts.QuicksortThreeWay[int32])},
		{name: "mergesort", sort: plain(sorts.Mergesort[int32])},
		{name: "heapsort", sort: plain(sorts.Heapsort[int32])},
		{name: "selectionsort", sort: plain(sorts.SelectionSort[int32])},
		{name: "radixsort", nonNegOnly: true, sort: sorts.RadixSort[int32]},
		{name: "countingsort", nonNegOnly: true, sort: sorts.CountingSort[int32]},
	}
}

func algorithmNames() []string {
	algos := algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.name
	}
	return names
}

func lookupAlgorithm(name string) (algorithm, error) {
	for _, a := range algorithms() {
		if a.name == name {
			return a, nil
		}
	}
	return algorithm{}, errors.Errorf("unknown algorithm %q (have %s)",
		name, strings.Join(algorithmNames(), ", "))
}

// parseInts converts textual arguments into the 32-bit sequence the
// algorithms consume, rejecting anything out of range.
func parseInts(args []string) ([]int32, error) {
	out := make([]int32, 0, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d (%q) is not a 32-bit integer", i+1, s)
		}
		out = append(out, int32(v))
	}
	return out, nil
}

// formatArray renders data as "[a, b, c]", the shared output format of the
// reference corpus.
func formatArray(data []int32) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sortsuite",
		Short:         "Reference array algorithms for cross-language validation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRunCmd(),
		newSelftestCmd(),
		newBenchCmd(),
		newSearchCmd(),
		newFibCmd(),
	)
	return root
}
