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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algobench/go-sortsuite/search"
	"github.com/algobench/go-sortsuite/sorts"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <target> [ints...]",
		Short:   "Binary-search for target after sorting the given integers",
		Example: "  sortsuite search 25 64 34 25 12 22 11 90 88",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			target, data := vals[0], vals[1:]
			sorts.Quicksort(data)

			fmt.Fprintf(cmd.OutOrStdout(), "Sorted: %s\n", formatArray(data))
			if idx := search.Binary(data, target); idx >= 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d at index %d\n", target, idx)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d not found\n", target)
			}
			return nil
		},
	}
	return cmd
}
