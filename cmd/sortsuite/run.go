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
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "run [ints...]",
		Short: "Sort the given integers with one algorithm",
		Example: "  sortsuite run --algo=quicksort 64 34 25 12 22 11 90 88\n" +
			"  sortsuite run --algo=radixsort 170 45 75 90 802 24 2 66",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := lookupAlgorithm(algo)
			if err != nil {
				return err
			}
			in, err := parseInts(args)
			if err != nil {
				return err
			}
			out, err := a.sorted(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Before: %s\n", formatArray(in))
			fmt.Fprintf(cmd.OutOrStdout(), "After:  %s\n", formatArray(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "quicksort",
		"algorithm to run ("+strings.Join(algorithmNames(), ", ")+")")
	return cmd
}
