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
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/algobench/go-sortsuite/fib"
)

// fibMaxN is the largest index whose Fibonacci number fits in uint64.
const fibMaxN = 93

func newFibCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "fib <n>",
		Short:   "Compute the n-th Fibonacci number",
		Example: "  sortsuite fib 30\n  sortsuite fib --mode=memoized 90",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "n (%q) is not an integer", args[0])
			}
			if n < 0 || n > fibMaxN {
				return errors.Errorf("n must be in [0, %d], got %d", fibMaxN, n)
			}

			var v uint64
			switch mode {
			case "iterative":
				v = fib.Iterative(n)
			case "recursive":
				v = fib.Recursive(n)
			case "memoized":
				v = fib.Memoized(n, fib.NewCache())
			default:
				return errors.Errorf("unknown mode %q (have iterative, recursive, memoized)", mode)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %d\n", n, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "iterative", "iterative, recursive or memoized")
	return cmd
}
