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
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/algobench/go-sortsuite/internal/fixtures"
	"github.com/algobench/go-sortsuite/sorts"
)

func newSelftestCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Replay the acceptance fixtures against the algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			algos := algorithms()
			if algo != "" {
				a, err := lookupAlgorithm(algo)
				if err != nil {
					return err
				}
				algos = []algorithm{a}
			}

			failed := 0
			for _, a := range algos {
				if err := selftest(a); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %-21s %v\n", a.name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", a.name)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d algorithms failed selftest", failed, len(algos))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "",
		"limit to one algorithm ("+strings.Join(algorithmNames(), ", ")+")")
	return cmd
}

// selftest runs every fixture against a. The distribution fixtures are
// non-negative, so they apply to the comparison sorts as well; the negative
// rejection check applies only to radix and counting sort.
func selftest(a algorithm) error {
	cases := append(fixtures.Comparison(), fixtures.Distribution()...)
	for _, c := range cases {
		got, err := a.sorted(c.In)
		if err != nil {
			return errors.WithMessagef(err, "case %s", c.Name)
		}
		if !slices.Equal(got, c.Want) {
			return errors.Errorf("case %s: got %s, want %s",
				c.Name, formatArray(got), formatArray(c.Want))
		}
	}

	if a.nonNegOnly {
		if _, err := a.sorted(fixtures.NegativeInput()); !errors.Is(err, sorts.ErrNegativeValue) {
			return errors.Errorf("negative input was not rejected (err=%v)", err)
		}
	}
	return nil
}
