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

	"github.com/algobench/go-sortsuite/internal/bench"
	"github.com/algobench/go-sortsuite/internal/config"
)

func newBenchCmd() *cobra.Command {
	var cfgPath string
	var algo string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each algorithm over the deterministic benchmark array",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultBench()
			if cfgPath != "" {
				var err error
				if cfg, err = config.LoadBench(cfgPath); err != nil {
					return err
				}
			}

			algos := algorithms()
			if algo != "" {
				a, err := lookupAlgorithm(algo)
				if err != nil {
					return err
				}
				algos = []algorithm{a}
			}

			runner, err := bench.NewRunner(bench.Generate(cfg.Size), cfg.Warmup, cfg.Runs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host: %s\n", bench.Environment())
			fmt.Fprintf(out, "size: %d, warmup: %d, runs: %d\n\n", cfg.Size, cfg.Warmup, cfg.Runs)
			fmt.Fprintf(out, "%-21s %12s %12s %12s %12s\n", "algorithm", "min", "median", "mean", "stddev")

			for _, a := range algos {
				res, err := runner.Run(a.name, a.sort)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-21s %12v %12v %12v %12v\n",
					res.Algo, res.Min, res.Median, res.Mean, res.Stddev)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML benchmark config file")
	cmd.Flags().StringVar(&algo, "algo", "",
		"limit to one algorithm ("+strings.Join(algorithmNames(), ", ")+")")
	return cmd
}
