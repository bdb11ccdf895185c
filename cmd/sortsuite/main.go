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

// Command sortsuite runs the reference array algorithms from the command
// line: sort a sequence of integers, replay the acceptance fixtures, or time
// each algorithm over the deterministic benchmark array.
//
// Usage:
//
//	sortsuite run --algo=quicksort 64 34 25 12 22 11 90 88
//	sortsuite selftest
//	sortsuite bench --config=bench.toml
//	sortsuite search 25 64 34 25 12
//	sortsuite fib 30
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
