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

// Package fixtures holds the literal acceptance arrays shared by the
// selftest command and the package tests. These are the pre-agreed inputs
// every algorithm (in any language port) must reproduce exactly.
package fixtures

// Case is one acceptance fixture: an input array and the expected sorted
// output.
type Case struct {
	Name string
	In   []int32
	Want []int32
}

// Comparison returns the fixtures every sorting algorithm must pass. All
// values are non-negative so the same table also feeds the distribution
// sorts.
func Comparison() []Case {
	return []Case{
		{
			Name: "mixed",
			In:   []int32{64, 34, 25, 12, 22, 11, 90, 88},
			Want: []int32{11, 12, 22, 25, 34, 64, 88, 90},
		},
		{
			Name: "reverse",
			In:   []int32{5, 4, 3, 2, 1},
			Want: []int32{1, 2, 3, 4, 5},
		},
		{
			Name: "sorted",
			In:   []int32{1, 2, 3, 4, 5},
			Want: []int32{1, 2, 3, 4, 5},
		},
		{
			Name: "all_equal",
			In:   []int32{7, 7, 7, 7, 7},
			Want: []int32{7, 7, 7, 7, 7},
		},
		{
			Name: "duplicates",
			In:   []int32{3, 1, 4, 1, 5, 9, 2, 6},
			Want: []int32{1, 1, 2, 3, 4, 5, 6, 9},
		},
		{
			Name: "empty",
			In:   []int32{},
			Want: []int32{},
		},
		{
			Name: "single",
			In:   []int32{42},
			Want: []int32{42},
		},
	}
}

// Distribution returns the extra fixtures for radix and counting sort.
func Distribution() []Case {
	return []Case{
		{
			Name: "multi_digit",
			In:   []int32{170, 45, 75, 90, 802, 24, 2, 66},
			Want: []int32{2, 24, 45, 66, 75, 90, 170, 802},
		},
	}
}

// NegativeInput is the array the distribution sorts must reject before
// running.
func NegativeInput() []int32 {
	return []int32{-1, 2, 3}
}
