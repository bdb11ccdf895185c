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

package sorts

import "golang.org/x/exp/constraints"

// Quicksort sorts data in place using recursive quicksort with Lomuto
// partitioning (last element as pivot). Not stable. Average O(n log n),
// worst case O(n^2) with recursion depth up to O(n) on adversarial input;
// no allocation.
func Quicksort[T constraints.Ordered](data []T) {
	if len(data) > 1 {
		quicksortRange(data, 0, len(data)-1)
	}
}

func quicksortRange[T constraints.Ordered](data []T, low, high int) {
	if low >= high {
		return
	}
	p := lomutoPartition(data, low, high)
	quicksortRange(data, low, p-1)
	quicksortRange(data, p+1, high)
}

// lomutoPartition partitions data[low:high+1] around data[high] and returns
// the pivot's final index. Invariant: data[low:i] <= pivot at every step of
// the scan.
func lomutoPartition[T constraints.Ordered](data []T, low, high int) int {
	pivot := data[high]
	i := low
	for j := low; j < high; j++ {
		if data[j] <= pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[high] = data[high], data[i]
	return i
}

// QuicksortFunctional returns a sorted copy of data, leaving the input
// untouched. It partitions by value into freshly allocated less/equal/greater
// slices (middle element as pivot), recurses on the outer two, and
// concatenates. Ordering among equal elements is unspecified. Aggregate
// allocation is O(n log n) across the recursion; this is the deliberate
// trade-off against the in-place variant.
func QuicksortFunctional[T constraints.Ordered](data []T) []T {
	n := len(data)
	if n <= 1 {
		out := make([]T, n)
		copy(out, data)
		return out
	}

	pivot := data[n/2]

	// Two passes: size the three partitions exactly, then fill them.
	var lessN, equalN, greaterN int
	for _, v := range data {
		switch {
		case v < pivot:
			lessN++
		case v > pivot:
			greaterN++
		default:
			equalN++
		}
	}

	less := make([]T, 0, lessN)
	equal := make([]T, 0, equalN)
	greater := make([]T, 0, greaterN)
	for _, v := range data {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, n)
	out = append(out, QuicksortFunctional(less)...)
	out = append(out, equal...)
	out = append(out, QuicksortFunctional(greater)...)
	return out
}

// QuicksortThreeWay sorts data in place using Dutch-flag three-way
// partitioning (first element of each range as pivot). Not stable. Equal
// runs collapse in a single pass, so inputs dominated by duplicates cost
// O(n) comparisons per recursion level instead of being re-split.
func QuicksortThreeWay[T constraints.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	var comparisons int
	threeWayRange(data, 0, len(data)-1, &comparisons)
}

// threeWayRange partitions data[low:high+1] into <pivot, ==pivot, >pivot
// regions and recurses on the outer two; the equal region is final. comps
// accumulates element comparisons against the pivot. Each iteration either
// advances i or shrinks gt, so the loop terminates.
func threeWayRange[T constraints.Ordered](data []T, low, high int, comps *int) {
	if low >= high {
		return
	}

	pivot := data[low]
	lt := low
	gt := high
	i := low + 1

	for i <= gt {
		v := data[i]
		*comps++
		if v < pivot {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
			continue
		}
		*comps++
		if v > pivot {
			// The value swapped in from gt is unexamined; do not advance i.
			data[i], data[gt] = data[gt], data[i]
			gt--
			continue
		}
		i++
	}

	threeWayRange(data, low, lt-1, comps)
	threeWayRange(data, gt+1, high, comps)
}
