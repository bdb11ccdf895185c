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

// Package sorts provides classic in-memory array sorting algorithms as
// independent, single-shot functions over integer (and generally ordered)
// slices. Each algorithm is a reference implementation kept deliberately
// close to its textbook form so that ports to other languages can be
// validated against it.
//
// # Algorithms
//
// Comparison sorts, generic over any ordered element type:
//   - Quicksort: in-place recursive quicksort with Lomuto partitioning
//   - QuicksortFunctional: value-partitioning quicksort returning a new slice
//   - QuicksortThreeWay: in-place Dutch-flag quicksort, fast on duplicates
//   - Mergesort: top-down stable mergesort with O(n) auxiliary space
//   - Heapsort: in-place max-heap selection sort
//   - SelectionSort: textbook selection sort
//
// Distribution sorts, restricted to non-negative integers:
//   - RadixSort: base-10 LSD radix sort
//   - CountingSort: stable counting sort, O(n + k) for max value k
//
// # Stability
//
// Mergesort, RadixSort and CountingSort are stable: elements with equal
// values keep their relative input order. The other algorithms are not, and
// QuicksortFunctional's ordering among equal elements is unspecified.
//
// # Preconditions
//
// RadixSort and CountingSort require every input value to be >= 0 and return
// ErrNegativeValue otherwise, before touching the slice. All algorithms
// accept empty and single-element slices and leave them unchanged.
//
// # Example Usage
//
//	import "github.com/algobench/go-sortsuite/sorts"
//
//	func Process(data []int32) error {
//	    sorts.Quicksort(data)          // in-place ascending sort
//	    return sorts.RadixSort(data)   // already sorted, still validates
//	}
package sorts
