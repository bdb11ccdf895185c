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

// Mergesort sorts data in place using top-down mergesort. Stable: elements
// with equal values keep their relative input order. O(n log n) time with
// O(n) auxiliary space per merge, released as each merge returns.
func Mergesort[T constraints.Ordered](data []T) {
	mergesortBy(data, func(a, b T) bool { return a <= b })
}

// mergesortBy is the recursive worker behind Mergesort. leq reports whether
// a may be emitted before b; it must return true on ties, which is what
// makes the sort stable.
func mergesortBy[T any](data []T, leq func(a, b T) bool) {
	if len(data) > 1 {
		mergesortRange(data, 0, len(data)-1, leq)
	}
}

func mergesortRange[T any](data []T, left, right int, leq func(a, b T) bool) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergesortRange(data, left, mid, leq)
	mergesortRange(data, mid+1, right, leq)
	merge(data, left, mid, right, leq)
}

// merge combines the sorted runs data[left:mid+1] and data[mid+1:right+1]
// back into data[left:right+1]. Ties take the left run's element first.
func merge[T any](data []T, left, mid, right int, leq func(a, b T) bool) {
	leftRun := make([]T, mid-left+1)
	rightRun := make([]T, right-mid)
	copy(leftRun, data[left:mid+1])
	copy(rightRun, data[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(leftRun) && j < len(rightRun) {
		if leq(leftRun[i], rightRun[j]) {
			data[k] = leftRun[i]
			i++
		} else {
			data[k] = rightRun[j]
			j++
		}
		k++
	}

	// One run is exhausted; flush the other verbatim.
	for i < len(leftRun) {
		data[k] = leftRun[i]
		i++
		k++
	}
	for j < len(rightRun) {
		data[k] = rightRun[j]
		j++
		k++
	}
}
