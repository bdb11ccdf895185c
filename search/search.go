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

// Package search provides binary search over sorted slices, as a companion
// to the sorting reference implementations.
package search

import "golang.org/x/exp/constraints"

// Binary returns the index of target in the sorted slice data, or -1 when
// absent. Iterative halving; data must be in non-decreasing order. If target
// occurs more than once, which index is returned is unspecified.
func Binary[T constraints.Ordered](data []T, target T) int {
	low, high := 0, len(data)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case data[mid] == target:
			return mid
		case data[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1
}

// BinaryRecursive is the structured-recursion form of Binary with identical
// observable behavior.
func BinaryRecursive[T constraints.Ordered](data []T, target T) int {
	return binaryRange(data, target, 0, len(data)-1)
}

func binaryRange[T constraints.Ordered](data []T, target T, low, high int) int {
	if low > high {
		return -1
	}
	mid := low + (high-low)/2
	switch {
	case data[mid] == target:
		return mid
	case data[mid] < target:
		return binaryRange(data, target, mid+1, high)
	default:
		return binaryRange(data, target, low, mid-1)
	}
}
