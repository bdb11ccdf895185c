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

// Heapsort sorts data in place: build a max-heap bottom-up, then repeatedly
// swap the root with the last unsorted element and re-sift. Not stable.
// O(n log n) worst case with O(1) auxiliary space.
func Heapsort[T constraints.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Heapify every non-leaf, from the last non-leaf down to the root.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract the maximum into the shrinking tail.
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i within
// data[:n], swapping downward along the larger child until the node is >=
// both children or a leaf is reached.
func siftDown[T constraints.Ordered](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
