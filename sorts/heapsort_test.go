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

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSiftDownBuildsMaxHeap runs the bottom-up build phase alone and checks
// the heap property over every parent/child pair.
func TestSiftDownBuildsMaxHeap(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, n := range []int{2, 3, 7, 64, 1000} {
		data := make([]int32, n)
		for i := range data {
			data[i] = rng.Int31n(1000)
		}

		for i := n/2 - 1; i >= 0; i-- {
			siftDown(data, i, n)
		}

		for i := 0; i < n; i++ {
			if left := 2*i + 1; left < n {
				require.GreaterOrEqual(t, data[i], data[left], "n=%d node %d", n, i)
			}
			if right := 2*i + 2; right < n {
				require.GreaterOrEqual(t, data[i], data[right], "n=%d node %d", n, i)
			}
		}
	}
}

// TestHeapsortMatchesStdlib verifies Heapsort against slices.Sort on random
// data, including negative values.
func TestHeapsortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1617))
	for _, n := range []int{10, 100, 1000, 10000} {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			v := rng.Int31n(10000) - 5000
			data[i] = v
			want[i] = v
		}
		Heapsort(data)
		slices.Sort(want)
		require.Equal(t, want, data, "n=%d", n)
	}
}

func TestHeapsortInt64(t *testing.T) {
	data := []int64{9, -3, 0, 9223372036854775807, -9223372036854775808, 4}
	Heapsort(data)
	require.True(t, IsSorted(data))
}
