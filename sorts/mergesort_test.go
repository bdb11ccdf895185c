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

// TestMergesortMatchesStdlib verifies Mergesort against slices.Sort on
// random data, including negative values.
func TestMergesortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	for _, n := range []int{10, 100, 1000, 10000} {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			v := rng.Int31n(10000) - 5000
			data[i] = v
			want[i] = v
		}
		Mergesort(data)
		slices.Sort(want)
		require.Equal(t, want, data, "n=%d", n)
	}
}

// TestMergesortStability tags each element with its input position and
// checks that equal keys keep their relative order, exercising the worker's
// prefer-left tie-break.
func TestMergesortStability(t *testing.T) {
	type tagged struct {
		key int32
		ord int
	}

	rng := rand.New(rand.NewSource(2025))
	data := make([]tagged, 1000)
	for i := range data {
		data[i] = tagged{key: rng.Int31n(10), ord: i} // heavy duplication
	}

	mergesortBy(data, func(a, b tagged) bool { return a.key <= b.key })

	for i := 1; i < len(data); i++ {
		require.LessOrEqual(t, data[i-1].key, data[i].key)
		if data[i-1].key == data[i].key {
			require.Less(t, data[i-1].ord, data[i].ord,
				"equal keys out of input order at %d", i)
		}
	}
}

// TestMergeFlushesRemainder checks the merge step's run-exhaustion paths on
// runs of unequal length.
func TestMergeFlushesRemainder(t *testing.T) {
	leq := func(a, b int32) bool { return a <= b }

	// Left run exhausts first.
	data := []int32{1, 2, 3, 4, 5, 6, 7}
	merge(data, 0, 1, 6, leq)
	require.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7}, data)

	// Right run exhausts first.
	data = []int32{5, 6, 7, 1, 2}
	merge(data, 0, 2, 4, leq)
	require.Equal(t, []int32{1, 2, 5, 6, 7}, data)
}
