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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadixSortMultiDigit(t *testing.T) {
	data := []int32{170, 45, 75, 90, 802, 24, 2, 66}
	require.NoError(t, RadixSort(data))
	require.Equal(t, []int32{2, 24, 45, 66, 75, 90, 170, 802}, data)
}

// TestRadixSortRejectsNegative checks the precondition error and that the
// input is left untouched when it fires.
func TestRadixSortRejectsNegative(t *testing.T) {
	data := []int32{-1, 2, 3}
	err := RadixSort(data)
	require.ErrorIs(t, err, ErrNegativeValue)
	require.Contains(t, err.Error(), "index 0")
	require.Equal(t, []int32{-1, 2, 3}, data)
}

// TestRadixSortMaxInt32 covers the digit loop near the top of the value
// range, where a naive exp accumulator would overflow.
func TestRadixSortMaxInt32(t *testing.T) {
	data := []int32{math.MaxInt32, 0, 999999999, 1000000000, 7}
	require.NoError(t, RadixSort(data))
	require.Equal(t, []int32{0, 7, 999999999, 1000000000, math.MaxInt32}, data)
}

func TestRadixSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(777))
	for _, n := range []int{10, 100, 1000, 10000} {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			v := rng.Int31n(1000000)
			data[i] = v
			want[i] = v
		}
		require.NoError(t, RadixSort(data))
		slices.Sort(want)
		require.Equal(t, want, data, "n=%d", n)
	}
}

// TestStableCountingPassPreservesOrder verifies the stability mechanism
// shared by every radix digit pass and by counting sort: elements with equal
// keys must come out in input order. The key deliberately collapses
// distinguishable values into the same bucket.
func TestStableCountingPassPreservesOrder(t *testing.T) {
	src := []int32{21, 11, 31, 2, 12, 41}
	dst := make([]int32, len(src))

	stableCountingPass(src, dst, radixBase, func(v int32) int { return int(v % 10) })

	// Keys: 1,1,1,2,2,1 -> bucket 1 in input order, then bucket 2.
	require.Equal(t, []int32{21, 11, 31, 41, 2, 12}, dst)
}

// TestRadixSortStabilityComposes checks that per-digit stability yields a
// correct global order across passes on values sharing low digits.
func TestRadixSortStabilityComposes(t *testing.T) {
	data := []int32{802, 2, 702, 102, 502, 402}
	require.NoError(t, RadixSort(data))
	require.Equal(t, []int32{2, 102, 402, 502, 702, 802}, data)
}
