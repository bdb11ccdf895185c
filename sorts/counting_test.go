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

func TestCountingSortMultiDigit(t *testing.T) {
	data := []int32{170, 45, 75, 90, 802, 24, 2, 66}
	require.NoError(t, CountingSort(data))
	require.Equal(t, []int32{2, 24, 45, 66, 75, 90, 170, 802}, data)
}

func TestCountingSortRejectsNegative(t *testing.T) {
	data := []int32{-1, 2, 3}
	err := CountingSort(data)
	require.ErrorIs(t, err, ErrNegativeValue)
	require.Equal(t, []int32{-1, 2, 3}, data)
}

func TestCountingSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(888))
	for _, n := range []int{10, 100, 1000, 10000} {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			v := rng.Int31n(1000) // keep k small; that's the algorithm's domain
			data[i] = v
			want[i] = v
		}
		require.NoError(t, CountingSort(data))
		slices.Sort(want)
		require.Equal(t, want, data, "n=%d", n)
	}
}

func TestCountingSortAllZeros(t *testing.T) {
	data := []int32{0, 0, 0, 0}
	require.NoError(t, CountingSort(data))
	require.Equal(t, []int32{0, 0, 0, 0}, data)
}

func TestCountingSortInt64(t *testing.T) {
	data := []int64{300, 1, 0, 300, 2, 150}
	require.NoError(t, CountingSort(data))
	require.Equal(t, []int64{0, 1, 2, 150, 300, 300}, data)
}
