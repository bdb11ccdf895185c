package sorts

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	for _, n := range []int{0, 1, 2, 10, 100, 500} {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			v := rng.Int31n(100) - 50
			data[i] = v
			want[i] = v
		}
		SelectionSort(data)
		slices.Sort(want)
		require.Equal(t, want, data, "n=%d", n)
	}
}
