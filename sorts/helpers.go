package sorts

import "golang.org/x/exp/constraints"

// Helper functions shared across the sorting implementations.

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// maxValue returns the largest element. data must be non-empty.
func maxValue[T constraints.Ordered](data []T) T {
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
