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
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// radixBase is the digit base for LSD radix sort.
const radixBase = 10

// RadixSort sorts non-negative integers in place using base-10 LSD radix
// sort: one stable counting pass per digit, least significant first.
// Stability of each pass composes across passes into a globally stable sort.
// Returns ErrNegativeValue (wrapped) without modifying data if any value is
// negative.
func RadixSort[T constraints.Integer](data []T) error {
	if err := ValidateNonNegative(data); err != nil {
		return errors.WithMessage(err, "radix sort")
	}
	if len(data) <= 1 {
		return nil
	}

	max := uint64(maxValue(data))
	buf := make([]T, len(data))

	// exp walks digit positions 1, 10, 100, ... in uint64 so the loop bound
	// cannot overflow even when max is near the top of T's range.
	for exp := uint64(1); max/exp > 0; exp *= radixBase {
		e := exp
		stableCountingPass(data, buf, radixBase, func(v T) int {
			return int(uint64(v) / e % radixBase)
		})
		copy(data, buf)
	}
	return nil
}

// stableCountingPass distributes src into dst ordered by key, preserving
// input order within equal keys. key must map every element into
// [0, buckets). The placement scan walks src from last index to first,
// decrementing cumulative counts before each write; that right-to-left order
// is what makes the pass stable. Shared by RadixSort (key = digit) and
// CountingSort (key = value).
func stableCountingPass[T any](src, dst []T, buckets int, key func(T) int) {
	count := make([]int, buckets)
	for _, v := range src {
		count[key(v)]++
	}
	for b := 1; b < buckets; b++ {
		count[b] += count[b-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		k := key(src[i])
		count[k]--
		dst[count[k]] = src[i]
	}
}
