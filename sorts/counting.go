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

// CountingSort sorts non-negative integers in place with a single stable
// counting pass keyed by value. Stable. O(n + k) time and O(k) auxiliary
// space for maximum value k, so it only pays off when k is small relative
// to n. Returns ErrNegativeValue (wrapped) without modifying data if any
// value is negative.
func CountingSort[T constraints.Integer](data []T) error {
	if err := ValidateNonNegative(data); err != nil {
		return errors.WithMessage(err, "counting sort")
	}
	if len(data) <= 1 {
		return nil
	}

	max := maxValue(data)
	out := make([]T, len(data))
	stableCountingPass(data, out, int(max)+1, func(v T) int { return int(v) })
	copy(data, out)
	return nil
}
