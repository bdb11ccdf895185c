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

// ErrNegativeValue reports an input value outside the non-negative domain
// required by RadixSort and CountingSort.
var ErrNegativeValue = errors.New("negative value in input")

// ValidateNonNegative checks the precondition shared by RadixSort and
// CountingSort: every value must be >= 0. The returned error wraps
// ErrNegativeValue with the first offending index and value.
func ValidateNonNegative[T constraints.Integer](data []T) error {
	for i, v := range data {
		if v < 0 {
			return errors.Wrapf(ErrNegativeValue, "index %d holds %d", i, v)
		}
	}
	return nil
}
