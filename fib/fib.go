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

// Package fib provides the Fibonacci variants of the reference corpus:
// iterative, naively recursive, and memoized. The memoized form takes an
// explicitly constructed cache rather than hiding one in package state, so
// callers control its lifetime.
package fib

// Iterative computes the n-th Fibonacci number in O(n) time and O(1) space.
// F(0) = 0, F(1) = 1. Values overflow uint64 beyond n = 93.
func Iterative(n int) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	var prev, cur uint64 = 0, 1
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// Recursive computes the n-th Fibonacci number by direct recursion.
// Exponential time; kept as the naive cross-language baseline.
func Recursive(n int) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Cache memoizes Fibonacci values for Memoized.
type Cache struct {
	seen map[int]uint64
}

// NewCache returns an empty memoization cache.
func NewCache() *Cache {
	return &Cache{seen: make(map[int]uint64)}
}

// Memoized computes the n-th Fibonacci number in O(n) amortized time,
// recording intermediate values in cache.
func Memoized(n int, cache *Cache) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	if v, ok := cache.seen[n]; ok {
		return v
	}
	v := Memoized(n-1, cache) + Memoized(n-2, cache)
	cache.seen[n] = v
	return v
}
