// Copyright 2025 Open3FS Authors
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

package utils

import (
	"cmp"
	"slices"
)

// Set is a set
type Set[T cmp.Ordered] map[T]struct{}

// Add adds an item to the set
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Contains returns true if the set contains the item
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set
func (s Set[T]) Len() int {
	return len(s)
}

// AddIfNotExists adds an item to the set if it does not already exist
func (s Set[T]) AddIfNotExists(item T) bool {
	if s.Contains(item) {
		return false
	}
	s.Add(item)
	return true
}

// Sorted returns the items in ascending order.
func (s Set[T]) Sorted() []T {
	ret := make([]T, 0, len(s))
	for item := range s {
		ret = append(ret, item)
	}
	slices.Sort(ret)
	return ret
}

// NewSet creates a new Set
func NewSet[T cmp.Ordered](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}
