// Copyright 2026 The Cockroach Authors
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

package indexed

// Set is a set that assigns each element a dense position in insertion
// order. Add returns the new element's position, which stays stable until
// an earlier element is removed. Unlike Map.Add, adding a present element
// is not an error: Add reports it by returning -1, matching the usual
// interning call site where "already there" is the common case.
//
// A Set must be created with NewSet and must not be copied after first
// use. A Set is NOT goroutine-safe.
type Set[K comparable] struct {
	slots store[K]
	idx   index[K]
}

// NewSet constructs an empty Set with capacity for initialCapacity
// elements before the first growth.
func NewSet[K comparable](initialCapacity int, options ...Option[K]) *Set[K] {
	s := &Set[K]{}
	cfg := defaultConfig[K]()
	cfg.apply(options)
	s.slots.init(initialCapacity)
	s.idx.init(cfg, func(i int) K { return s.slots.slots[i] }, initialCapacity)
	return s
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	return s.slots.len()
}

// Add inserts key and returns its position, or -1 if key was already
// present. A -1 return leaves the set unchanged.
func (s *Set[K]) Add(key K) int {
	if s.idx.find(key) >= 0 {
		return -1
	}
	i := s.slots.append(key)
	s.idx.insert(key, i)
	s.checkInvariants()
	return i
}

// AddSlice inserts every key from keys, skipping the ones already
// present, and returns the number of keys actually added.
func (s *Set[K]) AddSlice(keys []K) int {
	added := 0
	for _, k := range keys {
		if s.Add(k) >= 0 {
			added++
		}
	}
	return added
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.idx.find(key) >= 0
}

// IndexOf returns the position of key, or -1 if key is not present.
func (s *Set[K]) IndexOf(key K) int {
	return s.idx.find(key)
}

// At returns the element at position i. It panics if i is outside
// [0, Len).
func (s *Set[K]) At(i int) K {
	return *s.slots.at(i)
}

// Remove removes key, shifting every later element down by one position.
// It reports whether an element was removed.
func (s *Set[K]) Remove(key K) bool {
	i := s.idx.remove(key)
	if i < 0 {
		return false
	}
	s.slots.removeRange(i, 1)
	s.idx.shifted(i, 1)
	s.checkInvariants()
	return true
}

// RemoveAt removes the element at position i, shifting every later
// element down by one. It panics if i is outside [0, Len).
func (s *Set[K]) RemoveAt(i int) {
	s.slots.check(i)
	s.idx.unlink(i)
	s.slots.removeRange(i, 1)
	s.idx.shifted(i, 1)
	s.checkInvariants()
}

// Clear removes all elements, retaining the allocated capacity.
func (s *Set[K]) Clear() {
	s.slots.clear()
	s.idx.clear()
}

// All calls yield for each element in insertion order, stopping early if
// yield returns false. The iteration is a live view; the set must not be
// mutated while All is running.
func (s *Set[K]) All(yield func(key K) bool) {
	for i := range s.slots.slots {
		if !yield(s.slots.slots[i]) {
			return
		}
	}
}

// Elements returns the elements in insertion order as a freshly allocated
// slice.
func (s *Set[K]) Elements() []K {
	out := make([]K, s.slots.len())
	copy(out, s.slots.slots)
	return out
}

func (s *Set[K]) checkInvariants() {
	if invariants {
		s.idx.validate(s.slots.len())
	}
}
