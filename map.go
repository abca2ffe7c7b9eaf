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

// Package indexed provides collections that combine average O(1) hashed
// lookup with O(1) positional access and insertion-ordered iteration:
// Map[K,V] (an insertion-ordered dictionary), BiMap[L,R] (a bidirectional
// map where both sides are unique and both lookups are O(1)), and Set[K]
// (a set that assigns a stable dense index to every element).
//
// # Design
//
// All three types share the same two-layer layout. A dense slot array
// holds the entries in insertion order; positions [0, Len) are always
// contiguous, so the collections behave like slices for positional access
// and iteration. One hash index per keyed field (two for BiMap) maps a
// key's hash to the head of a collision chain of slot positions; chains
// are intrusive, a single next pointer per slot, and key equality rather
// than hash equality decides a match. The index stores positions only and
// reads keys back out of the slot array, so keys are stored once no
// matter how many indexes cover them.
//
// The dense layout dictates the removal policy: removing the entry at
// position i shifts every later entry down by one and repoints the hash
// chains accordingly. Removal is therefore O(n) in the worst case. That
// cost is deliberate. The alternatives (tombstones, swap-with-last) make
// removal O(1) but give up either the contiguous position space or the
// insertion ordering, and both of those are the point of these types. Use
// a plain map or swiss.Map when positional semantics are not needed.
//
// Hashing defaults to hash/maphash.Comparable with a random seed per
// collection. The policy is pluggable per key type via WithHash and
// WithEqual, e.g. to fold case in string keys.
//
// None of the types in this package are goroutine-safe. Iteration is a
// live view of the slot array; mutating a collection while iterating it
// has undefined results.
package indexed

import "github.com/cockroachdb/errors"

// A Pair is one key/value entry of a Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a dictionary that remembers insertion order and supports O(1)
// access by position as well as by key. Add appends, Delete and RemoveAt
// shift later entries down by one (an O(n) operation, see the package
// documentation), and iteration yields entries oldest first.
//
// A Map must be created with NewMap and must not be copied after first
// use. A Map is NOT goroutine-safe.
type Map[K comparable, V any] struct {
	slots store[Pair[K, V]]
	idx   index[K]
}

// NewMap constructs an empty Map with capacity for initialCapacity
// entries before the first growth.
func NewMap[K comparable, V any](initialCapacity int, options ...Option[K]) *Map[K, V] {
	m := &Map[K, V]{}
	cfg := defaultConfig[K]()
	cfg.apply(options)
	m.slots.init(initialCapacity)
	m.idx.init(cfg, func(i int) K { return m.slots.slots[i].Key }, initialCapacity)
	return m
}

// NewMapFromPairs constructs a Map seeded with the given pairs, in order.
// The pairs are validated the same way AddRange validates them: any
// duplicate key fails the whole construction.
func NewMapFromPairs[K comparable, V any](
	pairs []Pair[K, V], options ...Option[K],
) (*Map[K, V], error) {
	m := NewMap[K, V](len(pairs), options...)
	if err := m.AddRange(pairs); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMapFrom constructs a Map seeded from a builtin map. The insertion
// order of the result is unspecified, matching the source's iteration
// order. Construction fails with ErrDuplicateKey if a custom equality
// function makes two of the source's keys equal.
func NewMapFrom[K comparable, V any](src map[K]V, options ...Option[K]) (*Map[K, V], error) {
	m := NewMap[K, V](len(src), options...)
	for k, v := range src {
		if err := m.Add(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.slots.len()
}

// Add appends a new entry, failing with ErrDuplicateKey if the key is
// already present. A failed Add has no effect.
func (m *Map[K, V]) Add(key K, value V) error {
	if m.idx.find(key) >= 0 {
		return duplicateKeyError(key)
	}
	m.put(key, value)
	m.checkInvariants()
	return nil
}

// Set inserts the entry if the key is absent, and otherwise replaces the
// existing entry's value in place: the entry keeps its position and the
// iteration order is unchanged.
func (m *Map[K, V]) Set(key K, value V) {
	if i := m.idx.find(key); i >= 0 {
		m.slots.slots[i].Value = value
		return
	}
	m.put(key, value)
	m.checkInvariants()
}

func (m *Map[K, V]) put(key K, value V) {
	i := m.slots.append(Pair[K, V]{Key: key, Value: value})
	m.idx.insert(key, i)
}

// AddRange appends all of the given pairs. The batch is validated first,
// both against the map and for duplicates within the batch itself; on
// failure nothing is added. Entries are appended in slice order.
func (m *Map[K, V]) AddRange(pairs []Pair[K, V]) error {
	// A scratch index over the batch slice detects intra-batch duplicates
	// with the same hashing policy as the map itself.
	var scratch index[K]
	scratch.init(
		config[K]{hash: m.idx.hash, equal: m.idx.equal},
		func(i int) K { return pairs[i].Key },
		len(pairs),
	)
	for i := range pairs {
		if m.idx.find(pairs[i].Key) >= 0 {
			return duplicateKeyError(pairs[i].Key)
		}
		if scratch.find(pairs[i].Key) >= 0 {
			return duplicateKeyError(pairs[i].Key)
		}
		scratch.insert(pairs[i].Key, i)
	}
	for i := range pairs {
		m.put(pairs[i].Key, pairs[i].Value)
	}
	m.checkInvariants()
	return nil
}

// Get retrieves the value for key, returning ok=false if the key is not
// present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	i := m.idx.find(key)
	if i < 0 {
		return value, false
	}
	return m.slots.slots[i].Value, true
}

// Lookup retrieves the value for key, failing with ErrKeyNotFound if the
// key is not present.
func (m *Map[K, V]) Lookup(key K) (V, error) {
	i := m.idx.find(key)
	if i < 0 {
		var zero V
		return zero, keyNotFoundError(key)
	}
	return m.slots.slots[i].Value, nil
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.idx.find(key) >= 0
}

// IndexOf returns the position of key, or -1 if the key is not present.
func (m *Map[K, V]) IndexOf(key K) int {
	return m.idx.find(key)
}

// At returns the entry at position i. It panics if i is outside [0, Len).
func (m *Map[K, V]) At(i int) (K, V) {
	p := m.slots.at(i)
	return p.Key, p.Value
}

// KeyAt returns the key at position i. It panics if i is outside [0, Len).
func (m *Map[K, V]) KeyAt(i int) K {
	return m.slots.at(i).Key
}

// ValueAt returns the value at position i. It panics if i is outside
// [0, Len).
func (m *Map[K, V]) ValueAt(i int) V {
	return m.slots.at(i).Value
}

// SetValueAt replaces the value at position i, leaving the key and the
// position untouched. It panics if i is outside [0, Len).
func (m *Map[K, V]) SetValueAt(i int, value V) {
	m.slots.at(i).Value = value
}

// Delete removes the entry for key, shifting every later entry down by
// one position. It reports whether an entry was removed; deleting an
// absent key is a noop.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.idx.remove(key)
	if i < 0 {
		return false
	}
	m.slots.removeRange(i, 1)
	m.idx.shifted(i, 1)
	m.checkInvariants()
	return true
}

// RemoveAt removes the entry at position i, shifting every later entry
// down by one. It panics if i is outside [0, Len).
func (m *Map[K, V]) RemoveAt(i int) {
	m.RemoveRange(i, 1)
}

// RemoveRange removes the n entries starting at position i, shifting
// every later entry down by n. It panics if [i, i+n) is not within
// [0, Len).
func (m *Map[K, V]) RemoveRange(i, n int) {
	m.slots.checkRange(i, n)
	for j := i; j < i+n; j++ {
		m.idx.unlink(j)
	}
	m.slots.removeRange(i, n)
	m.idx.shifted(i, n)
	m.checkInvariants()
}

// Clear removes all entries, retaining the allocated capacity.
func (m *Map[K, V]) Clear() {
	m.slots.clear()
	m.idx.clear()
}

// All calls yield for each entry in insertion order, stopping early if
// yield returns false. It can be used directly in a range statement:
//
//	for k, v := range m.All {
//	  ...
//	}
//
// The iteration is a live view; the map must not be mutated while All is
// running.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	for i := range m.slots.slots {
		if !yield(m.slots.slots[i].Key, m.slots.slots[i].Value) {
			return
		}
	}
}

// Keys returns the keys in insertion order as a freshly allocated slice.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, m.slots.len())
	for i := range m.slots.slots {
		keys[i] = m.slots.slots[i].Key
	}
	return keys
}

// Values returns the values in insertion order as a freshly allocated
// slice.
func (m *Map[K, V]) Values() []V {
	values := make([]V, m.slots.len())
	for i := range m.slots.slots {
		values[i] = m.slots.slots[i].Value
	}
	return values
}

func (m *Map[K, V]) checkInvariants() {
	if invariants {
		m.idx.validate(m.slots.len())
		for i := range m.slots.slots {
			if j := m.idx.find(m.slots.slots[i].Key); j != i {
				panic(errors.AssertionFailedf(
					"indexed: key at position %d found at %d", i, j))
			}
		}
	}
}
