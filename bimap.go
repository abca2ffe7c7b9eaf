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

import "github.com/cockroachdb/errors"

type biEntry[L, R comparable] struct {
	left  L
	right R
}

// BiMap is a bidirectional map: a sequence of (left, right) pairs where
// every left value is unique among lefts and every right value is unique
// among rights, with O(1) lookup in both directions. Entries keep their
// insertion order and are addressable by position, like Map. Inverse
// exposes the same entries with the roles swapped.
//
// Keys are immutable once inserted: Set replaces the right value of an
// existing entry in place, but replacing a left value requires Delete
// followed by Add.
//
// A BiMap must be created with NewBiMap and must not be copied after
// first use. A BiMap is NOT goroutine-safe.
type BiMap[L, R comparable] struct {
	slots store[biEntry[L, R]]
	left  index[L]
	right index[R]
}

// NewBiMap constructs an empty BiMap with capacity for initialCapacity
// entries before the first growth.
func NewBiMap[L, R comparable](initialCapacity int, options ...BiMapOption[L, R]) *BiMap[L, R] {
	m := &BiMap[L, R]{}
	leftCfg := defaultConfig[L]()
	rightCfg := defaultConfig[R]()
	for _, op := range options {
		op.apply(&leftCfg, &rightCfg)
	}
	m.slots.init(initialCapacity)
	m.left.init(leftCfg, func(i int) L { return m.slots.slots[i].left }, initialCapacity)
	m.right.init(rightCfg, func(i int) R { return m.slots.slots[i].right }, initialCapacity)
	return m
}

// Len returns the number of entries in the map.
func (m *BiMap[L, R]) Len() int {
	return m.slots.len()
}

// Add appends a new entry, failing with ErrDuplicateKey if either the
// left or the right value is already present on its side. Both sides are
// checked before anything is mutated, so a failed Add has no effect.
func (m *BiMap[L, R]) Add(left L, right R) error {
	if m.left.find(left) >= 0 {
		return duplicateKeyError(left)
	}
	if m.right.find(right) >= 0 {
		return duplicateKeyError(right)
	}
	i := m.slots.append(biEntry[L, R]{left: left, right: right})
	m.left.insert(left, i)
	m.right.insert(right, i)
	m.checkInvariants()
	return nil
}

// Set maps left to right. If left is absent the entry is appended like
// Add. If left is present its right value is replaced in place: the entry
// keeps its position and its left value. Set fails with ErrDuplicateKey
// if right already belongs to a different entry; on failure nothing is
// changed.
func (m *BiMap[L, R]) Set(left L, right R) error {
	i := m.left.find(left)
	if i < 0 {
		return m.Add(left, right)
	}
	if j := m.right.find(right); j >= 0 {
		if j != i {
			return duplicateKeyError(right)
		}
		// Same entry: the new right is equal to the old one under the
		// configured equality, so the chain stays valid. Keep the newest
		// representation.
		m.slots.slots[i].right = right
		return nil
	}
	m.right.unlink(i)
	m.slots.slots[i].right = right
	m.right.link(right, i)
	m.checkInvariants()
	return nil
}

// setLeft is Set with the roles swapped, backing Inverse.Set.
func (m *BiMap[L, R]) setLeft(right R, left L) error {
	i := m.right.find(right)
	if i < 0 {
		return m.Add(left, right)
	}
	if j := m.left.find(left); j >= 0 {
		if j != i {
			return duplicateKeyError(left)
		}
		m.slots.slots[i].left = left
		return nil
	}
	m.left.unlink(i)
	m.slots.slots[i].left = left
	m.left.link(left, i)
	m.checkInvariants()
	return nil
}

// GetRight retrieves the right value paired with left, returning ok=false
// if left is not present.
func (m *BiMap[L, R]) GetRight(left L) (right R, ok bool) {
	i := m.left.find(left)
	if i < 0 {
		return right, false
	}
	return m.slots.slots[i].right, true
}

// GetLeft retrieves the left value paired with right, returning ok=false
// if right is not present.
func (m *BiMap[L, R]) GetLeft(right R) (left L, ok bool) {
	i := m.right.find(right)
	if i < 0 {
		return left, false
	}
	return m.slots.slots[i].left, true
}

// LookupRight retrieves the right value paired with left, failing with
// ErrKeyNotFound if left is not present.
func (m *BiMap[L, R]) LookupRight(left L) (R, error) {
	i := m.left.find(left)
	if i < 0 {
		var zero R
		return zero, keyNotFoundError(left)
	}
	return m.slots.slots[i].right, nil
}

// LookupLeft retrieves the left value paired with right, failing with
// ErrKeyNotFound if right is not present.
func (m *BiMap[L, R]) LookupLeft(right R) (L, error) {
	i := m.right.find(right)
	if i < 0 {
		var zero L
		return zero, keyNotFoundError(right)
	}
	return m.slots.slots[i].left, nil
}

// HasLeft reports whether left is present.
func (m *BiMap[L, R]) HasLeft(left L) bool {
	return m.left.find(left) >= 0
}

// HasRight reports whether right is present.
func (m *BiMap[L, R]) HasRight(right R) bool {
	return m.right.find(right) >= 0
}

// IndexOfLeft returns the position of the entry whose left value is left,
// or -1 if left is not present.
func (m *BiMap[L, R]) IndexOfLeft(left L) int {
	return m.left.find(left)
}

// IndexOfRight returns the position of the entry whose right value is
// right, or -1 if right is not present.
func (m *BiMap[L, R]) IndexOfRight(right R) int {
	return m.right.find(right)
}

// At returns the entry at position i. It panics if i is outside [0, Len).
func (m *BiMap[L, R]) At(i int) (L, R) {
	e := m.slots.at(i)
	return e.left, e.right
}

// Delete removes the entry whose left value is left, shifting every later
// entry down by one position. It reports whether an entry was removed.
func (m *BiMap[L, R]) Delete(left L) bool {
	i := m.left.remove(left)
	if i < 0 {
		return false
	}
	m.right.unlink(i)
	m.removeSlot(i)
	return true
}

// DeleteRight removes the entry whose right value is right, shifting
// every later entry down by one position. It reports whether an entry was
// removed.
func (m *BiMap[L, R]) DeleteRight(right R) bool {
	i := m.right.remove(right)
	if i < 0 {
		return false
	}
	m.left.unlink(i)
	m.removeSlot(i)
	return true
}

// RemoveAt removes the entry at position i, shifting every later entry
// down by one. It panics if i is outside [0, Len).
func (m *BiMap[L, R]) RemoveAt(i int) {
	m.slots.check(i)
	m.left.unlink(i)
	m.right.unlink(i)
	m.removeSlot(i)
}

func (m *BiMap[L, R]) removeSlot(i int) {
	m.slots.removeRange(i, 1)
	m.left.shifted(i, 1)
	m.right.shifted(i, 1)
	m.checkInvariants()
}

// Clear removes all entries, retaining the allocated capacity.
func (m *BiMap[L, R]) Clear() {
	m.slots.clear()
	m.left.clear()
	m.right.clear()
}

// All calls yield for each entry in insertion order, stopping early if
// yield returns false. The iteration is a live view; the map must not be
// mutated while All is running.
func (m *BiMap[L, R]) All(yield func(left L, right R) bool) {
	for i := range m.slots.slots {
		if !yield(m.slots.slots[i].left, m.slots.slots[i].right) {
			return
		}
	}
}

// Inverse returns a view of the map with the left and right roles
// swapped. The view shares the map's storage: mutations through either
// are visible to both, and an entry's position is the same in both.
func (m *BiMap[L, R]) Inverse() *Inverse[L, R] {
	return &Inverse[L, R]{m: m}
}

// Inverse is the right-to-left view of a BiMap, as returned by
// BiMap.Inverse. It is a view, not a copy.
type Inverse[L, R comparable] struct {
	m *BiMap[L, R]
}

// Len returns the number of entries.
func (v *Inverse[L, R]) Len() int {
	return v.m.Len()
}

// Add appends a new (left=left, right=right) entry; the argument order is
// the view's, right first.
func (v *Inverse[L, R]) Add(right R, left L) error {
	return v.m.Add(left, right)
}

// Set maps right to left, replacing the left value of an existing entry
// in place. It fails with ErrDuplicateKey if left already belongs to a
// different entry.
func (v *Inverse[L, R]) Set(right R, left L) error {
	return v.m.setLeft(right, left)
}

// Get retrieves the left value paired with right, returning ok=false if
// right is not present.
func (v *Inverse[L, R]) Get(right R) (L, bool) {
	return v.m.GetLeft(right)
}

// Has reports whether right is present.
func (v *Inverse[L, R]) Has(right R) bool {
	return v.m.HasRight(right)
}

// IndexOf returns the position of the entry whose right value is right,
// or -1 if right is not present.
func (v *Inverse[L, R]) IndexOf(right R) int {
	return v.m.IndexOfRight(right)
}

// At returns the entry at position i in view order, right first. It
// panics if i is outside [0, Len).
func (v *Inverse[L, R]) At(i int) (R, L) {
	l, r := v.m.At(i)
	return r, l
}

// Delete removes the entry whose right value is right. It reports whether
// an entry was removed.
func (v *Inverse[L, R]) Delete(right R) bool {
	return v.m.DeleteRight(right)
}

// RemoveAt removes the entry at position i. It panics if i is outside
// [0, Len).
func (v *Inverse[L, R]) RemoveAt(i int) {
	v.m.RemoveAt(i)
}

// All calls yield for each entry in insertion order, right first.
func (v *Inverse[L, R]) All(yield func(right R, left L) bool) {
	for i := range v.m.slots.slots {
		if !yield(v.m.slots.slots[i].right, v.m.slots.slots[i].left) {
			return
		}
	}
}

// Inverse returns the underlying BiMap, undoing the view.
func (v *Inverse[L, R]) Inverse() *BiMap[L, R] {
	return v.m
}

func (m *BiMap[L, R]) checkInvariants() {
	if invariants {
		m.left.validate(m.slots.len())
		m.right.validate(m.slots.len())
		for i := range m.slots.slots {
			if j := m.left.find(m.slots.slots[i].left); j != i {
				panic(errors.AssertionFailedf(
					"indexed: left key at position %d found at %d", i, j))
			}
			if j := m.right.find(m.slots.slots[i].right); j != i {
				panic(errors.AssertionFailedf(
					"indexed: right key at position %d found at %d", i, j))
			}
		}
	}
}
