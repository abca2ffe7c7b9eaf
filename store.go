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

// store is the dense, insertion-ordered backing array shared by the
// collection types. Live entries always occupy positions [0, len): removal
// shifts every subsequent entry down by one, so a position handed out by
// append stays valid until an earlier entry is removed. The hash indexes
// layered on top are repointed by their owner after every such shift.
type store[E any] struct {
	slots []E
}

func (s *store[E]) init(capacity int) {
	if capacity > 0 {
		s.slots = make([]E, 0, capacity)
	}
}

func (s *store[E]) len() int {
	return len(s.slots)
}

// append adds an entry at the end and returns its position.
func (s *store[E]) append(e E) int {
	s.slots = append(s.slots, e)
	return len(s.slots) - 1
}

// at returns a pointer to the entry at position i, panicking if i is
// outside [0, len). Out-of-range access is a programming error and is
// never clamped.
func (s *store[E]) at(i int) *E {
	s.check(i)
	return &s.slots[i]
}

func (s *store[E]) check(i int) {
	if i < 0 || i >= len(s.slots) {
		panic(errors.Newf("indexed: position %d out of range [0, %d)", i, len(s.slots)))
	}
}

func (s *store[E]) checkRange(i, n int) {
	if i < 0 || n < 0 || i+n > len(s.slots) {
		panic(errors.Newf("indexed: range [%d, %d) out of range [0, %d)", i, i+n, len(s.slots)))
	}
}

// removeRange removes the n entries starting at position i, shifting every
// later entry down by n. The freed tail is zeroed so removed entries do
// not pin referenced memory.
func (s *store[E]) removeRange(i, n int) {
	s.checkRange(i, n)
	copy(s.slots[i:], s.slots[i+n:])
	var zero E
	for j := len(s.slots) - n; j < len(s.slots); j++ {
		s.slots[j] = zero
	}
	s.slots = s.slots[:len(s.slots)-n]
}

// clear removes all entries while retaining the allocated capacity.
func (s *store[E]) clear() {
	var zero E
	for i := range s.slots {
		s.slots[i] = zero
	}
	s.slots = s.slots[:0]
}
