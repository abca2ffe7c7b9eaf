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

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

const (
	// minBuckets is the smallest bucket array ever allocated. Always a
	// power of two so bucket selection is a mask, never a modulo.
	minBuckets = 8

	// An index grows when used/buckets would exceed maxLoadNum/maxLoadDen.
	maxLoadNum = 7
	maxLoadDen = 8
)

// index maps keys to slot positions in the dense store. It is a bucketed
// hash table that stores only slot numbers: buckets[hash(key)&mask] holds
// the first slot of a collision chain and next[slot] the following one,
// with -1 terminating the chain. Keys themselves are read back through the
// keyAt callback, so the index never duplicates key storage and several
// indexes can cover different fields of the same store.
//
// Within a chain the most recently inserted slot comes first. rebuild
// re-links slots in ascending position order, which produces the same
// most-recent-first ordering, so chain order is deterministic for a given
// sequence of operations.
type index[K comparable] struct {
	hash  func(K) uint64
	equal func(K, K) bool
	keyAt func(int) K

	// buckets is always a power of two in length; -1 marks an empty
	// bucket. next runs parallel to the store's slots.
	buckets []int32
	next    []int32
	mask    uint64
}

func (x *index[K]) init(cfg config[K], keyAt func(int) K, capacity int) {
	x.hash = cfg.hash
	x.equal = cfg.equal
	x.keyAt = keyAt

	size := minBuckets
	if capacity > 0 {
		// The smallest power of two that holds capacity entries without
		// crossing the load factor.
		need := (capacity*maxLoadDen + maxLoadNum - 1) / maxLoadNum
		if need > size {
			size = 1 << bits.Len(uint(need-1))
		}
		x.next = make([]int32, 0, capacity)
	}
	x.buckets = newBuckets(size)
	x.mask = uint64(size - 1)
}

func newBuckets(size int) []int32 {
	b := make([]int32, size)
	for i := range b {
		b[i] = -1
	}
	return b
}

// find returns the slot holding key, or -1 if the key is absent. Equality
// is decided by the configured equal function; the hash only selects the
// bucket.
func (x *index[K]) find(key K) int {
	b := x.hash(key) & x.mask
	for i := x.buckets[b]; i >= 0; i = x.next[i] {
		if x.equal(key, x.keyAt(int(i))) {
			return int(i)
		}
	}
	return -1
}

// insert records that the freshly appended slot holds key. slot must equal
// the number of slots already indexed; the caller has verified the key is
// absent. The index grows before linking so the new entry lands in the
// correctly sized bucket array.
func (x *index[K]) insert(key K, slot int) {
	if slot != len(x.next) {
		panic(errors.AssertionFailedf("indexed: insert of slot %d, expected %d", slot, len(x.next)))
	}
	if (slot+1)*maxLoadDen > len(x.buckets)*maxLoadNum {
		x.rebuild(2 * len(x.buckets))
	}
	b := x.hash(key) & x.mask
	x.next = append(x.next, x.buckets[b])
	x.buckets[b] = int32(slot)
}

// remove unlinks the slot holding key from its chain and returns its
// position, or -1 if the key is absent. The slot itself is untouched; the
// caller compacts the store and then calls shifted.
func (x *index[K]) remove(key K) int {
	b := x.hash(key) & x.mask
	prev := int32(-1)
	for i := x.buckets[b]; i >= 0; prev, i = i, x.next[i] {
		if x.equal(key, x.keyAt(int(i))) {
			if prev < 0 {
				x.buckets[b] = x.next[i]
			} else {
				x.next[prev] = x.next[i]
			}
			return int(i)
		}
	}
	return -1
}

// unlink removes the given slot from its chain, located by the key it
// currently holds. The slot must be present in the index.
func (x *index[K]) unlink(slot int) {
	b := x.hash(x.keyAt(slot)) & x.mask
	if x.buckets[b] == int32(slot) {
		x.buckets[b] = x.next[slot]
		return
	}
	for i := x.buckets[b]; i >= 0; i = x.next[i] {
		if x.next[i] == int32(slot) {
			x.next[i] = x.next[slot]
			return
		}
	}
	panic(errors.AssertionFailedf("indexed: slot %d not reachable from bucket %d", slot, b))
}

// link re-inserts an existing slot under key, used when a facade replaces
// the keyed field of a slot in place. Unlike insert it never grows: the
// number of indexed entries is unchanged.
func (x *index[K]) link(key K, slot int) {
	b := x.hash(key) & x.mask
	x.next[slot] = x.buckets[b]
	x.buckets[b] = int32(slot)
}

// shifted repoints the index after the store compacted away the n slots
// starting at start: every stored slot number >= start+n moves down by n.
// The removed slots must already be unlinked. Repointing touches every
// bucket and chain entry but computes no hashes, which is what makes it
// cheaper than a rebuild.
func (x *index[K]) shifted(start, n int) {
	x.next = append(x.next[:start], x.next[start+n:]...)
	lim := int32(start + n)
	for b, i := range x.buckets {
		if i >= lim {
			x.buckets[b] = i - int32(n)
		}
	}
	for j, i := range x.next {
		if i >= lim {
			x.next[j] = i - int32(n)
		}
	}
}

// rebuild reallocates the bucket array at the given size and re-links
// every indexed slot. size must be a power of two.
func (x *index[K]) rebuild(size int) {
	if size < minBuckets {
		size = minBuckets
	}
	x.buckets = newBuckets(size)
	x.mask = uint64(size - 1)
	for i := range x.next {
		b := x.hash(x.keyAt(i)) & x.mask
		x.next[i] = x.buckets[b]
		x.buckets[b] = int32(i)
	}
}

// clear empties the index while retaining the bucket array.
func (x *index[K]) clear() {
	for b := range x.buckets {
		x.buckets[b] = -1
	}
	x.next = x.next[:0]
}

// validate checks that every one of the n store slots is reachable from
// exactly one bucket, that each slot hangs off the bucket its key hashes
// to, and that no chain contains a stale slot number. Called from the
// facades' checkInvariants, which compile to no-ops unless the invariants
// build tag is set.
func (x *index[K]) validate(n int) {
	if len(x.next) != n {
		panic(errors.AssertionFailedf("indexed: %d chain entries for %d slots", len(x.next), n))
	}
	seen := make([]bool, n)
	total := 0
	for b, head := range x.buckets {
		for i := head; i >= 0; i = x.next[i] {
			if int(i) >= n {
				panic(errors.AssertionFailedf("indexed: bucket %d references slot %d of %d", b, i, n))
			}
			if seen[i] {
				panic(errors.AssertionFailedf("indexed: slot %d reachable twice", i))
			}
			seen[i] = true
			total++
			if x.hash(x.keyAt(int(i)))&x.mask != uint64(b) {
				panic(errors.AssertionFailedf("indexed: slot %d linked to wrong bucket %d", i, b))
			}
		}
	}
	if total != n {
		panic(errors.AssertionFailedf("indexed: %d of %d slots reachable", total, n))
	}
}
