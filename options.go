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

import "hash/maphash"

// config holds the hashing and equality policy for one key type. The
// default policy hashes with hash/maphash.Comparable under a random
// per-collection seed and compares with ==.
type config[K comparable] struct {
	hash  func(K) uint64
	equal func(K, K) bool
}

func defaultConfig[K comparable]() config[K] {
	seed := maphash.MakeSeed()
	return config[K]{
		hash:  func(key K) uint64 { return maphash.Comparable(seed, key) },
		equal: func(a, b K) bool { return a == b },
	}
}

func (c *config[K]) apply(options []Option[K]) {
	for _, op := range options {
		op.apply(c)
	}
}

// Option configures the hashing and equality policy of a Map, Set, or one
// side of a BiMap at construction time.
type Option[K comparable] interface {
	apply(c *config[K])
}

type hashOption[K comparable] struct {
	hash func(K) uint64
}

func (op hashOption[K]) apply(c *config[K]) {
	c.hash = op.hash
}

// WithHash is an option to specify the hash function for keys of type K.
// Keys that are equal under the equality function must hash identically.
func WithHash[K comparable](hash func(K) uint64) Option[K] {
	return hashOption[K]{hash}
}

type equalOption[K comparable] struct {
	equal func(K, K) bool
}

func (op equalOption[K]) apply(c *config[K]) {
	c.equal = op.equal
}

// WithEqual is an option to specify the equality function for keys of
// type K. Equality, not hash equality, decides whether two keys are the
// same; the hash only narrows the search. Supplying WithEqual usually
// requires a matching WithHash so that equal keys share a hash.
func WithEqual[K comparable](equal func(K, K) bool) Option[K] {
	return equalOption[K]{equal}
}

// BiMapOption configures the hashing and equality policy of one side of a
// BiMap at construction time.
type BiMapOption[L, R comparable] interface {
	apply(left *config[L], right *config[R])
}

type leftOption[L, R comparable] struct {
	op Option[L]
}

func (op leftOption[L, R]) apply(left *config[L], right *config[R]) {
	op.op.apply(left)
}

// WithLeft applies an Option to the left-key side of a BiMap.
func WithLeft[L, R comparable](op Option[L]) BiMapOption[L, R] {
	return leftOption[L, R]{op}
}

type rightOption[L, R comparable] struct {
	op Option[R]
}

func (op rightOption[L, R]) apply(left *config[L], right *config[R]) {
	op.op.apply(right)
}

// WithRight applies an Option to the right-key side of a BiMap.
func WithRight[L, R comparable](op Option[R]) BiMapOption[L, R] {
	return rightOption[L, R]{op}
}
