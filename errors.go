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

var (
	// ErrDuplicateKey is returned by Add and AddRange when a key is
	// already present, and by BiMap.Set when the new value belongs to a
	// different entry. The failed operation has no effect.
	ErrDuplicateKey = errors.New("indexed: duplicate key")

	// ErrKeyNotFound is returned by the Lookup variants when the key is
	// absent. The Get variants report absence with a boolean instead.
	ErrKeyNotFound = errors.New("indexed: key not found")
)

func duplicateKeyError(key any) error {
	return errors.Mark(errors.Newf("indexed: duplicate key %v", key), ErrDuplicateKey)
}

func keyNotFoundError(key any) error {
	return errors.Mark(errors.Newf("indexed: key %v not found", key), ErrKeyNotFound)
}
