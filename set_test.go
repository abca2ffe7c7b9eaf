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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	const count = 100

	s := NewSet[int](0)
	require.EqualValues(t, 0, s.Len())

	for i := 0; i < count; i++ {
		require.False(t, s.Contains(-i-1))
		require.EqualValues(t, i, s.Add(i*7))
		require.EqualValues(t, i+1, s.Len())
		require.True(t, s.Contains(i*7))
		require.EqualValues(t, i, s.IndexOf(i*7))
		require.EqualValues(t, i*7, s.At(i))
	}
}

func TestSetAddExisting(t *testing.T) {
	s := NewSet[string](0)
	require.EqualValues(t, 0, s.Add("a"))
	require.EqualValues(t, 1, s.Add("b"))

	// Adding a present element returns -1 and changes nothing.
	require.EqualValues(t, -1, s.Add("a"))
	require.EqualValues(t, 2, s.Len())
	require.EqualValues(t, 0, s.IndexOf("a"))
	require.Equal(t, []string{"a", "b"}, s.Elements())
}

func TestSetAddSlice(t *testing.T) {
	s := NewSet[int](0)
	require.EqualValues(t, 3, s.AddSlice([]int{1, 2, 3}))
	require.EqualValues(t, 1, s.AddSlice([]int{2, 3, 4}))
	require.EqualValues(t, 4, s.Len())
	require.Equal(t, []int{1, 2, 3, 4}, s.Elements())
}

func TestSetRemove(t *testing.T) {
	s := NewSet[int](0)
	for i := 0; i < 10; i++ {
		s.Add(i)
	}

	require.True(t, s.Remove(3))
	require.False(t, s.Remove(3))
	require.EqualValues(t, 9, s.Len())
	require.Equal(t, []int{0, 1, 2, 4, 5, 6, 7, 8, 9}, s.Elements())
	require.EqualValues(t, 3, s.IndexOf(4))

	s.RemoveAt(0)
	require.Equal(t, []int{1, 2, 4, 5, 6, 7, 8, 9}, s.Elements())
	for i, k := range s.Elements() {
		require.EqualValues(t, i, s.IndexOf(k))
	}

	require.Panics(t, func() { s.RemoveAt(s.Len()) })
	require.Panics(t, func() { s.At(-1) })
}

func TestSetClear(t *testing.T) {
	s := NewSet[int](0)
	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	s.Clear()
	require.EqualValues(t, 0, s.Len())
	require.False(t, s.Contains(0))
	s.All(func(k int) bool {
		require.Fail(t, "should not iterate")
		return true
	})
	require.EqualValues(t, 0, s.Add(42))
}

func TestSetRandom(t *testing.T) {
	test := func(t *testing.T, s *Set[int]) {
		rng := rand.New(rand.NewSource(4))
		model := make(map[int]bool)
		var order []int

		remove := func(k int) {
			delete(model, k)
			for j, key := range order {
				if key == k {
					order = append(order[:j], order[j+1:]...)
					break
				}
			}
		}

		for i := 0; i < 10000; i++ {
			switch p := rng.Float64(); {
			case p < 0.50: // 50% adds
				k := rng.Intn(1000)
				idx := s.Add(k)
				if model[k] {
					require.EqualValues(t, -1, idx)
				} else {
					require.EqualValues(t, len(order), idx)
					model[k] = true
					order = append(order, k)
				}
			case p < 0.65: // 15% removes by key
				k := rng.Intn(1000)
				require.Equal(t, model[k], s.Remove(k))
				if model[k] {
					remove(k)
				}
			case p < 0.75: // 10% removes by position
				if s.Len() > 0 {
					j := rng.Intn(s.Len())
					k := s.At(j)
					require.Equal(t, order[j], k)
					s.RemoveAt(j)
					remove(k)
				}
			default: // 25% membership checks
				k := rng.Intn(1000)
				require.Equal(t, model[k], s.Contains(k))
			}
			require.EqualValues(t, len(model), s.Len())
		}

		require.Equal(t, order, s.Elements())
	}

	t.Run("normal", func(t *testing.T) {
		test(t, NewSet[int](0))
	})

	t.Run("degenerate", func(t *testing.T) {
		test(t, NewSet[int](0, WithHash[int](func(int) uint64 { return 0 })))
	})
}
