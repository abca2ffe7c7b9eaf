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
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
)

func BenchmarkMapGetHit(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetHit[string], genKeys[string]))
	})
	b.Run("impl=indexedMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkIndexedMapGetHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkIndexedMapGetHit[string], genKeys[string]))
	})
}

func BenchmarkMapGetMiss(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetMiss[string], genKeys[string]))
	})
	b.Run("impl=indexedMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkIndexedMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkIndexedMapGetMiss[string], genKeys[string]))
	})
}

func BenchmarkMapPutGrow(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapPutGrow[string], genKeys[string]))
	})
	b.Run("impl=indexedMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkIndexedMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkIndexedMapPutGrow[string], genKeys[string]))
	})
}

func BenchmarkMapIter(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapIter[int64], genKeys[int64]))
	})
	b.Run("impl=indexedMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkIndexedMapIter[int64], genKeys[int64]))
	})
}

func BenchmarkMapRemoveAt(b *testing.B) {
	b.Run("impl=indexedMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkIndexedMapRemoveAt[int64], genKeys[int64]))
	})
}

type benchTypes interface {
	int64 | string
}

func benchSizes[T benchTypes](
	f func(b *testing.B, n int, genKeys func(start, end int) []T), genKeys func(start, end int) []T,
) func(*testing.B) {
	var cases = []int{16, 128, 1024, 8192, 1 << 16}

	return func(b *testing.B) {
		for _, n := range cases {
			b.Run("len="+strconv.Itoa(n), func(b *testing.B) { f(b, n, genKeys) })
		}
	}
}

func genKeys[T benchTypes](start, end int) []T {
	keys := make([]T, end-start)
	for i := range keys {
		switch p := any(&keys[i]).(type) {
		case *int64:
			*p = int64(start + i)
		case *string:
			*p = strconv.Itoa(start + i)
		}
	}
	return keys
}

func benchmarkRuntimeMapGetHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%n]]
	}
	counters.Stop()
}

func benchmarkIndexedMapGetHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := NewMap[T, T](n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Set(k, k)
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(keys[i%n])
	}
	counters.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapGetMiss[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m[k] = k
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[miss[i%n]]
	}
	counters.Stop()
}

func benchmarkIndexedMapGetMiss[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := NewMap[T, T](0)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m.Set(k, k)
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(miss[i%n])
	}
	counters.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapPutGrow[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	counters := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[T]T)
		for _, k := range keys {
			m[k] = k
		}
	}
	counters.Stop()
}

func benchmarkIndexedMapPutGrow[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	counters := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewMap[T, T](0)
		for _, k := range keys {
			m.Set(k, k)
		}
	}
	counters.Stop()
}

func benchmarkRuntimeMapIter[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		for k, v := range m {
			tmp += k + v
		}
	}
	counters.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, tmp)
}

func benchmarkIndexedMapIter[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := NewMap[T, T](n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Set(k, k)
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		m.All(func(k, v T) bool {
			tmp += k + v
			return true
		})
	}
	counters.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, tmp)
}

// benchmarkIndexedMapRemoveAt measures the shift-down removal cost, the
// deliberate O(n) in this design. Each iteration refills the map once it
// drains.
func benchmarkIndexedMapRemoveAt[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	m := NewMap[T, T](n)
	for _, k := range keys {
		m.Set(k, k)
	}
	counters := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Len() == 0 {
			b.StopTimer()
			for _, k := range keys {
				m.Set(k, k)
			}
			b.StartTimer()
		}
		m.RemoveAt(m.Len() / 2)
	}
	counters.Stop()
}
