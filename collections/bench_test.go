package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/compare"
)

// makeInts creates an ArrayList[int] of size n for benchmarks.
func makeInts(n int) *collections.ArrayList[int] {
	return collections.ListFrom(collections.RangeTo(1, n).Values())
}

func BenchmarkFilter(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkSequencePipeline(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(l.Sequence().Filter(func(n int) bool { return n%2 == 0 }), func(n int) int {
			return n * 2
		}).Take(100).ToSlice()
	}
}

func BenchmarkFold(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Fold(l, 0, func(acc, n int) int { return acc + n })
	}
}

func BenchmarkSortedWith(b *testing.B) {
	l := makeInts(10_000).Reversed()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.SortedWith(compare.Natural[int]())
	}
}

func BenchmarkGroupBy(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.GroupBy(l, func(n int) int { return n % 10 })
	}
}

func BenchmarkDistinct(b *testing.B) {
	s := collections.Map(makeInts(10_000), func(n int) int { return n % 100 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Distinct(s).Count()
	}
}

func BenchmarkDistinctBytes(b *testing.B) {
	s := collections.Map(makeInts(10_000), func(n int) []byte { return []byte{byte(n % 100)} })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.DistinctBytes(s, func(k []byte) []byte { return k }).Count()
	}
}

func BenchmarkLinkedListGet(b *testing.B) {
	l := collections.LinkedFrom(collections.RangeTo(1, 1_000).Values())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(i % 1_000)
	}
}
