package collections

import (
	"iter"
)

// This file contains the stages that change the element type. Go methods
// cannot introduce type parameters, so they are package-level functions
// taking any Iterable and returning a lazy *Sequence:
//
//	names := collections.Map(users.Sequence(), func(u User) string { return u.Name }).ToList()

// Map returns a stage transforming every element with fn. The size is
// preserved.
func Map[T, R any](src Iterable[T], fn func(T) R) *Sequence[R] {
	return newSizedStage(func(yield func(R) bool) {
		for item := range src.Values() {
			if !yield(fn(item)) {
				return
			}
		}
	}, src.Size)
}

// MapIndexed is [Map] with the index of each element.
func MapIndexed[T, R any](src Iterable[T], fn func(T, int) R) *Sequence[R] {
	return newSizedStage(func(yield func(R) bool) {
		i := 0
		for item := range src.Values() {
			if !yield(fn(item, i)) {
				return
			}
			i++
		}
	}, src.Size)
}

// FlatMap returns a stage expanding every element into the sequence returned
// by fn, concatenated in order.
//
//	words := collections.FlatMap(lines, func(l string) iter.Seq[string] {
//	    return slices.Values(strings.Fields(l))
//	})
func FlatMap[T, R any](src Iterable[T], fn func(T) iter.Seq[R]) *Sequence[R] {
	return FlatMapIndexed(src, func(item T, _ int) iter.Seq[R] { return fn(item) })
}

// FlatMapIndexed is [FlatMap] with the index of each element.
func FlatMapIndexed[T, R any](src Iterable[T], fn func(T, int) iter.Seq[R]) *Sequence[R] {
	return newStage(func(yield func(R) bool) {
		i := 0
		for item := range src.Values() {
			for sub := range fn(item, i) {
				if !yield(sub) {
					return
				}
			}
			i++
		}
	}, UnknownSize)
}

// Flatten concatenates a sequence of containers in order.
//
//	collections.Flatten[int](collections.Of(collections.ListOf(1, 2), collections.ListOf(3)))
func Flatten[T any, I Iterable[T]](src Iterable[I]) *Sequence[T] {
	return FlatMap(src, func(inner I) iter.Seq[T] { return inner.Values() })
}

// FlattenSlices concatenates a sequence of slices in order.
func FlattenSlices[T any](src Iterable[[]T]) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		for chunk := range src.Values() {
			for _, item := range chunk {
				if !yield(item) {
					return
				}
			}
		}
	}, UnknownSize)
}

// Chunked returns a stage partitioning the elements into consecutive slices of
// size elements; the last chunk may be shorter. Each chunk is a fresh slice.
// It panics with an ErrInvalidArgument error when size is not positive.
//
//	collections.Chunked(collections.Of(1, 2, 3, 4, 5), 2) // [1 2] [3 4] [5]
func Chunked[T any](src Iterable[T], size int) *Sequence[[]T] {
	ensurePositive("chunk size", size)
	return newStage(func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for item := range src.Values() {
			chunk = append(chunk, item)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}, UnknownSize)
}

// Zip returns a stage pairing the elements of a and b positionally, stopping
// at the end of the shorter one.
func Zip[A, B any](a Iterable[A], b Iterable[B]) *Sequence[Pair[A, B]] {
	return ZipWith(a, b, PairOf[A, B])
}

// ZipWith is [Zip] combining each pair with fn.
func ZipWith[A, B, V any](a Iterable[A], b Iterable[B], fn func(A, B) V) *Sequence[V] {
	return newStage(func(yield func(V) bool) {
		next, stop := iter.Pull(b.Values())
		defer stop()
		for x := range a.Values() {
			y, ok := next()
			if !ok || !yield(fn(x, y)) {
				return
			}
		}
	}, UnknownSize)
}

// Unzip splits a sequence of pairs into two lists, preserving order.
func Unzip[A, B any](src Iterable[Pair[A, B]]) (*ArrayList[A], *ArrayList[B]) {
	firsts, seconds := EmptyList[A](), EmptyList[B]()
	for p := range src.Values() {
		firsts.Add(p.First)
		seconds.Add(p.Second)
	}
	return firsts, seconds
}
