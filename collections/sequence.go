package collections

import (
	"iter"
	"slices"
)

// Sequence is a lazily evaluated pipeline of transformation stages.
//
// Every combinator (Filter, Take, [Map], [Chunked], ...) returns a new
// Sequence that wraps its upstream; building a pipeline never pulls an
// element. Work happens only when a terminal operation (ToList, Count, Find,
// a range loop over Values, ...) iterates the last stage, and then one
// element at a time: each stage pulls from its upstream only what its
// consumer asked for, and a consumer that stops early stops the whole chain.
//
//	primes := collections.Generate(2, func(n int) (int, bool) { return n + 1, true }).
//	    Filter(isPrime).
//	    Take(5).
//	    ToSlice() // [2 3 5 7 11]
//
// # Cardinality
//
// Size reports the exact number of elements when a stage can deduce it
// without iterating (Of, Map, Take over a sized upstream, ...) and
// [UnknownSize] otherwise (Filter, generators, ...).
//
// # Restartability
//
// A Sequence is re-iterable as long as its source is. Sequences seeded from a
// single-pass [Iterator], and those returned by ConstrainedOnce, panic with an
// ErrIllegalState error when iterated a second time.
//
// Stages hold no mutable state of their own: per-iteration state (counters,
// seen-sets, buffers) is allocated when iteration starts, so independent
// iterations of the same pipeline do not interfere.
type Sequence[T any] struct {
	enumerable[T]
	seq  iter.Seq[T]
	size func() int
}

func newStage[T any](seq iter.Seq[T], size int) *Sequence[T] {
	return newSizedStage(seq, func() int { return size })
}

// newSizedStage is newStage for a stage whose cardinality follows a mutable
// upstream; size is evaluated on every Size call.
func newSizedStage[T any](seq iter.Seq[T], size func() int) *Sequence[T] {
	s := &Sequence[T]{seq: seq, size: size}
	s.enumerable = enumerable[T]{src: s}
	return s
}

// valuesOf defers src.Values() until iteration starts, so a view over a
// mutable container sees its contents at that time.
func valuesOf[T any](src Ranger[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range src.Values() {
			if !yield(item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a Sequence over the given elements (copied).
func Of[T any](items ...T) *Sequence[T] {
	return FromSlice(slices.Clone(items))
}

// Empty returns a Sequence with no elements.
func Empty[T any]() *Sequence[T] {
	return newStage(func(func(T) bool) {}, 0)
}

// FromSlice returns a Sequence over items. The slice is not copied; changes
// to it are visible to later iterations.
func FromSlice[T any](items []T) *Sequence[T] {
	return newStage(slices.Values(items), len(items))
}

// From returns a Sequence view of an Iterable. The view reads src when it is
// iterated and reports src.Size() at the time Size is called, so it follows
// later changes to a mutable container. A Sequence passed in is returned
// unchanged.
func From[T any](src Iterable[T]) *Sequence[T] {
	if s, ok := src.(*Sequence[T]); ok {
		return s
	}
	return newSizedStage(valuesOf[T](src), src.Size)
}

// Ranger is any source with a restartable Values iterator. A Ranger that also
// has a Size() int or Len() int method reports its cardinality through it.
type Ranger[T any] interface {
	Values() iter.Seq[T]
}

// FromValues returns a Sequence over src, inferring the size from a Size() or
// Len() method when src has one and using UnknownSize otherwise.
func FromValues[T any](src Ranger[T]) *Sequence[T] {
	return newSizedStage(valuesOf(src), func() int { return sizeOf(src) })
}

func sizeOf(src any) int {
	switch v := src.(type) {
	case interface{ Size() int }:
		return v.Size()
	case interface{ Len() int }:
		return v.Len()
	default:
		return UnknownSize
	}
}

// FromSeq returns a Sequence over seq with unknown size. seq is assumed to be
// restartable; wrap it with ConstrainedOnce when it is not.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	return newStage(seq, UnknownSize)
}

// Generate returns a Sequence that yields seed, then next(seed), then
// next(next(seed)), and so on until next reports false.
//
// The sequence is infinite unless next eventually reports false, and its size
// is always unknown.
//
//	powers := collections.Generate(1, func(n int) (int, bool) { return n * 2, n < 512 })
//	// 1 2 4 ... 1024
func Generate[T any](seed T, next func(T) (T, bool)) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		current := seed
		for {
			if !yield(current) {
				return
			}
			n, ok := next(current)
			if !ok {
				return
			}
			current = n
		}
	}, UnknownSize)
}

// Continually returns an infinite Sequence repeating value. Bound it with
// Take or TakeWhile before using an unbounded terminal operation.
func Continually[T any](value T) *Sequence[T] {
	return ContinuallyFunc(func() T { return value })
}

// ContinuallyFunc returns an infinite Sequence of the values returned by
// successive calls to fn. fn is not called until the sequence is iterated.
func ContinuallyFunc[T any](fn func() T) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		for yield(fn()) {
		}
	}, UnknownSize)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterable
// ─────────────────────────────────────────────────────────────────────────────

// Values returns the pipeline as an iter.Seq. Ranging over it drives the
// whole chain of stages.
func (s *Sequence[T]) Values() iter.Seq[T] { return s.seq }

// Size returns the declared cardinality: the exact element count when it can
// be deduced without iterating, UnknownSize otherwise.
func (s *Sequence[T]) Size() int { return s.size() }

// Sequence returns s.
func (s *Sequence[T]) Sequence() *Sequence[T] { return s }

// ─────────────────────────────────────────────────────────────────────────────
// Terminal conversions
// ─────────────────────────────────────────────────────────────────────────────

// ToLinkedList collects the elements into a new [LinkedList].
func (s *Sequence[T]) ToLinkedList() *LinkedList[T] {
	return LinkedFrom(s.seq)
}

// ToPersistentList collects the elements into a new [PersistentList].
func (s *Sequence[T]) ToPersistentList() *PersistentList[T] {
	return PersistentFrom(s.seq)
}

// ─────────────────────────────────────────────────────────────────────────────
// Side effects
// ─────────────────────────────────────────────────────────────────────────────

// OnEach calls fn for every element right away and returns s, so a pipeline
// can be inspected and then consumed further.
func (s *Sequence[T]) OnEach(fn func(T)) *Sequence[T] {
	s.ForEach(fn)
	return s
}

// OnEachIndexed is OnEach with the element index.
func (s *Sequence[T]) OnEachIndexed(fn func(T, int)) *Sequence[T] {
	s.ForEachIndexed(fn)
	return s
}

// Peek returns a stage that calls fn for each element as it flows through,
// without changing the elements or the size. Unlike OnEach it is lazy.
func (s *Sequence[T]) Peek(fn func(T)) *Sequence[T] {
	return newSizedStage(func(yield func(T) bool) {
		for item := range s.seq {
			fn(item)
			if !yield(item) {
				return
			}
		}
	}, s.size)
}
