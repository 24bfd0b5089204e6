package collections

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-collections/compare"
)

// This file holds the type-preserving stages. Each one captures its upstream
// and parameters only; anything that changes while iterating is declared
// inside the returned iter.Seq so that every pass starts fresh.

// Filter returns a stage keeping the elements for which fn holds.
func (s *Sequence[T]) Filter(fn func(T) bool) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		for item := range s.seq {
			if fn(item) && !yield(item) {
				return
			}
		}
	}, UnknownSize)
}

// FilterIndexed is Filter with the upstream index of each element.
func (s *Sequence[T]) FilterIndexed(fn func(T, int) bool) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		i := 0
		for item := range s.seq {
			keep := fn(item, i)
			i++
			if keep && !yield(item) {
				return
			}
		}
	}, UnknownSize)
}

// Reject returns a stage dropping the elements for which fn holds.
func (s *Sequence[T]) Reject(fn func(T) bool) *Sequence[T] {
	return s.Filter(func(item T) bool { return !fn(item) })
}

// Take returns a stage yielding at most the first n elements. The upstream is
// not pulled past the n-th element, so Take bounds infinite sequences.
// It panics with an ErrInvalidArgument error when n is negative.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	ensureNonNegative("take count", n)
	size := func() int {
		if up := s.Size(); up >= 0 {
			return min(up, n)
		}
		return UnknownSize
	}
	return newSizedStage(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for item := range s.seq {
			if !yield(item) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}, size)
}

// Drop returns a stage skipping the first n elements.
// It panics with an ErrInvalidArgument error when n is negative.
func (s *Sequence[T]) Drop(n int) *Sequence[T] {
	ensureNonNegative("drop count", n)
	size := func() int {
		if up := s.Size(); up >= 0 {
			return max(up-n, 0)
		}
		return UnknownSize
	}
	return newSizedStage(func(yield func(T) bool) {
		dropped := 0
		for item := range s.seq {
			if dropped < n {
				dropped++
				continue
			}
			if !yield(item) {
				return
			}
		}
	}, size)
}

// TakeWhile returns a stage yielding elements until the first one for which
// fn fails. Nothing after that element is yielded or pulled.
func (s *Sequence[T]) TakeWhile(fn func(T) bool) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		for item := range s.seq {
			if !fn(item) || !yield(item) {
				return
			}
		}
	}, UnknownSize)
}

// DropWhile returns a stage skipping elements until the first one for which
// fn fails, then yielding that element and everything after it.
func (s *Sequence[T]) DropWhile(fn func(T) bool) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		dropping := true
		for item := range s.seq {
			if dropping && fn(item) {
				continue
			}
			dropping = false
			if !yield(item) {
				return
			}
		}
	}, UnknownSize)
}

// Portion returns the elements at positions [start, endExclusive).
// It panics with an ErrInvalidArgument error when either bound is negative or
// endExclusive < start.
func (s *Sequence[T]) Portion(start, endExclusive int) *Sequence[T] {
	ensureNonNegative("start", start)
	ensureNonNegative("end", endExclusive)
	ensureNonNegative("portion length", endExclusive-start)
	return s.Drop(start).Take(endExclusive - start)
}

// Append returns a stage yielding the elements of s followed by items.
func (s *Sequence[T]) Append(items ...T) *Sequence[T] {
	return s.AppendAll(Of(items...))
}

// AppendAll returns a stage yielding the elements of s followed by those of
// other. The size is known when both sizes are.
func (s *Sequence[T]) AppendAll(other Iterable[T]) *Sequence[T] {
	size := func() int {
		if a, b := s.Size(), other.Size(); a >= 0 && b >= 0 {
			return a + b
		}
		return UnknownSize
	}
	return newSizedStage(func(yield func(T) bool) {
		for item := range s.seq {
			if !yield(item) {
				return
			}
		}
		for item := range other.Values() {
			if !yield(item) {
				return
			}
		}
	}, size)
}

// Slice returns a stage yielding the elements at the given 0-based positions,
// in the order the positions are given. Positions past the end, and negative
// ones, are skipped.
//
// The upstream is iterated once per pass and buffered up to the largest
// position requested so far, so positions may repeat or go backwards, and an
// infinite upstream is only pulled as far as needed.
//
//	seq.Slice(collections.RangeTo(2, 4)) // elements 2, 3 and 4
func (s *Sequence[T]) Slice(indices Iterable[int]) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		next, stop := iter.Pull(s.seq)
		defer stop()

		var buf []T
		exhausted := false
		for idx := range indices.Values() {
			if idx < 0 {
				continue
			}
			for !exhausted && len(buf) <= idx {
				item, ok := next()
				if !ok {
					exhausted = true
					break
				}
				buf = append(buf, item)
			}
			if idx < len(buf) && !yield(buf[idx]) {
				return
			}
		}
	}, UnknownSize)
}

// SortedWith consumes s immediately and returns a Sequence over its elements
// stably sorted by c. The result has a known size.
func (s *Sequence[T]) SortedWith(c *compare.Comparator[T]) *Sequence[T] {
	items := s.ToSlice()
	slices.SortStableFunc(items, c.Compare)
	return FromSlice(items)
}

// SortedWithDescending is SortedWith in the reverse order of c.
func (s *Sequence[T]) SortedWithDescending(c *compare.Comparator[T]) *Sequence[T] {
	return s.SortedWith(c.Reversed())
}
