package collections

import (
	"iter"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Iterator is a single-pass source of elements: Next returns the next element
// and true, or the zero value and false once exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// IteratorFunc adapts a function to the [Iterator] interface. The next
// function returned by [iter.Pull] is one.
type IteratorFunc[T any] func() (T, bool)

// Next calls f.
func (f IteratorFunc[T]) Next() (T, bool) { return f() }

// FromIterator returns a Sequence draining it. Because an Iterator cannot be
// restarted, the Sequence is once-constrained: iterating it a second time
// panics with an ErrIllegalState error. Its size is unknown.
func FromIterator[T any](it Iterator[T]) *Sequence[T] {
	return constrainOnce(func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}, func() int { return UnknownSize })
}

// FromPull is FromIterator for a bare next function.
func FromPull[T any](next func() (T, bool)) *Sequence[T] {
	return FromIterator[T](IteratorFunc[T](next))
}

// ConstrainedOnce returns a Sequence with the same elements and size as s
// that may be iterated only once. A second iteration panics with an
// ErrIllegalState error before pulling anything from s.
func (s *Sequence[T]) ConstrainedOnce() *Sequence[T] {
	return constrainOnce(s.seq, s.size)
}

func constrainOnce[T any](seq iter.Seq[T], size func() int) *Sequence[T] {
	var iterated atomic.Bool
	return newSizedStage(func(yield func(T) bool) {
		if !iterated.CompareAndSwap(false, true) {
			panic(errors.WithHint(
				illegalStatef("attempted to iterate a once-constrained sequence more than once"),
				"materialize it with ToList before iterating it again",
			))
		}
		for item := range seq {
			if !yield(item) {
				return
			}
		}
	}, size)
}
