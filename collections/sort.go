package collections

import (
	"cmp"

	"github.com/hasbyte1/go-collections/compare"
)

// Sorting cannot be lazy: every function here consumes src when it is called
// and returns a Sequence over the sorted elements, with a known size. Sorts
// are stable.

// Sorted returns the elements in natural order.
func Sorted[T cmp.Ordered](src Iterable[T]) *Sequence[T] {
	return From(src).SortedWith(compare.Natural[T]())
}

// SortedDescending returns the elements in reverse natural order.
func SortedDescending[T cmp.Ordered](src Iterable[T]) *Sequence[T] {
	return From(src).SortedWith(compare.ReverseOrder[T]())
}

// SortedBy returns the elements ordered by the key extracted by key.
func SortedBy[T any, K cmp.Ordered](src Iterable[T], key func(T) K) *Sequence[T] {
	return From(src).SortedWith(compare.Comparing(key))
}

// SortedByDescending returns the elements in descending order of key.
func SortedByDescending[T any, K cmp.Ordered](src Iterable[T], key func(T) K) *Sequence[T] {
	return From(src).SortedWith(compare.Comparing(key).Reversed())
}
