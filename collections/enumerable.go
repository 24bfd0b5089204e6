package collections

import (
	"iter"

	"github.com/hasbyte1/go-collections/compare"
)

// UnknownSize is the cardinality reported by [Iterable.Size] when the number
// of elements cannot be known without iterating (filters, generators, ...).
const UnknownSize = -1

// Iterable is the minimal capability every container supplies. Everything in
// [Enumerable] is derived from it.
type Iterable[T any] interface {
	// Values returns a sequence over the elements. Ranging over it again
	// restarts from the first element unless the source is single-pass.
	Values() iter.Seq[T]

	// Size returns the exact element count, or UnknownSize.
	Size() int
}

// Enumerable is the interface satisfied by every container in this package:
// [*Sequence], [*ArrayList], [*LinkedList], [*PersistentList] and [*IntRange].
//
// Accept Enumerable in your own functions when you need queries and
// aggregation but not a particular container shape.
type Enumerable[T any] interface {
	Iterable[T]

	AllMatch(fn func(T) bool) bool
	AnyMatch(fn func(T) bool) bool
	NoneMatch(fn func(T) bool) bool

	Count() int
	CountFunc(fn func(T) bool) int
	IsEmpty() bool
	IsNotEmpty() bool

	ElementAt(index int) (T, bool)
	Find(fn func(T) bool) (T, bool)
	FindIndex(fn func(T) bool) int
	FindLast(fn func(T) bool) (T, bool)
	FindLastIndex(fn func(T) bool) int
	First() (T, bool)
	FirstOrError(fn func(T) bool) (T, error)
	Last() (T, bool)
	LastOrError(fn func(T) bool) (T, error)

	ForEach(fn func(T))
	ForEachIndexed(fn func(T, int))

	Reduce(fn func(acc, item T) T) (T, bool)
	ReduceIndexed(fn func(acc, item T, index int) T) (T, bool)
	MinWith(c *compare.Comparator[T]) (T, bool)
	MaxWith(c *compare.Comparator[T]) (T, bool)
	MinOf(fn func(T) float64) (T, bool)
	MaxOf(fn func(T) float64) (T, bool)

	Join(opts ...JoinOption) string
	JoinFunc(fn func(T) string, opts ...JoinOption) string

	ToSlice() []T
	ToList() *ArrayList[T]
	Sequence() *Sequence[T]
}

// enumerable provides the default Enumerable methods for any Iterable. A
// container embeds it and points src at itself; the container may then
// shadow individual methods with faster versions (backward search on lists,
// O(1) counts, ...).
//
// Every method makes at most one pass over src, so the defaults are safe on
// single-pass sources.
type enumerable[T any] struct {
	src Iterable[T]
}

// AllMatch reports whether fn holds for every element. It is true for an
// empty source.
func (e enumerable[T]) AllMatch(fn func(T) bool) bool {
	for item := range e.src.Values() {
		if !fn(item) {
			return false
		}
	}
	return true
}

// AnyMatch reports whether fn holds for at least one element. It is false for
// an empty source.
func (e enumerable[T]) AnyMatch(fn func(T) bool) bool {
	for item := range e.src.Values() {
		if fn(item) {
			return true
		}
	}
	return false
}

// NoneMatch reports whether fn holds for no element.
func (e enumerable[T]) NoneMatch(fn func(T) bool) bool {
	return !e.AnyMatch(fn)
}

// Count iterates the source and returns the number of elements.
func (e enumerable[T]) Count() int {
	n := 0
	for range e.src.Values() {
		n++
	}
	return n
}

// CountFunc returns the number of elements for which fn holds.
func (e enumerable[T]) CountFunc(fn func(T) bool) int {
	n := 0
	for item := range e.src.Values() {
		if fn(item) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the source yields no element.
func (e enumerable[T]) IsEmpty() bool {
	for range e.src.Values() {
		return false
	}
	return true
}

// IsNotEmpty reports whether the source yields at least one element.
func (e enumerable[T]) IsNotEmpty() bool { return !e.IsEmpty() }

// ElementAt returns the element at index, or false when index is negative or
// past the end.
func (e enumerable[T]) ElementAt(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	i := 0
	for item := range e.src.Values() {
		if i == index {
			return item, true
		}
		i++
	}
	return zero, false
}

// Find returns the first element for which fn holds.
func (e enumerable[T]) Find(fn func(T) bool) (T, bool) {
	for item := range e.src.Values() {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element for which fn holds, or -1.
func (e enumerable[T]) FindIndex(fn func(T) bool) int {
	i := 0
	for item := range e.src.Values() {
		if fn(item) {
			return i
		}
		i++
	}
	return -1
}

// FindLast returns the last element for which fn holds.
//
// The default cannot assume backward iteration or random access, so it always
// scans the whole source.
func (e enumerable[T]) FindLast(fn func(T) bool) (T, bool) {
	var found T
	matched := false
	for item := range e.src.Values() {
		if fn(item) {
			found, matched = item, true
		}
	}
	return found, matched
}

// FindLastIndex returns the index of the last element for which fn holds, or
// -1. It always scans the whole source.
func (e enumerable[T]) FindLastIndex(fn func(T) bool) int {
	last, i := -1, 0
	for item := range e.src.Values() {
		if fn(item) {
			last = i
		}
		i++
	}
	return last
}

// First returns the first element, or false when the source is empty.
func (e enumerable[T]) First() (T, bool) {
	for item := range e.src.Values() {
		return item, true
	}
	var zero T
	return zero, false
}

// FirstOrError returns the first element for which fn holds, or an
// ErrNoSuchElement error.
func (e enumerable[T]) FirstOrError(fn func(T) bool) (T, error) {
	item, ok := e.Find(fn)
	if !ok {
		return item, ErrNoSuchElement
	}
	return item, nil
}

// Last returns the last element, or false when the source is empty. It always
// scans the whole source.
func (e enumerable[T]) Last() (T, bool) {
	var last T
	found := false
	for item := range e.src.Values() {
		last, found = item, true
	}
	return last, found
}

// LastOrError returns the last element for which fn holds, or an
// ErrNoSuchElement error.
func (e enumerable[T]) LastOrError(fn func(T) bool) (T, error) {
	item, ok := e.FindLast(fn)
	if !ok {
		return item, ErrNoSuchElement
	}
	return item, nil
}

// ForEach calls fn for every element.
func (e enumerable[T]) ForEach(fn func(T)) {
	for item := range e.src.Values() {
		fn(item)
	}
}

// ForEachIndexed calls fn(item, index) for every element.
func (e enumerable[T]) ForEachIndexed(fn func(T, int)) {
	i := 0
	for item := range e.src.Values() {
		fn(item, i)
		i++
	}
}

// Reduce folds the elements from the left, seeding the accumulator with the
// first element. It returns false for an empty source.
func (e enumerable[T]) Reduce(fn func(acc, item T) T) (T, bool) {
	return e.ReduceIndexed(func(acc, item T, _ int) T { return fn(acc, item) })
}

// ReduceIndexed is Reduce with the index of the element being folded in
// (the first call receives index 1).
func (e enumerable[T]) ReduceIndexed(fn func(acc, item T, index int) T) (T, bool) {
	var acc T
	i := 0
	for item := range e.src.Values() {
		if i == 0 {
			acc = item
		} else {
			acc = fn(acc, item, i)
		}
		i++
	}
	return acc, i > 0
}

// MinWith returns the smallest element according to c. Ties keep the first
// one encountered.
func (e enumerable[T]) MinWith(c *compare.Comparator[T]) (T, bool) {
	return e.extreme(func(candidate, best T) bool { return c.Compare(candidate, best) < 0 })
}

// MaxWith returns the largest element according to c. Ties keep the first
// one encountered.
func (e enumerable[T]) MaxWith(c *compare.Comparator[T]) (T, bool) {
	return e.extreme(func(candidate, best T) bool { return c.Compare(candidate, best) > 0 })
}

// MinOf returns the element with the smallest value extracted by fn.
func (e enumerable[T]) MinOf(fn func(T) float64) (T, bool) {
	return extremeBy(e.src, fn, func(candidate, best float64) bool { return candidate < best })
}

// MaxOf returns the element with the largest value extracted by fn.
func (e enumerable[T]) MaxOf(fn func(T) float64) (T, bool) {
	return extremeBy(e.src, fn, func(candidate, best float64) bool { return candidate > best })
}

func (e enumerable[T]) extreme(better func(candidate, best T) bool) (T, bool) {
	var best T
	found := false
	for item := range e.src.Values() {
		if !found || better(item, best) {
			best, found = item, true
		}
	}
	return best, found
}

// extremeBy selects by a derived key, computing each key once.
func extremeBy[T, K any](src Iterable[T], key func(T) K, better func(candidate, best K) bool) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for item := range src.Values() {
		k := key(item)
		if !found || better(k, bestKey) {
			best, bestKey, found = item, k, true
		}
	}
	return best, found
}

// ToSlice collects the elements into a new slice.
func (e enumerable[T]) ToSlice() []T {
	out := make([]T, 0, max(e.src.Size(), 0))
	for item := range e.src.Values() {
		out = append(out, item)
	}
	return out
}

// ToList collects the elements into a new [ArrayList].
func (e enumerable[T]) ToList() *ArrayList[T] {
	return newArrayList(e.ToSlice())
}

// Sequence returns a lazy [Sequence] view over the source.
func (e enumerable[T]) Sequence() *Sequence[T] {
	return From(e.src)
}
