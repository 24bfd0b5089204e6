package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-collections/compare"
)

// ArrayList is a mutable, slice-backed list.
//
// Mutating methods (Add, Set, RemoveAt, SortWith, ...) change the receiver.
// Transformation methods (Filter, Take, Reversed, SortedWith, ...) return a
// *new* ArrayList and leave the receiver unchanged. Iterating a list while
// mutating it is undefined.
//
// # Creating a list
//
//	l := collections.ListOf(1, 2, 3)
//	l := collections.ListFrom(slices.Values(items))
//	l := collections.EmptyList[string]()
//
// Always use a constructor; the zero value is not usable.
//
// # Lazy pipelines
//
// Sequence returns a lazy view for multi-stage pipelines that should not
// allocate intermediate lists:
//
//	top := collections.Map(l.Sequence().Filter(isActive), name).Take(10).ToList()
type ArrayList[T any] struct {
	enumerable[T]
	items []T
}

func newArrayList[T any](items []T) *ArrayList[T] {
	if items == nil {
		items = []T{}
	}
	l := &ArrayList[T]{items: items}
	l.enumerable = enumerable[T]{src: l}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// ListOf creates an ArrayList from a variadic list of items (copied).
func ListOf[T any](items ...T) *ArrayList[T] {
	return newArrayList(slices.Clone(items))
}

// ListFrom creates an ArrayList holding every element of seq.
func ListFrom[T any](seq iter.Seq[T]) *ArrayList[T] {
	return newArrayList(slices.Collect(seq))
}

// EmptyList creates an empty ArrayList.
func EmptyList[T any]() *ArrayList[T] {
	return newArrayList([]T{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterable
// ─────────────────────────────────────────────────────────────────────────────

// Values iterates the elements from first to last. The list is read when
// iteration starts, not when Values is called.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward iterates the elements from last to first.
func (l *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int { return len(l.items) }

// Count returns the number of elements without iterating.
func (l *ArrayList[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *ArrayList[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// LastIndex returns the index of the last element, or -1 when empty.
func (l *ArrayList[T]) LastIndex() int { return len(l.items) - 1 }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index, or an ErrIndexOutOfBounds error.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := CheckIndex(index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// ElementAt returns the element at index, or false when out of range.
func (l *ArrayList[T]) ElementAt(index int) (T, bool) {
	item, err := l.Get(index)
	return item, err == nil
}

// First returns the first element, or false when empty.
func (l *ArrayList[T]) First() (T, bool) { return l.ElementAt(0) }

// Last returns the last element, or false when empty.
func (l *ArrayList[T]) Last() (T, bool) { return l.ElementAt(len(l.items) - 1) }

// FindLast searches backwards and returns the last element for which fn
// holds. It stops at the first match from the end.
func (l *ArrayList[T]) FindLast(fn func(T) bool) (T, bool) {
	if i := l.FindLastIndex(fn); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// FindLastIndex searches backwards and returns the index of the last element
// for which fn holds, or -1.
func (l *ArrayList[T]) FindLastIndex(fn func(T) bool) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if fn(l.items[i]) {
			return i
		}
	}
	return -1
}

// ReduceRight folds the elements from the right, seeding the accumulator
// with the last element. It returns false when the list is empty.
func (l *ArrayList[T]) ReduceRight(fn func(item, acc T) T) (T, bool) {
	return reduceRight(l.Backward(), fn)
}

func reduceRight[T any](backward iter.Seq[T], fn func(item, acc T) T) (T, bool) {
	var acc T
	started := false
	for item := range backward {
		if !started {
			acc, started = item, true
			continue
		}
		acc = fn(item, acc)
	}
	return acc, started
}

// ToSlice returns a copy of the underlying slice.
func (l *ArrayList[T]) ToSlice() []T { return slices.Clone(l.items) }

// ToJSON serialises the elements to a JSON array.
func (l *ArrayList[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// String returns a JSON representation of the list, falling back to %v for
// elements that cannot be marshalled. It implements [fmt.Stringer].
func (l *ArrayList[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends items to the end of the list.
func (l *ArrayList[T]) Add(items ...T) {
	l.items = append(l.items, items...)
}

// AddAll appends every element of seq.
func (l *ArrayList[T]) AddAll(seq iter.Seq[T]) {
	l.items = slices.AppendSeq(l.items, seq)
}

// AddAt inserts item before index; index == Size() appends.
func (l *ArrayList[T]) AddAt(index int, item T) error {
	if err := checkInsertIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, index, item)
	return nil
}

// Set replaces the element at index and returns the previous one.
func (l *ArrayList[T]) Set(index int, item T) (T, error) {
	old, err := l.Get(index)
	if err != nil {
		return old, err
	}
	l.items[index] = item
	return old, nil
}

// RemoveAt removes and returns the element at index.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	item, err := l.Get(index)
	if err != nil {
		return item, err
	}
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// RemoveIf removes every element for which fn holds and returns how many were
// removed.
func (l *ArrayList[T]) RemoveIf(fn func(T) bool) int {
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, fn)
	return before - len(l.items)
}

// Clear removes every element.
func (l *ArrayList[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Reverse reverses the list in place.
func (l *ArrayList[T]) Reverse() { slices.Reverse(l.items) }

// SortWith stably sorts the list in place by c.
func (l *ArrayList[T]) SortWith(c *compare.Comparator[T]) {
	slices.SortStableFunc(l.items, c.Compare)
}

// SortWithDescending stably sorts the list in place in the reverse order of c.
func (l *ArrayList[T]) SortWithDescending(c *compare.Comparator[T]) {
	l.SortWith(c.Reversed())
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving, returns a new list)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with the elements for which fn holds.
func (l *ArrayList[T]) Filter(fn func(T) bool) *ArrayList[T] {
	return l.FilterIndexed(func(item T, _ int) bool { return fn(item) })
}

// FilterIndexed returns a new list with the elements for which fn(item, index)
// holds.
func (l *ArrayList[T]) FilterIndexed(fn func(T, int) bool) *ArrayList[T] {
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return newArrayList(out)
}

// Take returns the first n elements.
// It panics with an ErrInvalidArgument error when n is negative.
func (l *ArrayList[T]) Take(n int) *ArrayList[T] {
	ensureNonNegative("take count", n)
	return ListOf(l.items[:min(n, len(l.items))]...)
}

// TakeLast returns the last n elements.
func (l *ArrayList[T]) TakeLast(n int) *ArrayList[T] {
	ensureNonNegative("take count", n)
	return ListOf(l.items[len(l.items)-min(n, len(l.items)):]...)
}

// Drop returns everything but the first n elements.
func (l *ArrayList[T]) Drop(n int) *ArrayList[T] {
	ensureNonNegative("drop count", n)
	return ListOf(l.items[min(n, len(l.items)):]...)
}

// DropLast returns everything but the last n elements.
func (l *ArrayList[T]) DropLast(n int) *ArrayList[T] {
	ensureNonNegative("drop count", n)
	return ListOf(l.items[:len(l.items)-min(n, len(l.items))]...)
}

// TakeWhile returns the leading elements for which fn holds.
func (l *ArrayList[T]) TakeWhile(fn func(T) bool) *ArrayList[T] {
	end := 0
	for end < len(l.items) && fn(l.items[end]) {
		end++
	}
	return ListOf(l.items[:end]...)
}

// DropWhile drops the leading elements for which fn holds and returns the
// rest.
func (l *ArrayList[T]) DropWhile(fn func(T) bool) *ArrayList[T] {
	start := 0
	for start < len(l.items) && fn(l.items[start]) {
		start++
	}
	return ListOf(l.items[start:]...)
}

// Reversed returns a new list with the elements in reverse order.
func (l *ArrayList[T]) Reversed() *ArrayList[T] {
	out := l.ToSlice()
	slices.Reverse(out)
	return newArrayList(out)
}

// SortedWith returns a new list stably sorted by c.
func (l *ArrayList[T]) SortedWith(c *compare.Comparator[T]) *ArrayList[T] {
	out := l.ToSlice()
	slices.SortStableFunc(out, c.Compare)
	return newArrayList(out)
}

// SortedWithDescending returns a new list stably sorted in the reverse order
// of c.
func (l *ArrayList[T]) SortedWithDescending(c *compare.Comparator[T]) *ArrayList[T] {
	return l.SortedWith(c.Reversed())
}

// Slice returns the elements at the given positions, in the order given.
// Unlike [Sequence.Slice] every position must be in range.
func (l *ArrayList[T]) Slice(indices Iterable[int]) (*ArrayList[T], error) {
	out := make([]T, 0, max(indices.Size(), 0))
	for i := range indices.Values() {
		item, err := l.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return newArrayList(out), nil
}

// Chunk splits the list into consecutive groups of size elements, returning a
// plain [][]T. The last group may contain fewer than size elements.
// It panics with an ErrInvalidArgument error when size is not positive.
//
// To work with each chunk as a list, wrap it with [ListOf]:
//
//	for _, chunk := range l.Chunk(2) {
//	    sub := collections.ListOf(chunk...)
//	    // ...
//	}
func (l *ArrayList[T]) Chunk(size int) [][]T {
	ensurePositive("chunk size", size)
	chunks := make([][]T, 0, (len(l.items)+size-1)/size)
	for chunk := range slices.Chunk(l.items, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}

// OnEach calls fn for every element and returns l for chaining.
func (l *ArrayList[T]) OnEach(fn func(T)) *ArrayList[T] {
	l.ForEach(fn)
	return l
}

// OnEachIndexed calls fn(item, index) for every element and returns l.
func (l *ArrayList[T]) OnEachIndexed(fn func(T, int)) *ArrayList[T] {
	l.ForEachIndexed(fn)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(l) if condition is true and returns the result.
// Otherwise returns l unchanged.
func (l *ArrayList[T]) When(condition bool, fn func(*ArrayList[T]) *ArrayList[T]) *ArrayList[T] {
	if condition {
		return fn(l)
	}
	return l
}

// Unless calls fn(l) if condition is false; otherwise returns l.
func (l *ArrayList[T]) Unless(condition bool, fn func(*ArrayList[T]) *ArrayList[T]) *ArrayList[T] {
	return l.When(!condition, fn)
}
