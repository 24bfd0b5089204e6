package collections

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-collections/compare"
)

type linkedNode[T any] struct {
	value      T
	prev, next *linkedNode[T]
}

// LinkedList is a mutable doubly linked list. Insertion and removal at either
// end are O(1); index-based access walks from whichever end is nearer.
//
// As with [ArrayList], mutators change the receiver and transformation
// methods return a new list. Always use a constructor; the zero value is not
// usable.
type LinkedList[T any] struct {
	enumerable[T]
	head, tail *linkedNode[T]
	size       int
}

func newLinkedList[T any]() *LinkedList[T] {
	l := &LinkedList[T]{}
	l.enumerable = enumerable[T]{src: l}
	return l
}

// LinkedOf creates a LinkedList holding items in order.
func LinkedOf[T any](items ...T) *LinkedList[T] {
	return LinkedFrom(slices.Values(items))
}

// LinkedFrom creates a LinkedList holding every element of seq.
func LinkedFrom[T any](seq iter.Seq[T]) *LinkedList[T] {
	l := newLinkedList[T]()
	for item := range seq {
		l.AddLast(item)
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterable
// ─────────────────────────────────────────────────────────────────────────────

// Values iterates the elements from head to tail.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates the elements from tail to head.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int { return l.size }

// Count returns the number of elements without iterating.
func (l *LinkedList[T]) Count() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *LinkedList[T]) IsNotEmpty() bool { return l.size > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func (l *LinkedList[T]) node(index int) *linkedNode[T] {
	if index < l.size/2 {
		n := l.head
		for range index {
			n = n.next
		}
		return n
	}
	n := l.tail
	for range l.size - 1 - index {
		n = n.prev
	}
	return n
}

// Get returns the element at index, or an ErrIndexOutOfBounds error.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := CheckIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.node(index).value, nil
}

// ElementAt returns the element at index, or false when out of range.
func (l *LinkedList[T]) ElementAt(index int) (T, bool) {
	item, err := l.Get(index)
	return item, err == nil
}

// First returns the head element, or false when empty.
func (l *LinkedList[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Last returns the tail element, or false when empty.
func (l *LinkedList[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// FindLast walks from the tail and returns the first element, counting
// backwards, for which fn holds.
func (l *LinkedList[T]) FindLast(fn func(T) bool) (T, bool) {
	for n := l.tail; n != nil; n = n.prev {
		if fn(n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// FindLastIndex is FindLast returning the index, or -1.
func (l *LinkedList[T]) FindLastIndex(fn func(T) bool) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if fn(n.value) {
			return i
		}
		i--
	}
	return -1
}

// ReduceRight folds the elements from the right, seeding the accumulator
// with the tail element. It returns false when the list is empty.
func (l *LinkedList[T]) ReduceRight(fn func(item, acc T) T) (T, bool) {
	return reduceRight(l.Backward(), fn)
}

// String formats the list as "[a b c]".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// AddFirst inserts item at the head.
func (l *LinkedList[T]) AddFirst(item T) {
	n := &linkedNode[T]{value: item, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// AddLast inserts item at the tail.
func (l *LinkedList[T]) AddLast(item T) {
	n := &linkedNode[T]{value: item, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Add appends items at the tail.
func (l *LinkedList[T]) Add(items ...T) {
	for _, item := range items {
		l.AddLast(item)
	}
}

// AddAt inserts item before index; index == Size() appends.
func (l *LinkedList[T]) AddAt(index int, item T) error {
	if err := checkInsertIndex(index, l.size); err != nil {
		return err
	}
	switch index {
	case 0:
		l.AddFirst(item)
	case l.size:
		l.AddLast(item)
	default:
		at := l.node(index)
		n := &linkedNode[T]{value: item, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}
	return nil
}

// Set replaces the element at index and returns the previous one.
func (l *LinkedList[T]) Set(index int, item T) (T, error) {
	if err := CheckIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	n := l.node(index)
	old := n.value
	n.value = item
	return old, nil
}

// unlink detaches n and clears its links so that a retained node does not
// keep the rest of the list reachable.
func (l *LinkedList[T]) unlink(n *linkedNode[T]) T {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
	return n.value
}

// RemoveFirst removes and returns the head element, or false when empty.
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.unlink(l.head), true
}

// RemoveLast removes and returns the tail element, or false when empty.
func (l *LinkedList[T]) RemoveLast() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.unlink(l.tail), true
}

// RemoveAt removes and returns the element at index.
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	if err := CheckIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(l.node(index)), nil
}

// Clear removes every element.
func (l *LinkedList[T]) Clear() {
	for l.head != nil {
		l.unlink(l.head)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (returns a new list)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with the elements for which fn holds.
func (l *LinkedList[T]) Filter(fn func(T) bool) *LinkedList[T] {
	return l.FilterIndexed(func(item T, _ int) bool { return fn(item) })
}

// FilterIndexed returns a new list with the elements for which fn(item, index)
// holds.
func (l *LinkedList[T]) FilterIndexed(fn func(T, int) bool) *LinkedList[T] {
	out := newLinkedList[T]()
	i := 0
	for n := l.head; n != nil; n = n.next {
		if fn(n.value, i) {
			out.AddLast(n.value)
		}
		i++
	}
	return out
}

// Take returns a new list with the first n elements.
// It panics with an ErrInvalidArgument error when n is negative.
func (l *LinkedList[T]) Take(n int) *LinkedList[T] {
	ensureNonNegative("take count", n)
	return l.FilterIndexed(func(_ T, i int) bool { return i < n })
}

// Drop returns a new list without the first n elements.
// It panics with an ErrInvalidArgument error when n is negative.
func (l *LinkedList[T]) Drop(n int) *LinkedList[T] {
	ensureNonNegative("drop count", n)
	return l.FilterIndexed(func(_ T, i int) bool { return i >= n })
}

// Reversed returns a new list with the elements in reverse order.
func (l *LinkedList[T]) Reversed() *LinkedList[T] {
	return LinkedFrom(l.Backward())
}

// SortedWith returns a new list stably sorted by c.
func (l *LinkedList[T]) SortedWith(c *compare.Comparator[T]) *LinkedList[T] {
	items := slices.Collect(l.Values())
	slices.SortStableFunc(items, c.Compare)
	return LinkedOf(items...)
}

// OnEach calls fn for every element and returns l.
func (l *LinkedList[T]) OnEach(fn func(T)) *LinkedList[T] {
	l.ForEach(fn)
	return l
}

// OnEachIndexed calls fn(item, index) for every element and returns l.
func (l *LinkedList[T]) OnEachIndexed(fn func(T, int)) *LinkedList[T] {
	l.ForEachIndexed(fn)
	return l
}
