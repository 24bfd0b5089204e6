package collections

import (
	"fmt"
	"iter"
	"runtime"
	"slices"
	"strings"
	"sync"
)

// PersistentList is an immutable singly linked list. Each cell holds a head
// element and a tail that is computed on first access and then cached, so
// lists built from other lists share structure instead of copying it:
//
//	base := collections.PersistentOf(2, 3)
//	a := base.Prepend(1) // [1 2 3], shares base
//	b := base.Prepend(0) // [0 2 3], shares base
//
// Transformations (Append, Take, Filter, ...) build their cells lazily as the
// result is traversed. A PersistentList is safe for concurrent use.
type PersistentList[T any] struct {
	enumerable[T]
	head  T
	tail  func() *PersistentList[T]
	empty bool
}

func cons[T any](head T, tail func() *PersistentList[T]) *PersistentList[T] {
	p := &PersistentList[T]{head: head, tail: sync.OnceValue(tail)}
	p.enumerable = enumerable[T]{src: p}
	return p
}

// Nil returns the empty PersistentList.
func Nil[T any]() *PersistentList[T] {
	p := &PersistentList[T]{empty: true}
	p.tail = func() *PersistentList[T] { return p }
	p.enumerable = enumerable[T]{src: p}
	return p
}

// PersistentOf returns a PersistentList holding items in order.
func PersistentOf[T any](items ...T) *PersistentList[T] {
	return persistentFromSlice(slices.Clone(items), 0)
}

// PersistentFrom returns a PersistentList holding every element of seq. seq
// is drained immediately; the cells are built as the list is traversed.
func PersistentFrom[T any](seq iter.Seq[T]) *PersistentList[T] {
	return persistentFromSlice(slices.Collect(seq), 0)
}

func persistentFromSlice[T any](items []T, i int) *PersistentList[T] {
	if i >= len(items) {
		return Nil[T]()
	}
	return cons(items[i], func() *PersistentList[T] { return persistentFromSlice(items, i+1) })
}

// pullSource feeds the cells of a list built from a pulled iterator. Each
// cell's tail calls next exactly once, after the previous cell's tail has
// returned, so next is never called concurrently.
type pullSource[T any] struct {
	next func() (T, bool)
}

// persistentFromPull returns a list whose cells are pulled from seq on
// demand. The pull is stopped once no unforced cell remains reachable.
func persistentFromPull[T any](seq iter.Seq[T]) *PersistentList[T] {
	next, stop := iter.Pull(seq)
	src := &pullSource[T]{next: next}
	runtime.AddCleanup(src, func(stop func()) { stop() }, stop)
	return src.cell()
}

func (ps *pullSource[T]) cell() *PersistentList[T] {
	v, ok := ps.next()
	if !ok {
		return Nil[T]()
	}
	return cons(v, ps.cell)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterable
// ─────────────────────────────────────────────────────────────────────────────

// Values iterates the elements from the head, forcing tails as it goes.
func (p *PersistentList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := p; !c.empty; c = c.tail() {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Size walks the list and returns its length.
func (p *PersistentList[T]) Size() int {
	n := 0
	for c := p; !c.empty; c = c.tail() {
		n++
	}
	return n
}

// Count is Size.
func (p *PersistentList[T]) Count() int { return p.Size() }

// IsEmpty reports whether p is the empty list.
func (p *PersistentList[T]) IsEmpty() bool { return p.empty }

// IsNotEmpty reports whether p has a head.
func (p *PersistentList[T]) IsNotEmpty() bool { return !p.empty }

// Head returns the first element, or false for the empty list.
func (p *PersistentList[T]) Head() (T, bool) {
	return p.head, !p.empty
}

// First is Head.
func (p *PersistentList[T]) First() (T, bool) { return p.Head() }

// Tail returns the list without its head. The tail of the empty list is the
// empty list.
func (p *PersistentList[T]) Tail() *PersistentList[T] {
	return p.tail()
}

// String formats the list as "[a b c]".
func (p *PersistentList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := p; !c.empty; c = c.tail() {
		if c != p {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, c.head)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// Prepend returns a list with item in front of p. p becomes the tail of the
// result and is not copied.
func (p *PersistentList[T]) Prepend(item T) *PersistentList[T] {
	return cons(item, func() *PersistentList[T] { return p })
}

// Append returns a list with item after the last element of p.
func (p *PersistentList[T]) Append(item T) *PersistentList[T] {
	return p.AppendAll(Of(item))
}

// AppendAll returns a list with the elements of other after those of p.
// A PersistentList argument becomes the shared tail of the result. Any other
// Iterable is pulled one element per cell as the result is traversed, so
// other may be infinite.
func (p *PersistentList[T]) AppendAll(other Iterable[T]) *PersistentList[T] {
	if p.empty {
		if q, ok := other.(*PersistentList[T]); ok {
			return q
		}
		return persistentFromPull(other.Values())
	}
	return cons(p.head, func() *PersistentList[T] { return p.tail().AppendAll(other) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n elements.
// It panics with an ErrInvalidArgument error when n is negative.
func (p *PersistentList[T]) Take(n int) *PersistentList[T] {
	ensureNonNegative("take count", n)
	if n == 0 || p.empty {
		return Nil[T]()
	}
	return cons(p.head, func() *PersistentList[T] {
		if n == 1 {
			return Nil[T]()
		}
		return p.tail().Take(n - 1)
	})
}

// Drop returns the list without its first n elements. The result shares all
// of its cells with p.
// It panics with an ErrInvalidArgument error when n is negative.
func (p *PersistentList[T]) Drop(n int) *PersistentList[T] {
	ensureNonNegative("drop count", n)
	c := p
	for ; n > 0 && !c.empty; n-- {
		c = c.tail()
	}
	return c
}

// Filter returns a lazily built list of the elements for which fn holds.
// The first match is located right away; later elements are tested only as
// the result is traversed.
func (p *PersistentList[T]) Filter(fn func(T) bool) *PersistentList[T] {
	c := p
	for !c.empty && !fn(c.head) {
		c = c.tail()
	}
	if c.empty {
		return c
	}
	return cons(c.head, func() *PersistentList[T] { return c.tail().Filter(fn) })
}

// Reversed returns a new list with the elements in reverse order.
func (p *PersistentList[T]) Reversed() *PersistentList[T] {
	out := Nil[T]()
	for c := p; !c.empty; c = c.tail() {
		out = out.Prepend(c.head)
	}
	return out
}

// OnEach calls fn for every element and returns p.
func (p *PersistentList[T]) OnEach(fn func(T)) *PersistentList[T] {
	p.ForEach(fn)
	return p
}
