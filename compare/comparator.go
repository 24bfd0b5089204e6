package compare

import (
	"cmp"
	"reflect"
	"sync"
)

// Comparator is a composable three-way comparison of two T values.
//
// Comparators are immutable and safe for concurrent use. Always pass them by
// pointer: the reversal shortcuts rely on pointer identity.
type Comparator[T any] struct {
	compare func(a, b T) int
	// inverse is set when this comparator is the reversal of another one (or
	// one of the natural singletons) so that reversing again is free.
	inverse *Comparator[T]
}

// Func wraps fn as a Comparator.
func Func[T any](fn func(a, b T) int) *Comparator[T] {
	return &Comparator[T]{compare: fn}
}

// Compare returns a negative number when a sorts before b, zero when they
// rank equally and a positive number otherwise.
func (c *Comparator[T]) Compare(a, b T) int { return c.compare(a, b) }

// Reversed returns a comparator imposing the opposite order.
//
// Reversing a reversed comparator returns the original instance; reversing
// [Natural] yields [ReverseOrder] and vice versa.
func (c *Comparator[T]) Reversed() *Comparator[T] {
	if c.inverse != nil {
		return c.inverse
	}
	return &Comparator[T]{
		compare: func(a, b T) int { return c.compare(b, a) },
		inverse: c,
	}
}

// ThenComparing returns a comparator that orders by c and falls back to other
// when c ranks two values equally.
func (c *Comparator[T]) ThenComparing(other *Comparator[T]) *Comparator[T] {
	return &Comparator[T]{compare: func(a, b T) int {
		if res := c.compare(a, b); res != 0 {
			return res
		}
		return other.compare(a, b)
	}}
}

// Comparing orders values by the naturally ordered key extracted by key.
func Comparing[T any, K cmp.Ordered](key func(T) K) *Comparator[T] {
	return &Comparator[T]{compare: func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}}
}

// ComparingWith orders values by the key extracted by key, using keyOrder to
// compare the keys.
func ComparingWith[T, K any](key func(T) K, keyOrder *Comparator[K]) *Comparator[T] {
	return &Comparator[T]{compare: func(a, b T) int {
		return keyOrder.compare(key(a), key(b))
	}}
}

// ThenComparingBy breaks ties of c by the naturally ordered key extracted by
// key.
func ThenComparingBy[T any, K cmp.Ordered](c *Comparator[T], key func(T) K) *Comparator[T] {
	return c.ThenComparing(Comparing(key))
}

// ─────────────────────────────────────────────────────────────────────────────
// Natural order singletons
// ─────────────────────────────────────────────────────────────────────────────

type naturalPair struct {
	natural any // *Comparator[T]
	reverse any // *Comparator[T]
}

var naturals sync.Map // reflect.Type → *naturalPair

func naturalPairFor[T cmp.Ordered]() *naturalPair {
	typ := reflect.TypeFor[T]()
	if p, ok := naturals.Load(typ); ok {
		return p.(*naturalPair)
	}
	natural := &Comparator[T]{compare: cmp.Compare[T]}
	reverse := &Comparator[T]{compare: func(a, b T) int { return cmp.Compare(b, a) }}
	natural.inverse, reverse.inverse = reverse, natural
	p, _ := naturals.LoadOrStore(typ, &naturalPair{natural: natural, reverse: reverse})
	return p.(*naturalPair)
}

// Natural returns the ordering defined by [cmp.Compare] for T. Every call for
// the same T returns the same instance.
func Natural[T cmp.Ordered]() *Comparator[T] {
	return naturalPairFor[T]().natural.(*Comparator[T])
}

// ReverseOrder returns the reverse of [Natural] for T. Every call for the same
// T returns the same instance.
func ReverseOrder[T cmp.Ordered]() *Comparator[T] {
	return naturalPairFor[T]().reverse.(*Comparator[T])
}

// ─────────────────────────────────────────────────────────────────────────────
// Nil-aware wrappers
// ─────────────────────────────────────────────────────────────────────────────

// NullsFirst returns a comparator over *T that sorts nil before every non-nil
// value and compares non-nil values with c.
func NullsFirst[T any](c *Comparator[T]) *Comparator[*T] {
	return nulls(c, -1)
}

// NullsLast returns a comparator over *T that sorts nil after every non-nil
// value and compares non-nil values with c.
func NullsLast[T any](c *Comparator[T]) *Comparator[*T] {
	return nulls(c, 1)
}

func nulls[T any](c *Comparator[T], side int) *Comparator[*T] {
	return &Comparator[*T]{compare: func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return side
		case b == nil:
			return -side
		case c == nil:
			return 0
		default:
			return c.compare(*a, *b)
		}
	}}
}
