package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and consumed by [Unzip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both components, for use in multi-value assignments.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
