// Package compare provides composable ordering functions.
//
// # Overview
//
// A [Comparator][T] wraps a three-way comparison: negative when a sorts before
// b, zero when they rank equally, positive when a sorts after b. Comparators
// compose:
//
//	byAge := compare.Comparing(func(p Person) int { return p.Age })
//	byAgeThenName := compare.ThenComparingBy(byAge, func(p Person) string { return p.Name })
//	oldestFirst := byAgeThenName.Reversed()
//
// The Compare method has the signature expected by [slices.SortFunc], so a
// comparator plugs straight into the standard library:
//
//	slices.SortStableFunc(people, oldestFirst.Compare)
//
// # Reversal
//
// Reversing is an involution: c.Reversed().Reversed() returns c itself, not a
// double wrapper. [Natural] and [ReverseOrder] are per-type singletons that
// reverse into each other.
//
// # Nil handling
//
// [NullsFirst] and [NullsLast] lift a Comparator[T] to a Comparator[*T]. Two
// nil pointers compare equal; a single nil always sorts to the configured side
// and the wrapped comparator only ever sees non-nil values.
package compare
