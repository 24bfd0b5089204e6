package collections

import "cmp"

// This file contains package-level generic functions for contract operations
// that need a type parameter of their own (an accumulator, a key) or a
// constraint stronger than any (comparable, cmp.Ordered).
//
// Go generics do not allow methods to introduce new type parameters, so these
// take any Iterable and work the same on every container:
//
//	total := collections.Fold(list, 0, func(acc, n int) int { return acc + n })
//	oldest, ok := collections.MaxBy(people, func(p Person) int { return p.Age })

// Fold folds the elements from the left, starting from initial.
//
//	collections.Fold(collections.Of(1, 2, 3), "", func(acc string, n int) string {
//	    return acc + strconv.Itoa(n)
//	}) // "123"
func Fold[T, R any](src Iterable[T], initial R, fn func(acc R, item T) R) R {
	acc := initial
	for item := range src.Values() {
		acc = fn(acc, item)
	}
	return acc
}

// FoldIndexed is [Fold] with the index of each element.
func FoldIndexed[T, R any](src Iterable[T], initial R, fn func(acc R, item T, index int) R) R {
	acc, i := initial, 0
	for item := range src.Values() {
		acc = fn(acc, item, i)
		i++
	}
	return acc
}

// Contains reports whether value occurs in src.
func Contains[T comparable](src Iterable[T], value T) bool {
	return IndexOf(src, value) >= 0
}

// ContainsAll reports whether every value of values occurs in src. values is
// iterated once; src once per value until a miss.
func ContainsAll[T comparable](src Iterable[T], values Iterable[T]) bool {
	for v := range values.Values() {
		if !Contains(src, v) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](src Iterable[T], value T) int {
	i := 0
	for item := range src.Values() {
		if item == value {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
// It scans the whole source.
func LastIndexOf[T comparable](src Iterable[T], value T) int {
	last, i := -1, 0
	for item := range src.Values() {
		if item == value {
			last = i
		}
		i++
	}
	return last
}

// Min returns the smallest element, or false for an empty source. Ties keep
// the first one encountered.
func Min[T cmp.Ordered](src Iterable[T]) (T, bool) {
	return extremeBy(src, identity[T], func(c, best T) bool { return c < best })
}

// Max returns the largest element, or false for an empty source. Ties keep
// the first one encountered.
func Max[T cmp.Ordered](src Iterable[T]) (T, bool) {
	return extremeBy(src, identity[T], func(c, best T) bool { return c > best })
}

// MinBy returns the element with the smallest key.
func MinBy[T any, K cmp.Ordered](src Iterable[T], key func(T) K) (T, bool) {
	return extremeBy(src, key, func(c, best K) bool { return c < best })
}

// MaxBy returns the element with the largest key.
func MaxBy[T any, K cmp.Ordered](src Iterable[T], key func(T) K) (T, bool) {
	return extremeBy(src, key, func(c, best K) bool { return c > best })
}

// Number is the constraint accepted by [Sum].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up the elements.
func Sum[T Number](src Iterable[T]) T {
	var sum T
	for item := range src.Values() {
		sum += item
	}
	return sum
}

// Associate builds a map from the key/value pairs produced by fn. Later
// pairs overwrite earlier ones with the same key.
func Associate[T any, K comparable, V any](src Iterable[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, max(src.Size(), 0))
	for item := range src.Values() {
		k, v := fn(item)
		out[k] = v
	}
	return out
}

// AssociateBy keys every element by key. When several elements share a key,
// the last one wins.
//
//	byID := collections.AssociateBy(users, func(u User) int { return u.ID })
func AssociateBy[T any, K comparable](src Iterable[T], key func(T) K) map[K]T {
	return Associate(src, func(item T) (K, T) { return key(item), item })
}

// AssociateWith maps every element to the value computed by fn.
func AssociateWith[T comparable, V any](src Iterable[T], fn func(T) V) map[T]V {
	return Associate(src, func(item T) (T, V) { return item, fn(item) })
}

// GroupBy groups elements by the key extracted by fn, preserving encounter
// order inside each group.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](src Iterable[T], fn func(T) K) map[K]*ArrayList[T] {
	groups := make(map[K]*ArrayList[T])
	for item := range src.Values() {
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = EmptyList[T]()
			groups[k] = g
		}
		g.Add(item)
	}
	return groups
}

// Partition splits src into the elements for which fn holds and the rest.
func Partition[T any](src Iterable[T], fn func(T) bool) (*ArrayList[T], *ArrayList[T]) {
	pass, fail := EmptyList[T](), EmptyList[T]()
	for item := range src.Values() {
		if fn(item) {
			pass.Add(item)
		} else {
			fail.Add(item)
		}
	}
	return pass, fail
}

func identity[T any](v T) T { return v }
