package collections

import (
	"golang.org/x/crypto/blake2b"
)

// Distinct returns a stage suppressing repeated elements; the first occurrence
// wins. The seen-set lives for one pass only.
//
//	collections.Distinct(collections.Of(1, 2, 2, 3, 1)) // 1 2 3
func Distinct[T comparable](src Iterable[T]) *Sequence[T] {
	return DistinctBy(src, identity[T])
}

// DistinctBy returns a stage suppressing elements whose key was already seen.
func DistinctBy[T any, K comparable](src Iterable[T], key func(T) K) *Sequence[T] {
	return newStage(func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for item := range src.Values() {
			k := key(item)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}, UnknownSize)
}

// DistinctBytes is [DistinctBy] for elements identified by a byte encoding,
// such as a canonical serialization of a non-comparable struct. The seen-set
// stores a BLAKE2b-256 digest of each key instead of the key itself, so every
// distinct element costs 32 bytes regardless of the encoding size.
func DistinctBytes[T any](src Iterable[T], key func(T) []byte) *Sequence[T] {
	return DistinctBy(src, func(item T) [blake2b.Size256]byte {
		return blake2b.Sum256(key(item))
	})
}
