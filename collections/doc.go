// Package collections provides generic containers and a lazy sequence
// pipeline built on Go's range-over-func iterators.
//
// # Overview
//
// Every container implements [Iterable] (Values + Size) and, through an
// embedded default implementation, the wider [Enumerable] query surface:
// matching, searching, counting, folding, min/max and joining.
//
//   - [Sequence]: a lazy pipeline of stages. Nothing is pulled until a
//     terminal operation runs, and then only as many elements as it needs.
//   - [ArrayList]: a mutable, slice-backed list.
//   - [LinkedList]: a mutable doubly linked list.
//   - [PersistentList]: an immutable list with shared, lazily built tails.
//   - [IntRange]: an arithmetic progression of ints.
//
// A pipeline reads left to right:
//
//	result := collections.Generate(1, func(n int) (int, bool) { return n + 1, true }).
//	    Filter(func(n int) bool { return n%3 == 0 }).
//	    Take(4).
//	    Join(collections.WithSeparator("-")) // → "3-6-9-12"
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions taking any [Iterable] and returning a lazy [Sequence]:
//
//	words := collections.Map(collections.RangeTo(1, 3), strconv.Itoa).ToList()
//
// Package-level stages: [Map], [MapIndexed], [FlatMap], [FlatMapIndexed],
// [Flatten], [FlattenSlices], [Chunked], [Zip], [ZipWith], [Distinct],
// [DistinctBy], [DistinctBytes], [Sorted], [SortedBy].
//
// # Errors
//
// Invalid arguments to a combinator (a negative count, a zero chunk size)
// are programming errors and panic when the combinator is called, with an
// error marked [ErrInvalidArgument]. Index-based container access returns an
// error marked [ErrIndexOutOfBounds] instead. Use [errors.Is] on either.
//
// # Named stages
//
// Register reusable pipeline steps at runtime via [RegisterStage] and apply
// them with [ApplyStage] or, when the element type is kept, [Sequence.Through].
package collections
