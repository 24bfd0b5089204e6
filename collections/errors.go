package collections

import (
	"github.com/cockroachdb/errors"
)

// Sentinel error kinds. Concrete errors returned or panicked by this package
// carry a descriptive message and are marked with one of these kinds, so
// callers test them with [errors.Is]:
//
//	if errors.Is(err, collections.ErrIndexOutOfBounds) { ... }
var (
	// ErrInvalidArgument marks a negative size, count or limit, a zero chunk
	// size or a zero progression step. It is raised by the call receiving the
	// argument, before any stage is built or any element is pulled.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrIndexOutOfBounds marks an index outside [0, size).
	ErrIndexOutOfBounds = errors.New("collections: index out of bounds")

	// ErrIllegalState marks an operation that is structurally impossible for
	// the receiver, such as iterating a once-constrained sequence twice or
	// flattening an integer progression.
	ErrIllegalState = errors.New("collections: illegal state")

	// ErrNoSuchElement is returned by FirstOrError / LastOrError when no
	// element satisfies the predicate. First, Last, Reduce, Min and Max report
	// absence with a boolean instead.
	ErrNoSuchElement = errors.New("collections: no such element")

	// ErrStageNotFound is returned when no stage is registered under a name.
	ErrStageNotFound = errors.New("collections: stage not found")
)

func invalidArgumentf(format string, args ...any) error {
	return errors.Mark(errors.Newf("collections: "+format, args...), ErrInvalidArgument)
}

func illegalStatef(format string, args ...any) error {
	return errors.Mark(errors.Newf("collections: "+format, args...), ErrIllegalState)
}

// ensureNonNegative panics with an ErrInvalidArgument error when n < 0.
func ensureNonNegative(name string, n int) {
	if n < 0 {
		panic(invalidArgumentf("%s must be non-negative, got %d", name, n))
	}
}

// ensurePositive panics with an ErrInvalidArgument error when n <= 0.
func ensurePositive(name string, n int) {
	if n <= 0 {
		panic(invalidArgumentf("%s must be positive, got %d", name, n))
	}
}

// CheckIndex returns an ErrIndexOutOfBounds error when index is outside
// [0, size), and nil otherwise.
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.Mark(
			errors.Newf("collections: index %d out of bounds for size %d", index, size),
			ErrIndexOutOfBounds,
		)
	}
	return nil
}

// checkInsertIndex is CheckIndex for insertion points, where index == size
// (append) is valid.
func checkInsertIndex(index, size int) error {
	return CheckIndex(index, size+1)
}
