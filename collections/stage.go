package collections

import (
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// Stage is a reusable pipeline step turning a *Sequence[T] into a
// *Sequence[R]. args are the values given to [ApplyStage].
type Stage[T, R any] func(s *Sequence[T], args ...any) *Sequence[R]

// namedStage is a Stage with its element types erased for storage.
type namedStage struct {
	in, out reflect.Type
	apply   func(src any, args []any) any
}

var stageRegistry struct {
	mu     sync.RWMutex
	stages map[string]namedStage
}

func init() {
	stageRegistry.stages = make(map[string]namedStage)
}

// RegisterStage stores fn under name, replacing any stage already
// registered there. Safe for concurrent use.
//
//	collections.RegisterStage("evens", func(s *collections.Sequence[int], _ ...any) *collections.Sequence[int] {
//	    return s.Filter(func(n int) bool { return n%2 == 0 })
//	})
//	evens, _ := collections.ApplyStage[int](collections.RangeTo(1, 10).Sequence(), "evens")
func RegisterStage[T, R any](name string, fn Stage[T, R]) {
	st := namedStage{
		in:  reflect.TypeFor[T](),
		out: reflect.TypeFor[R](),
		apply: func(src any, args []any) any {
			return fn(src.(*Sequence[T]), args...)
		},
	}
	stageRegistry.mu.Lock()
	defer stageRegistry.mu.Unlock()
	stageRegistry.stages[name] = st
}

// HasStage reports whether a stage is registered under name.
func HasStage(name string) bool {
	stageRegistry.mu.RLock()
	defer stageRegistry.mu.RUnlock()
	_, ok := stageRegistry.stages[name]
	return ok
}

// Stages returns the registered stage names in sorted order.
func Stages() []string {
	stageRegistry.mu.RLock()
	defer stageRegistry.mu.RUnlock()
	return slices.Sorted(maps.Keys(stageRegistry.stages))
}

// FlushStages removes every registered stage.
// Intended for use in tests.
func FlushStages() {
	stageRegistry.mu.Lock()
	defer stageRegistry.mu.Unlock()
	clear(stageRegistry.stages)
}

// ApplyStage runs the stage registered under name on s.
//
// It returns an ErrStageNotFound error for an unknown name, and an
// ErrIllegalState error when the stage was registered for an element type
// other than T or produces elements other than R. s is not consumed in
// either case.
func ApplyStage[R, T any](s *Sequence[T], name string, args ...any) (*Sequence[R], error) {
	stageRegistry.mu.RLock()
	st, ok := stageRegistry.stages[name]
	stageRegistry.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrStageNotFound, "%q", name)
	}
	if in := reflect.TypeFor[T](); st.in != in {
		return nil, illegalStatef("stage %q takes a Sequence of %v, not %v", name, st.in, in)
	}
	if out := reflect.TypeFor[R](); st.out != out {
		return nil, illegalStatef("stage %q yields a Sequence of %v, not %v", name, st.out, out)
	}
	return st.apply(s, args).(*Sequence[R]), nil
}

// Through runs the element-preserving stage registered under name on s. It
// is ApplyStage with R equal to T.
func (s *Sequence[T]) Through(name string, args ...any) (*Sequence[T], error) {
	return ApplyStage[T](s, name, args...)
}
