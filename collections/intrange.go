package collections

import (
	"fmt"
	"iter"
	"math"
)

// IntRange is an arithmetic progression of ints from Start to EndInclusive by
// Step. Step may be negative for a descending progression but never zero.
//
// EndInclusive is normalised to the last value actually reached, so
// NewIntRange(1, 10, 4) holds 1, 5, 9 and reports EndInclusive() == 9.
//
// IntRange is immutable and implements [Enumerable], so it can drive a lazy
// pipeline or serve as the index source of [Sequence.Slice]:
//
//	for i := range collections.RangeTo(0, 4).Values() { ... }
//	collections.Map(collections.DownTo(10, 1), strconv.Itoa)
type IntRange struct {
	enumerable[int]
	first, last, step int
}

// NewIntRange returns the progression first, first+step, ... up to and
// including last when it is reached. It returns an ErrInvalidArgument error
// when step is zero.
func NewIntRange(first, last, step int) (*IntRange, error) {
	if step == 0 {
		return nil, invalidArgumentf("step must be non-zero")
	}
	r := &IntRange{first: first, last: progressionLast(first, last, step), step: step}
	r.enumerable = enumerable[int]{src: r}
	return r, nil
}

// RangeTo returns the ascending range first..last with step 1.
func RangeTo(first, last int) *IntRange {
	r, _ := NewIntRange(first, last, 1)
	return r
}

// DownTo returns the descending range first downTo last with step -1.
func DownTo(first, last int) *IntRange {
	r, _ := NewIntRange(first, last, -1)
	return r
}

// progressionLast returns the last value of the progression that does not
// pass end.
func progressionLast(start, end, step int) int {
	switch {
	case step > 0 && start < end:
		return end - differenceModulo(end, start, step)
	case step < 0 && start > end:
		return end + differenceModulo(start, end, -step)
	default:
		return end
	}
}

// differenceModulo returns (a - b) mod m in [0, m) without overflowing.
func differenceModulo(a, b, m int) int {
	return floorMod(floorMod(a, m)-floorMod(b, m), m)
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Start returns the first value.
func (r *IntRange) Start() int { return r.first }

// EndInclusive returns the last value of the progression.
func (r *IntRange) EndInclusive() int { return r.last }

// Step returns the step.
func (r *IntRange) Step() int { return r.step }

// IsEmpty reports whether the progression holds no values.
func (r *IntRange) IsEmpty() bool {
	if r.step > 0 {
		return r.first > r.last
	}
	return r.first < r.last
}

// IsNotEmpty reports whether the progression holds at least one value.
func (r *IntRange) IsNotEmpty() bool { return !r.IsEmpty() }

// steps returns how many steps separate Start from EndInclusive. The
// distance is taken in uint so that a span wider than math.MaxInt is exact.
func (r *IntRange) steps() uint {
	if r.step > 0 {
		return uint(r.last-r.first) / uint(r.step)
	}
	return uint(r.first-r.last) / -uint(r.step)
}

// Size returns the number of values, or UnknownSize when the count does not
// fit in an int, as for RangeTo(math.MinInt, 0).
func (r *IntRange) Size() int {
	if r.IsEmpty() {
		return 0
	}
	n := r.steps()
	if n >= math.MaxInt {
		return UnknownSize
	}
	return int(n) + 1
}

// Count is Size.
func (r *IntRange) Count() int { return r.Size() }

// Contains reports whether v is one of the values of the progression.
func (r *IntRange) Contains(v int) bool {
	if r.IsEmpty() {
		return false
	}
	if r.step > 0 {
		return v >= r.first && v <= r.last && uint(v-r.first)%uint(r.step) == 0
	}
	return v <= r.first && v >= r.last && uint(r.first-v)%-uint(r.step) == 0
}

// ElementAt returns the value at index without iterating.
func (r *IntRange) ElementAt(index int) (int, bool) {
	if index < 0 || r.IsEmpty() || uint(index) > r.steps() {
		return 0, false
	}
	// wraps in intermediate steps; the result lies within the range
	return r.first + index*r.step, true
}

// First returns Start, or false when empty.
func (r *IntRange) First() (int, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	return r.first, true
}

// Last returns EndInclusive, or false when empty.
func (r *IntRange) Last() (int, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	return r.last, true
}

// Values iterates the progression. It stops exactly at EndInclusive, so a
// range ending near math.MaxInt does not wrap around.
func (r *IntRange) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.IsEmpty() {
			return
		}
		for v := r.first; ; v += r.step {
			if !yield(v) || v == r.last {
				return
			}
		}
	}
}

// String formats the range as "1..10 step 3" or "10 downTo 1 step 3".
func (r *IntRange) String() string {
	if r.step > 0 {
		return fmt.Sprintf("%d..%d step %d", r.first, r.last, r.step)
	}
	return fmt.Sprintf("%d downTo %d step %d", r.first, r.last, -r.step)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a lazy Sequence of the values for which fn holds. The result
// is not a progression.
func (r *IntRange) Filter(fn func(int) bool) *Sequence[int] {
	return From[int](r).Filter(fn)
}

// FilterIndexed is Filter with the index of each value.
func (r *IntRange) FilterIndexed(fn func(int, int) bool) *Sequence[int] {
	return From[int](r).FilterIndexed(fn)
}

// OnEach calls fn for every value and returns r.
func (r *IntRange) OnEach(fn func(int)) *IntRange {
	r.ForEach(fn)
	return r
}

// OnEachIndexed calls fn(value, index) for every value and returns r.
func (r *IntRange) OnEachIndexed(fn func(int, int)) *IntRange {
	r.ForEachIndexed(fn)
	return r
}

// Flatten always panics with an ErrIllegalState error: a progression holds
// ints, not containers.
func (r *IntRange) Flatten() *Sequence[int] {
	panic(illegalStatef("cannot flatten %s: elements are not containers", r))
}

// Unzip always panics with an ErrIllegalState error: a progression holds
// ints, not pairs.
func (r *IntRange) Unzip() (*ArrayList[int], *ArrayList[int]) {
	panic(illegalStatef("cannot unzip %s: elements are not pairs", r))
}
