package collections_test

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
)

func naturals() *collections.Sequence[int] {
	return collections.Generate(1, func(n int) (int, bool) { return n + 1, true })
}

// counting wraps seq and counts how many elements are pulled from it.
func counting[T any](seq iter.Seq[T], pulled *int) *collections.Sequence[T] {
	return collections.FromSeq(func(yield func(T) bool) {
		for item := range seq {
			*pulled++
			if !yield(item) {
				return
			}
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Laziness
// ─────────────────────────────────────────────────────────────────────────────

func TestSequenceIsLazy(t *testing.T) {
	pulled := 0
	s := counting(slices.Values([]int{1, 2, 3, 4, 5}), &pulled).
		Filter(func(n int) bool { return n%2 == 1 })
	s = collections.Map(s, func(n int) int { return n * n })
	assert.Zero(t, pulled, "building a pipeline pulls nothing")

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, pulled, "First pulls only what it needs")
}

func TestTakeDoesNotOverPull(t *testing.T) {
	pulled := 0
	got := counting(naturals().Values(), &pulled).Take(3).ToSlice()
	assertSlice(t, got, []int{1, 2, 3})
	assert.Equal(t, 3, pulled)
}

func TestContinuallyTake(t *testing.T) {
	assertSlice(t, collections.Continually("x").Take(3).ToSlice(), []string{"x", "x", "x"})

	calls := 0
	s := collections.ContinuallyFunc(func() int { calls++; return calls })
	assert.Zero(t, calls, "ContinuallyFunc is lazy")
	assertSlice(t, s.Take(4).ToSlice(), []int{1, 2, 3, 4})
}

func TestSequenceRestartable(t *testing.T) {
	s := collections.Distinct(collections.Of(1, 2, 2, 3, 1)).FilterIndexed(func(_ int, i int) bool { return i < 2 })
	assertSlice(t, s.ToSlice(), []int{1, 2})
	assertSlice(t, s.ToSlice(), []int{1, 2}) // second pass starts with fresh state
}

// ─────────────────────────────────────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────────────────────────────────────

func TestToListPreservesOrder(t *testing.T) {
	src := []int{5, 3, 9, 1, 3}
	assertSlice(t, collections.FromSlice(src).ToList().ToSlice(), src)
}

func TestMapFunctorLaw(t *testing.T) {
	src := collections.Of(1, 2, 3, 4)
	f := func(n int) string { return strconv.Itoa(n * 3) }

	lazy := collections.Map(src, f).ToSlice()
	eager := collections.Map(src.ToList(), f).ToSlice()
	if diff := cmp.Diff(eager, lazy); diff != "" {
		t.Fatalf("Map mismatch (-eager +lazy):\n%s", diff)
	}
}

func TestFilterCount(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	src := collections.RangeTo(1, 11)
	assert.Equal(t, src.CountFunc(even), src.Sequence().Filter(even).Count())
}

func TestTakeDropReconstruct(t *testing.T) {
	src := collections.Of(1, 2, 3, 4, 5)
	for n := 0; n <= 5; n++ {
		got := append(src.Take(n).ToSlice(), src.Drop(n).ToSlice()...)
		assertSlice(t, got, src.ToSlice())
		assert.Equal(t, min(n, 5), len(src.Take(n).ToSlice()))
	}
}

func TestDistinct(t *testing.T) {
	assertSlice(t, collections.Distinct(collections.Of(1, 2, 2, 3, 1)).ToSlice(), []int{1, 2, 3})

	byLen := collections.DistinctBy(collections.Of("a", "bb", "c", "dd", "eee"), func(s string) int { return len(s) })
	assertSlice(t, byLen.ToSlice(), []string{"a", "bb", "eee"})
}

func TestDistinctBytes(t *testing.T) {
	type point struct{ X, Y []int }
	pts := collections.Of(
		point{X: []int{1}, Y: []int{2}},
		point{X: []int{1}, Y: []int{2}},
		point{X: []int{3}, Y: []int{4}},
	)
	key := func(p point) []byte { return []byte(strconv.Itoa(p.X[0]) + "," + strconv.Itoa(p.Y[0])) }
	assert.Equal(t, 2, collections.DistinctBytes(pts, key).Count())
}

func TestChunked(t *testing.T) {
	got := collections.Chunked(collections.Of(1, 2, 3, 4, 5), 2).ToSlice()
	want := [][]int{{1, 2}, {3, 4}, {5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Chunked mismatch (-want +got):\n%s", diff)
	}

	requirePanicsWith(t, collections.ErrInvalidArgument, func() { collections.Chunked(collections.Of(1), 0) })
}

func TestChunkedExactBoundary(t *testing.T) {
	got := collections.Chunked(collections.Of(1, 2, 3, 4), 2).ToSlice()
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}}, got); diff != "" {
		t.Fatalf("Chunked mismatch (-want +got):\n%s", diff)
	}
}

func TestZip(t *testing.T) {
	got := collections.Zip(collections.Of(1, 2, 3), collections.Of("a", "b")).ToSlice()
	want := []collections.Pair[int, string]{{First: 1, Second: "a"}, {First: 2, Second: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Zip mismatch (-want +got):\n%s", diff)
	}

	firsts, seconds := collections.Unzip(collections.FromSlice(got))
	assertSlice(t, firsts.ToSlice(), []int{1, 2})
	assertSlice(t, seconds.ToSlice(), []string{"a", "b"})
}

func TestZipWithInfinite(t *testing.T) {
	got := collections.ZipWith(naturals(), collections.Of("a", "b", "c"), func(n int, s string) string {
		return s + strconv.Itoa(n)
	}).ToSlice()
	assertSlice(t, got, []string{"a1", "b2", "c3"})
}

func TestFlatten(t *testing.T) {
	nested := collections.Of(collections.ListOf(1, 2), collections.ListOf[int](), collections.ListOf(3))
	assertSlice(t, collections.Flatten[int](nested).ToSlice(), []int{1, 2, 3})
	assertSlice(t, collections.FlattenSlices(collections.Of([]int{1}, []int{2, 3})).ToSlice(), []int{1, 2, 3})

	got := collections.FlatMapIndexed(collections.Of("a", "b"), func(s string, i int) iter.Seq[string] {
		return slices.Values([]string{s, strconv.Itoa(i)})
	}).ToSlice()
	assertSlice(t, got, []string{"a", "0", "b", "1"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Stages
// ─────────────────────────────────────────────────────────────────────────────

func TestTakeWhileDropWhile(t *testing.T) {
	small := func(n int) bool { return n < 4 }
	assertSlice(t, naturals().TakeWhile(small).ToSlice(), []int{1, 2, 3})
	assertSlice(t, collections.Of(1, 5, 2, 6).DropWhile(small).ToSlice(), []int{5, 2, 6})
}

func TestPortion(t *testing.T) {
	assertSlice(t, naturals().Portion(2, 5).ToSlice(), []int{3, 4, 5})
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { naturals().Portion(5, 2) })
}

func TestAppend(t *testing.T) {
	s := collections.Of(1, 2).Append(3).AppendAll(collections.RangeTo(4, 5))
	assertSlice(t, s.ToSlice(), []int{1, 2, 3, 4, 5})
	assert.Equal(t, 5, s.Size())
}

func TestSlice(t *testing.T) {
	got := naturals().Slice(collections.Of(4, 0, -1, 2)).ToSlice()
	assertSlice(t, got, []int{5, 1, 3})
	assertSlice(t, collections.Of(1, 2).Slice(collections.RangeTo(1, 5)).ToSlice(), []int{2})
}

func TestSorted(t *testing.T) {
	assertSlice(t, collections.Sorted(collections.Of(3, 1, 2)).ToSlice(), []int{1, 2, 3})
	assertSlice(t, collections.SortedDescending(collections.Of(3, 1, 2)).ToSlice(), []int{3, 2, 1})

	words := collections.Of("ccc", "a", "bb", "d")
	assertSlice(t, collections.SortedBy(words, func(s string) int { return len(s) }).ToSlice(),
		[]string{"a", "d", "bb", "ccc"})
	assertSlice(t, collections.SortedByDescending(words, func(s string) int { return len(s) }).ToSlice(),
		[]string{"ccc", "bb", "a", "d"})
}

func TestPeekAndOnEach(t *testing.T) {
	var peeked []int
	s := collections.Of(1, 2, 3).Peek(func(n int) { peeked = append(peeked, n) })
	assert.Empty(t, peeked, "Peek is lazy")
	s.Take(2).ToSlice()
	assertSlice(t, peeked, []int{1, 2})

	var seen []int
	collections.Of(1, 2).OnEach(func(n int) { seen = append(seen, n) })
	assertSlice(t, seen, []int{1, 2})
}

func TestInvalidArguments(t *testing.T) {
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { naturals().Take(-1) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { naturals().Drop(-1) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { collections.WithLimit(-1) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Cardinality
// ─────────────────────────────────────────────────────────────────────────────

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		seq  collections.Iterable[int]
		want int
	}{
		{"of", collections.Of(1, 2, 3), 3},
		{"empty", collections.Empty[int](), 0},
		{"map", collections.Map(collections.Of(1, 2), func(n int) int { return n }), 2},
		{"take", collections.Of(1, 2, 3).Take(2), 2},
		{"take past end", collections.Of(1, 2, 3).Take(9), 3},
		{"drop", collections.Of(1, 2, 3).Drop(1), 2},
		{"drop past end", collections.Of(1, 2, 3).Drop(9), 0},
		{"filter", collections.Of(1, 2, 3).Filter(func(int) bool { return true }), collections.UnknownSize},
		{"generate", naturals(), collections.UnknownSize},
		{"take over generate", naturals().Take(3), collections.UnknownSize},
		{"sorted", collections.Sorted[int](naturals().Take(3)), 3},
		{"from values", collections.FromValues[int](collections.RangeTo(1, 4)), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seq.Size())
		})
	}
}

func TestViewFollowsSourceMutation(t *testing.T) {
	l := collections.ListOf(1, 2, 3)
	view := l.Sequence()
	doubled := collections.Map[int](l, func(n int) int { return n * 2 })
	head := view.Take(2)
	rest := view.Drop(1)

	_, err := l.RemoveAt(0)
	require.NoError(t, err)
	assertSlice(t, view.ToSlice(), []int{2, 3})
	assert.Equal(t, 2, view.Size())
	assert.Equal(t, 2, doubled.Size())
	assertSlice(t, doubled.ToSlice(), []int{4, 6})

	l.Add(9, 10)
	assertSlice(t, view.ToSlice(), []int{2, 3, 9, 10})
	assert.Equal(t, 4, doubled.Size())
	assert.Equal(t, 2, head.Size())
	assert.Equal(t, 3, rest.Size())
	assertSlice(t, rest.ToSlice(), []int{3, 9, 10})

	l.Clear()
	assert.Empty(t, view.ToSlice())
	assert.Equal(t, 0, view.Size())
	assert.Equal(t, 0, doubled.Size())

	linked := collections.LinkedOf("a")
	lview := linked.Sequence()
	linked.AddFirst("z")
	assertSlice(t, lview.ToSlice(), []string{"z", "a"})
	assert.Equal(t, 2, lview.Size())
}

// ─────────────────────────────────────────────────────────────────────────────
// Once-constrained sequences
// ─────────────────────────────────────────────────────────────────────────────

func TestConstrainedOnce(t *testing.T) {
	s := collections.Of(1, 2, 3).ConstrainedOnce()
	assertSlice(t, s.ToSlice(), []int{1, 2, 3})
	requirePanicsWith(t, collections.ErrIllegalState, func() { s.ToSlice() })
}

func TestFromIterator(t *testing.T) {
	next, stop := iter.Pull(collections.RangeTo(1, 3).Values())
	defer stop()

	s := collections.FromPull(next)
	assert.Equal(t, collections.UnknownSize, s.Size())
	assertSlice(t, s.ToSlice(), []int{1, 2, 3})
	requirePanicsWith(t, collections.ErrIllegalState, func() { s.Count() })
}

func TestConvertToContainers(t *testing.T) {
	s := collections.Of(1, 2, 3)
	assert.Equal(t, "[1 2 3]", s.ToLinkedList().String())
	assert.Equal(t, "[1 2 3]", s.ToPersistentList().String())
	require.Equal(t, 3, s.ToList().Size())
}
