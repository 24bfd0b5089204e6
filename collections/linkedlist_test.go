package collections_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/compare"
)

func TestLinkedListEnds(t *testing.T) {
	l := collections.LinkedOf(2, 3)
	l.AddFirst(1)
	l.AddLast(4)
	assertSlice(t, l.ToSlice(), []int{1, 2, 3, 4})
	assert.Equal(t, 4, l.Size())

	first, ok := l.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := l.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, 4, last)
	assertSlice(t, l.ToSlice(), []int{2, 3})
	assertSlice(t, collections.ListFrom(l.Backward()).ToSlice(), []int{3, 2})
}

func TestLinkedListEmpty(t *testing.T) {
	l := collections.LinkedOf[int]()
	_, ok := l.RemoveFirst()
	assert.False(t, ok)
	_, ok = l.RemoveLast()
	assert.False(t, ok)
	_, ok = l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
	assert.Equal(t, "[]", l.String())
}

func TestLinkedListIndexAccess(t *testing.T) {
	l := collections.LinkedOf(0, 1, 2, 3, 4, 5, 6)
	for i := range 7 {
		v, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v, "walking from the nearer end")
	}
	_, err := l.Get(7)
	assert.True(t, errors.Is(err, collections.ErrIndexOutOfBounds))

	old, err := l.Set(5, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, old)

	require.NoError(t, l.AddAt(2, 20))
	require.NoError(t, l.AddAt(l.Size(), 99))
	removed, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assertSlice(t, l.ToSlice(), []int{1, 20, 2, 3, 4, 50, 6, 99})
	assertSlice(t, collections.ListFrom(l.Backward()).ToSlice(), []int{99, 6, 50, 4, 3, 2, 20, 1})

	assert.True(t, errors.Is(l.AddAt(-1, 0), collections.ErrIndexOutOfBounds))
}

func TestLinkedListClear(t *testing.T) {
	l := collections.LinkedOf(1, 2, 3)
	l.Clear()
	assert.True(t, l.IsEmpty())
	l.Add(4)
	assertSlice(t, l.ToSlice(), []int{4})
}

func TestLinkedListFindLast(t *testing.T) {
	l := collections.LinkedOf(1, 2, 3, 4, 5)
	v, ok := l.FindLast(func(n int) bool { return n < 3 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, l.FindLastIndex(func(n int) bool { return n < 3 }))
	assert.Equal(t, -1, l.FindLastIndex(func(n int) bool { return n > 9 }))
}

func TestLinkedListTransforms(t *testing.T) {
	l := collections.LinkedOf(3, 1, 4, 1, 5)
	assertSlice(t, l.Filter(func(n int) bool { return n > 1 }).ToSlice(), []int{3, 4, 5})
	assertSlice(t, l.Take(2).ToSlice(), []int{3, 1})
	assertSlice(t, l.Drop(3).ToSlice(), []int{1, 5})
	assertSlice(t, l.Reversed().ToSlice(), []int{5, 1, 4, 1, 3})
	assertSlice(t, l.SortedWith(compare.Natural[int]()).ToSlice(), []int{1, 1, 3, 4, 5})
	assertSlice(t, l.ToSlice(), []int{3, 1, 4, 1, 5}) // unchanged

	sum, ok := l.ReduceRight(func(item, acc int) int { return acc - item })
	assert.True(t, ok)
	assert.Equal(t, 5-1-4-1-3, sum)

	requirePanicsWith(t, collections.ErrInvalidArgument, func() { l.Take(-1) })
}
