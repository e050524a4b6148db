package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyHeap(t *testing.T) {
	h := Empty[int, string]()
	assert.True(t, h.IsEmpty())
	_, _, ok := h.FindMin()
	assert.False(t, ok)
	assert.True(t, h.DeleteMin().IsEmpty())
	assert.Empty(t, h.ToSortedList())
}

func TestInsertSortedExtraction(t *testing.T) {
	h := Empty[int, string]().Insert(2, "c").Insert(1, "b").Insert(3, "a")
	got := h.ToSortedList()
	require.Len(t, got, 3)
	assert.Equal(t, []Entry[int, string]{{1, "b"}, {2, "c"}, {3, "a"}}, got)
}

func TestFindMinAfterMerge(t *testing.T) {
	a := Singleton(5, "five").Insert(3, "three")
	b := Singleton(4, "four").Insert(7, "seven")
	m := Merge(a, b)
	k, v, ok := m.FindMin()
	require.True(t, ok)
	assert.Equal(t, 3, k)
	assert.Equal(t, "three", v)
}

func TestMergeWithEmpty(t *testing.T) {
	h := Singleton(1, "x")
	assert.Equal(t, h, Merge(h, nil))
	assert.Equal(t, h, Merge(nil, h))
}

func TestPersistence(t *testing.T) {
	a := Singleton(2, "two")
	b := a.Insert(1, "one")
	// a is untouched by the insert
	k, v, ok := a.FindMin()
	require.True(t, ok)
	assert.Equal(t, 2, k)
	assert.Equal(t, "two", v)
	k, _, _ = b.FindMin()
	assert.Equal(t, 1, k)
	// deleting b's min does not disturb a
	_ = b.DeleteMin()
	k, _, _ = a.FindMin()
	assert.Equal(t, 2, k)
}

func TestDeleteMinDrainsAscending(t *testing.T) {
	keys := []int{9, 4, 6, 1, 8, 2, 7, 3, 5, 0}
	h := Empty[int, int]()
	for _, k := range keys {
		h = h.Insert(k, k*k)
	}
	prev := -1
	count := 0
	for !h.IsEmpty() {
		k, v, ok := h.FindMin()
		require.True(t, ok)
		require.Greater(t, k, prev)
		require.Equal(t, k*k, v)
		prev = k
		count++
		h = h.DeleteMin()
	}
	assert.Equal(t, len(keys), count)
}

func TestDuplicateKeysAllSurvive(t *testing.T) {
	h := Empty[int, string]().Insert(1, "a").Insert(1, "b").Insert(0, "z")
	got := h.ToSortedList()
	require.Len(t, got, 3)
	assert.Equal(t, 0, got[0].Key)
	// order among the equal keys is unspecified; both entries must be present
	assert.ElementsMatch(t, []string{"a", "b"}, []string{got[1].Value, got[2].Value})
}
