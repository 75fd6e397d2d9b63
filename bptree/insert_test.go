package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_KeyConflict(t *testing.T) {
	tr, err := New[int, string](4)
	require.NoError(t, err)

	require.NoError(t, tr.Insert(1, "a"))
	err = tr.Insert(1, "b")
	require.Error(t, err)
	var conflict *KeyConflictError[int]
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, conflict.Key)

	v, ok := tr.Search(1)
	require.True(t, ok)
	assert.Equal(t, "a", v, "failed insert must not overwrite the existing value")
}

func TestInsert_TriggersLeafSplit(t *testing.T) {
	const degree = 4
	tr, err := New[int, int](degree)
	require.NoError(t, err)

	for i := 0; i < degree; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	require.True(t, tr.Validate())
	_, isInternal := tr.root.(*internalNode[int])
	assert.True(t, isInternal, "root should have split into an internal node")

	for i := 0; i < degree; i++ {
		v, ok := tr.Search(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestInsert_TriggersInternalSplit(t *testing.T) {
	const degree = 4
	tr, err := New[int, int](degree)
	require.NoError(t, err)

	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(i, i*i))
	}
	require.True(t, tr.Validate())

	for i := 0; i < n; i++ {
		v, ok := tr.Search(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}

func TestInsert_DescendingOrderStillValid(t *testing.T) {
	tr, err := New[int, int](5)
	require.NoError(t, err)
	for i := 100; i >= 0; i-- {
		require.NoError(t, tr.Insert(i, i))
	}
	require.True(t, tr.Validate())
}

func TestInsert_DegreeThreeMinimum(t *testing.T) {
	tr, err := New[int, int](3)
	require.NoError(t, err)
	for i := 0; i < 60; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	require.True(t, tr.Validate())
}
