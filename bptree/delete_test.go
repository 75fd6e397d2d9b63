package bptree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_MissingKeyIsNoOp(t *testing.T) {
	tr, err := New[int, int](4)
	require.NoError(t, err)
	require.NoError(t, tr.Insert(1, 1))
	tr.Delete(999)
	assert.True(t, tr.Validate())
	v, ok := tr.Search(1)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDelete_EmptiesTreeBackToEmptyLeafRoot(t *testing.T) {
	tr, err := New[int, int](4)
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	for i := 0; i < 30; i++ {
		tr.Delete(i)
		require.True(t, tr.Validate())
	}
	_, isLeaf := tr.root.(*leafNode[int, int])
	assert.True(t, isLeaf, "root should collapse back to a single empty leaf")
	assert.Equal(t, 0, tr.root.numKeys())
	_, ok := tr.Search(0)
	assert.False(t, ok)
}

func TestDelete_SequentialAscendingThenDescending(t *testing.T) {
	const n = 500
	tr, err := New[int, int](6)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	for i := n - 1; i >= 0; i-- {
		tr.Delete(i)
	}
	require.True(t, tr.Validate())
	for i := 0; i < n; i++ {
		_, ok := tr.Search(i)
		assert.False(t, ok)
	}
}

func TestDelete_RandomOrderPreservesRemainingKeys(t *testing.T) {
	const n = 2000
	rng := rand.New(rand.NewSource(1))

	insertOrder := rng.Perm(n)
	deleteOrder := rng.Perm(n)
	toDelete := deleteOrder[:n/2]
	deleted := make(map[int]bool, len(toDelete))
	for _, k := range toDelete {
		deleted[k] = true
	}

	tr, err := New[int, int](8)
	require.NoError(t, err)
	for _, k := range insertOrder {
		require.NoError(t, tr.Insert(k, k*2))
	}
	require.True(t, tr.Validate())

	for i, k := range toDelete {
		tr.Delete(k)
		if i%97 == 0 {
			require.True(t, tr.Validate(), "validate failed after deleting %d keys", i+1)
		}
	}
	require.True(t, tr.Validate())

	for k := 0; k < n; k++ {
		v, ok := tr.Search(k)
		if deleted[k] {
			assert.False(t, ok, "key %d should have been deleted", k)
		} else {
			require.True(t, ok, "key %d should still be present", k)
			assert.Equal(t, k*2, v)
		}
	}
}

func TestDelete_EmptyLeafSpliceWithRightSibling(t *testing.T) {
	// Small degree forces the internal separator == deleted-leaf-min-key
	// splice case to appear with a modest number of keys.
	const degree = 3
	tr, err := New[int, int](degree)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	for i := 0; i < 40; i += 2 {
		tr.Delete(i)
		require.True(t, tr.Validate())
	}
	for i := 1; i < 40; i += 2 {
		v, ok := tr.Search(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}
