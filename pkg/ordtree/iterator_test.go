package ordtree //nolint:testpackage // tests validate unexported structure (nodes, arena slots, colors)

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorTraversal(t *testing.T) {
	t.Parallel()

	tree := testNewIntTree()

	for _, v := range []int{5, 1, 9, 3, 7} {
		require.True(t, boolInsert(tree, v))
	}

	assert.Equal(t, "1,3,5,7,9", iterToString(tree.Min()))
	assert.Equal(t, "9,7,5,3,1", reverseIterToString(tree.Max()))
}

func TestIteratorLimits(t *testing.T) {
	t.Parallel()

	tree := testNewIntTree()
	boolInsert(tree, 5)
	boolInsert(tree, 10)
	boolInsert(tree, 15)

	// Stepping forward off the maximum reaches Limit; Prev comes back.
	iter := tree.Max().Next()
	assert.True(t, iter.Limit())
	assert.Equal(t, 15, iter.Prev().Handle())

	// Stepping backward off the minimum reaches NegativeLimit; Next comes
	// back.
	iter = tree.Min().Prev()
	assert.True(t, iter.NegativeLimit())
	assert.Equal(t, 5, iter.Next().Handle())

	assert.Panics(t, func() { tree.Max().Next().Next() })
	assert.Panics(t, func() { tree.Min().Prev().Prev() })
}

func TestIteratorEqual(t *testing.T) {
	t.Parallel()

	tree := testNewIntTree()
	boolInsert(tree, 1)
	boolInsert(tree, 2)

	assert.True(t, tree.Find(1).Equal(tree.Min()))
	assert.False(t, tree.Find(1).Equal(tree.Find(2)))
	assert.True(t, tree.Find(3).Equal(tree.Max().Next()))
}

func TestDeleteWithIterator(t *testing.T) {
	t.Parallel()

	tree := testNewIntTree()
	boolInsert(tree, 5)
	boolInsert(tree, 10)
	boolInsert(tree, 15)

	iter := tree.Find(10)
	require.False(t, iter.Limit())
	tree.DeleteWithIterator(iter)
	assert.Equal(t, 2, tree.Len())
	assert.True(t, tree.Find(10).Limit())

	tree.DeleteWithIterator(tree.Min())
	tree.DeleteWithIterator(tree.Max())
	assert.Equal(t, 0, tree.Len())

	assert.Panics(t, func() { tree.DeleteWithIterator(tree.Min()) }, "limit iterator")
	assert.Panics(t, func() { tree.DeleteWithIterator(tree.Max()) }, "negative limit iterator")
}

// Removing an element with two children relocates the successor's handle
// into the surviving node: an iterator held on the removed element observes
// the successor afterwards.
func TestTwoChildDeleteRelocation(t *testing.T) {
	t.Parallel()

	tree := testNewIntTree()

	for _, v := range []int{2, 1, 3} {
		require.True(t, boolInsert(tree, v))
	}

	iter := tree.Find(2)
	require.Equal(t, 2, iter.Handle())
	require.NotEqual(t, tree.leaf, iter.node.links[left])
	require.NotEqual(t, tree.leaf, iter.node.links[right])

	require.True(t, tree.Delete(2))
	assert.Equal(t, 3, iter.Handle())
	assert.Equal(t, "1,3", iterToString(tree.Min()))
	requireInvariants(t, tree)
}
