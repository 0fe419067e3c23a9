package ordtree //nolint:testpackage // tests validate unexported structure (nodes, arena slots, colors)

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants checks the full contract after a mutation: red-black
// balance, link consistency, BST order and arena density.
func requireInvariants[H, K any](tb testing.TB, tree *Tree[H, K]) {
	tb.Helper()

	require.True(tb, tree.root.black(), "root must be black")
	require.True(tb, tree.leaf.black(), "sentinel must be black")
	require.Equal(tb, tree.leaf, tree.leaf.links[left], "sentinel must be childless")
	require.Equal(tb, tree.leaf, tree.leaf.links[right], "sentinel must be childless")

	count, _ := requireSubtreeInvariants(tb, tree, tree.root)
	require.Equal(tb, tree.Len(), count, "reachable nodes must match Len")

	// Arena density: every slot's stored index equals its table position,
	// and the active region is contiguous at the head.
	for idx, nd := range tree.arena.slots {
		require.Equal(tb, wordFromInt(idx), nd.index(), "slot index mismatch at %d", idx)
	}

	require.LessOrEqual(tb, tree.Len(), tree.Cap())

	// BST order over the full in-order walk.
	var prev H

	prevSet := false

	for it := tree.Min(); !it.Limit(); it = it.Next() {
		if prevSet {
			require.Negative(tb, tree.cmp(prev, it.Handle()), "in-order walk out of order")
		}

		prev = it.Handle()
		prevSet = true
	}
}

// requireSubtreeInvariants returns the node count and black-height of the
// subtree rooted at nd.
func requireSubtreeInvariants[H, K any](tb testing.TB, tree *Tree[H, K], nd *node[H]) (int, int) {
	tb.Helper()

	if nd == tree.leaf {
		return 0, 1
	}

	if nd.red() {
		require.True(tb, nd.links[left].black(), "red node with red left child")
		require.True(tb, nd.links[right].black(), "red node with red right child")
	}

	for _, child := range nd.links {
		if child != tree.leaf {
			require.Equal(tb, nd, child.parent, "child does not point back at parent")
		}
	}

	leftCount, leftBlack := requireSubtreeInvariants(tb, tree, nd.links[left])
	rightCount, rightBlack := requireSubtreeInvariants(tb, tree, nd.links[right])
	require.Equal(tb, leftBlack, rightBlack, "black-height mismatch")

	height := leftBlack
	if nd.black() {
		height++
	}

	return leftCount + rightCount + 1, height
}

// treeContents collects the in-order sequence of handles.
func treeContents[H, K any](tree *Tree[H, K]) []H {
	var out []H

	for it := tree.Min(); !it.Limit(); it = it.Next() {
		out = append(out, it.Handle())
	}

	return out
}
