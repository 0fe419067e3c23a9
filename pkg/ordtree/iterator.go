package ordtree

// Iterator points at a live node and allows scanning elements in sort
// order. Two distinguished positions exist: Limit (past the maximum) and
// NegativeLimit (before the minimum).
//
// An iterator is invalidated the moment its node is physically removed.
// Removing an element with two children relocates the successor's handle
// into the removed element's node: the iterator at the removed element stays
// live and observes the successor, while an iterator at the successor is the
// one invalidated. Erase, Shrink and Hibernate invalidate all iterators.
// Using a stale iterator is caller error and is not defensively checked.
type Iterator[H, K any] struct {
	tree *Tree[H, K]
	node *node[H]
}

// Equal reports whether both iterators point at the same position.
func (it Iterator[H, K]) Equal(other Iterator[H, K]) bool {
	return it.node == other.node
}

// Limit reports whether the iterator points beyond the maximum element.
func (it Iterator[H, K]) Limit() bool {
	return it.node == nil
}

// NegativeLimit reports whether the iterator points before the minimum
// element.
func (it Iterator[H, K]) NegativeLimit() bool {
	return it.node != nil && it.node == it.tree.leaf
}

// Handle returns the element the iterator points at, or the zero value at
// either limit.
func (it Iterator[H, K]) Handle() H {
	if it.Limit() || it.NegativeLimit() {
		var zero H

		return zero
	}

	return it.node.handle
}

// Next returns an iterator to the in-order successor of the current
// element.
//
// REQUIRES: !it.Limit().
func (it Iterator[H, K]) Next() Iterator[H, K] {
	doAssert(!it.Limit())

	if it.NegativeLimit() {
		return it.tree.Min()
	}

	return Iterator[H, K]{it.tree, it.tree.successor(it.node)}
}

// Prev returns an iterator to the in-order predecessor of the current
// element.
//
// REQUIRES: !it.NegativeLimit().
func (it Iterator[H, K]) Prev() Iterator[H, K] {
	doAssert(!it.NegativeLimit())

	if it.Limit() {
		return it.tree.Max()
	}

	if pred := it.tree.predecessor(it.node); pred != nil {
		return Iterator[H, K]{it.tree, pred}
	}

	return Iterator[H, K]{it.tree, it.tree.leaf}
}

// successor returns the next node in order, or nil past the maximum. A
// right subtree contributes its leftmost node; otherwise the walk climbs
// while the node is a right child. No recursion, no auxiliary stack.
func (t *Tree[H, K]) successor(nd *node[H]) *node[H] {
	if nd.links[right] != t.leaf {
		nd = nd.links[right]
		for nd.links[left] != t.leaf {
			nd = nd.links[left]
		}

		return nd
	}

	parent := nd.parent
	for parent != t.leaf && nd == parent.links[right] {
		nd = parent
		parent = parent.parent
	}

	if parent == t.leaf {
		return nil
	}

	return parent
}

// predecessor is the mirror image of successor, or nil before the minimum.
func (t *Tree[H, K]) predecessor(nd *node[H]) *node[H] {
	if nd.links[left] != t.leaf {
		nd = nd.links[left]
		for nd.links[right] != t.leaf {
			nd = nd.links[right]
		}

		return nd
	}

	parent := nd.parent
	for parent != t.leaf && nd == parent.links[left] {
		nd = parent
		parent = parent.parent
	}

	if parent == t.leaf {
		return nil
	}

	return parent
}
