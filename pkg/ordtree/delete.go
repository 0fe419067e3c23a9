package ordtree

// Delete removes the element equal to h. It reports whether an element was
// found and removed.
func (t *Tree[H, K]) Delete(h H) bool {
	t.mustBeBooted()

	nd := t.search(h)
	if nd == nil {
		return false
	}

	t.deleteNode(nd)

	return true
}

// DeleteWithKey removes the element whose key equals key. It reports whether
// an element was found and removed.
func (t *Tree[H, K]) DeleteWithKey(key K) bool {
	t.mustBeBooted()

	nd := t.searchKey(key)
	if nd == nil {
		return false
	}

	t.deleteNode(nd)

	return true
}

// DeleteWithIterator removes the element the iterator points at.
//
// REQUIRES: !it.Limit() && !it.NegativeLimit().
func (t *Tree[H, K]) DeleteWithIterator(it Iterator[H, K]) {
	t.mustBeBooted()
	doAssert(!it.Limit() && !it.NegativeLimit())
	t.deleteNode(it.node)
}

// deleteNode detaches z from the tree. When z has two children, the handle
// of its in-order successor is relocated into z and the successor node is
// the one physically detached, so the detached node always has at most one
// child. Iterators to the successor become invalid; an iterator to z stays
// live and observes the relocated handle.
func (t *Tree[H, K]) deleteNode(z *node[H]) {
	y := z
	if z.links[left] != t.leaf && z.links[right] != t.leaf {
		y = t.successor(z)
	}

	doAssert(y.links[left] == t.leaf || y.links[right] == t.leaf)

	// x is the (possibly absent) single child that replaces y. The sentinel
	// temporarily carries a parent link here so the fixup can navigate from
	// it; this is why the sentinel is per-tree state.
	x := y.links[right]
	if y.links[left] != t.leaf {
		x = y.links[left]
	}

	x.parent = y.parent

	if y.parent == t.leaf {
		t.root = x
	} else {
		y.parent.links[y.dir()] = x
	}

	if y != z {
		z.handle = y.handle
	}

	// Detaching a red node disturbs no black heights; its replacement is
	// already black. A detached black node leaves a deficit at x.
	if y.black() {
		t.deleteFixup(x)
	}

	t.arena.release(y)
}

// deleteFixup restores the balance invariants after a black node was
// detached, walking the double-black deficit up from x; wherever the walk
// stops, that node absorbs the deficit by turning black. An absent child is
// treated identically to a black one throughout.
func (t *Tree[H, K]) deleteFixup(x *node[H]) {
	for x != t.root && x.black() {
		dir := x.dir()
		w := x.parent.links[1-dir]

		if w.red() {
			w.paintBlack()
			x.parent.paintRed()
			t.rotate(x.parent, dir)
			w = x.parent.links[1-dir]
		}

		doAssert(w != t.leaf)

		if w.links[left].black() && w.links[right].black() {
			w.paintRed()
			x = x.parent

			continue
		}

		if w.links[1-dir].black() {
			// Far nephew black, near nephew red: rotate the sibling so the
			// red ends up on the far side.
			w.links[dir].paintBlack()
			w.paintRed()
			t.rotate(w, 1-dir)
			w = x.parent.links[1-dir]
		}

		w.copyColor(x.parent)
		x.parent.paintBlack()
		w.links[1-dir].paintBlack()
		t.rotate(x.parent, dir)

		break
	}

	x.paintBlack()
}
