package ordtree

// Clone deep-copies the tree into a fresh arena sized to the element count.
// The clone shares the comparators and configuration but no storage; handles
// are copied as values.
func (t *Tree[H, K]) Clone() *Tree[H, K] {
	t.mustBeBooted()

	clone := New[H, K](t.cmp, t.keyCmp, t.Len())
	clone.arena.maxAutoGrow = t.arena.maxAutoGrow
	clone.HibernationThreshold = t.HibernationThreshold

	if t.root == t.leaf {
		return clone
	}

	nodeMap := make(map[*node[H]]*node[H], t.Len())

	for it := t.Min(); !it.Limit(); it = it.Next() {
		src := it.node
		dst := clone.arena.acquire(src.handle)
		dst.copyColor(src)
		nodeMap[src] = dst
	}

	translate := func(src *node[H]) *node[H] {
		if src == t.leaf {
			return clone.leaf
		}

		return nodeMap[src]
	}

	for src, dst := range nodeMap {
		dst.parent = translate(src.parent)
		dst.links[left] = translate(src.links[left])
		dst.links[right] = translate(src.links[right])
	}

	clone.root = nodeMap[t.root]

	return clone
}
