package ordtree

// arena owns the node storage of one tree and is never shared between tree
// instances. Node bodies are allocated individually and never move; slots is
// a table with one pointer per body, and every active node's stored index
// equals its table position. Releasing a node swaps its slot with the last
// active one, which keeps the active region contiguous at the head of the
// table and makes shrink deterministic regardless of insert/remove history.
//
// Because growth reallocates only the pointer table, live node references
// (and therefore iterators) survive growth.
type arena[H any] struct {
	slots       []*node[H]
	used        word
	maxAutoGrow int
	leaf        *node[H]
	hib         *hibernatedArena[H]
}

// reserve grows capacity by n zero-valued black slots, each assigned the
// next sequential index. Growth past the maximum representable slot index
// has no recovery path: a partially grown table would break the index
// invariant, so it aborts.
func (a *arena[H]) reserve(n int) {
	grow := wordFromInt(n)
	if grow > maxSlots-wordFromInt(len(a.slots)) {
		panic("ordtree: arena capacity would exceed the maximum representable slot index")
	}

	for i := 0; i < n; i++ {
		body := &node[H]{}
		body.setIndex(wordFromInt(len(a.slots)))
		a.slots = append(a.slots, body)
	}
}

// acquire hands out the first free slot, growing the table when none
// remain. Growth doubles the current capacity (or allocates a single slot
// from empty), capped by maxAutoGrow when that is set. The slot comes back
// red with cleared links, ready for attachment and rebalancing.
func (a *arena[H]) acquire(h H) *node[H] {
	if int(a.used) == len(a.slots) {
		grow := len(a.slots)
		if grow == 0 {
			grow = 1
		}

		if a.maxAutoGrow > 0 && grow > a.maxAutoGrow {
			grow = a.maxAutoGrow
		}

		a.reserve(grow)
	}

	nd := a.slots[a.used]
	a.used++
	nd.handle = h
	nd.parent = a.leaf
	nd.links[left] = a.leaf
	nd.links[right] = a.leaf
	nd.paintRed()

	return nd
}

// release returns a node to the free region by swapping its slot with the
// last active one; both nodes' stored indices are updated to match their new
// positions. The body is retained for reuse, but its handle is cleared so
// the arena does not pin caller data.
func (a *arena[H]) release(nd *node[H]) {
	a.used--
	last := a.slots[a.used]
	idx := nd.index()
	last.setIndex(idx)
	nd.setIndex(a.used)
	a.slots[idx] = last
	a.slots[a.used] = nd

	var zero H

	nd.handle = zero
	nd.parent = nil
	nd.links[left] = nil
	nd.links[right] = nil
	nd.paintBlack()
}

// erase drops every active node but keeps the allocated capacity.
func (a *arena[H]) erase() {
	var zero H

	for _, nd := range a.slots[:a.used] {
		nd.handle = zero
		nd.parent = nil
		nd.links[left] = nil
		nd.links[right] = nil
		nd.paintBlack()
	}

	a.used = 0
}

// shrink reallocates the table to exactly the active count, dropping the
// free node bodies.
func (a *arena[H]) shrink() {
	slots := make([]*node[H], a.used)
	copy(slots, a.slots[:a.used])
	a.slots = slots
}
