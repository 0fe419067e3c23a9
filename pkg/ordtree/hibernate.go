package ordtree

import "sync"

// bootCapacityNumerator and bootCapacityDenominator give rebooted arenas 3/2
// headroom over the active count.
const (
	bootCapacityNumerator   = 3
	bootCapacityDenominator = 2
)

// hibernatedArena holds the compressed state of an arena while its tree is
// hibernated. The topology is deinterleaved into one column per link field
// plus the flags words, each compressed independently; handles are opaque to
// the tree and stay resident as values.
type hibernatedArena[H any] struct {
	columns [4][]byte
	handles []H
	root    word
}

// Hibernate compresses the arena topology and releases the node bodies,
// including the free region beyond the active count. The tree cannot be used
// until Boot; Len stays observable. Trees whose capacity is below
// HibernationThreshold are left untouched. All iterators are invalidated.
func (t *Tree[H, K]) Hibernate() {
	if t.arena.hib != nil {
		panic("ordtree: cannot hibernate an already hibernated tree")
	}

	if len(t.arena.slots) < t.HibernationThreshold {
		return
	}

	used := t.arena.used
	handles := make([]H, used)

	columns := [4][]word{}
	for idx := range columns {
		columns[idx] = make([]word, used)
	}

	for idx, nd := range t.arena.slots[:used] {
		columns[0][idx] = t.ref(nd.parent)
		columns[1][idx] = t.ref(nd.links[left])
		columns[2][idx] = t.ref(nd.links[right])
		columns[3][idx] = nd.flags
		handles[idx] = nd.handle
	}

	hib := &hibernatedArena[H]{handles: handles, root: t.ref(t.root)}

	wg := &sync.WaitGroup{}
	wg.Add(len(columns))

	for idx, column := range columns {
		go func(colIdx int, col []word) {
			hib.columns[colIdx] = compressWords(col)

			wg.Done()
		}(idx, column)
	}

	wg.Wait()

	t.arena.slots = nil
	t.arena.hib = hib
	t.root = t.leaf
}

// Boot performs the opposite of Hibernate: it decompresses the columns and
// rebuilds the node bodies. Booting a tree that is not hibernated is a
// no-op.
func (t *Tree[H, K]) Boot() {
	hib := t.arena.hib
	if hib == nil {
		return
	}

	used := int(t.arena.used)

	columns := [4][]word{}

	wg := &sync.WaitGroup{}
	wg.Add(len(columns))

	for idx := range columns {
		go func(colIdx int) {
			columns[colIdx] = make([]word, used)
			decompressWords(hib.columns[colIdx], columns[colIdx])

			wg.Done()
		}(idx)
	}

	wg.Wait()

	capSize := used * bootCapacityNumerator / bootCapacityDenominator

	t.arena.hib = nil
	t.arena.slots = make([]*node[H], 0, capSize)
	t.arena.used = 0
	t.arena.reserve(used)
	t.arena.used = wordFromInt(used)

	slots := t.arena.slots
	deref := func(ref word) *node[H] {
		if ref == absentRef {
			return t.leaf
		}

		return slots[ref]
	}

	for idx, nd := range slots {
		nd.parent = deref(columns[0][idx])
		nd.links[left] = deref(columns[1][idx])
		nd.links[right] = deref(columns[2][idx])
		nd.flags = columns[3][idx]
		nd.handle = hib.handles[idx]
	}

	t.root = deref(hib.root)
}

// ref translates a node reference into its hibernated column encoding.
func (t *Tree[H, K]) ref(nd *node[H]) word {
	if nd == t.leaf {
		return absentRef
	}

	return nd.index()
}
