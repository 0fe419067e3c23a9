package ordtree

import "cmp"

// CompareFunc is a total order over stored handles.
type CompareFunc[H any] func(a, b H) int

// KeyCompareFunc compares an external key value against a stored handle. It
// must agree with the tree's CompareFunc: for any element e whose key is k,
// comparing k against any handle x must order the same way as comparing e
// against x.
type KeyCompareFunc[K, H any] func(key K, elem H) int

// Tree is an ordered index over externally owned records. H is the opaque
// handle type held by the nodes; K is the external key type used by the
// by-key lookups.
type Tree[H, K any] struct {
	cmp    CompareFunc[H]
	keyCmp KeyCompareFunc[K, H]
	root   *node[H]
	leaf   *node[H] // per-tree absence sentinel, always black
	arena  arena[H]

	// HibernationThreshold is the minimum allocated slot count for
	// Hibernate to engage. Zero hibernates unconditionally.
	HibernationThreshold int
}

// New creates a tree ordered by cmpElem with capacity preallocated node
// slots. keyCmp enables the by-key lookups and may be nil when those are not
// used.
func New[H, K any](cmpElem CompareFunc[H], keyCmp KeyCompareFunc[K, H], capacity int) *Tree[H, K] {
	leaf := &node[H]{}
	leaf.parent = leaf
	leaf.links[left] = leaf
	leaf.links[right] = leaf

	tree := &Tree[H, K]{cmp: cmpElem, keyCmp: keyCmp, root: leaf, leaf: leaf}
	tree.arena.leaf = leaf
	tree.arena.reserve(capacity)

	return tree
}

// NewOrdered creates a tree over an ordered element type, using the natural
// order for both the element and the key comparator.
func NewOrdered[H cmp.Ordered](capacity int) *Tree[H, H] {
	return New[H, H](cmp.Compare[H], cmp.Compare[H], capacity)
}

// Len returns the number of elements in the tree.
func (t *Tree[H, K]) Len() int {
	return int(t.arena.used)
}

// Cap returns the number of allocated node slots.
func (t *Tree[H, K]) Cap() int {
	if t.arena.hib != nil {
		return 0
	}

	return len(t.arena.slots)
}

// MaxAutoGrow returns the cap on slots grown by a single insertion, zero
// meaning unbounded.
func (t *Tree[H, K]) MaxAutoGrow() int {
	return t.arena.maxAutoGrow
}

// SetMaxAutoGrow caps how many slots a single insertion may grow the arena
// by. Zero restores unbounded doubling.
func (t *Tree[H, K]) SetMaxAutoGrow(n int) {
	t.arena.maxAutoGrow = n
}

// Reserve grows capacity by n slots so that the next n insertions allocate
// nothing.
func (t *Tree[H, K]) Reserve(n int) {
	t.mustBeBooted()
	t.arena.reserve(n)
}

// Shrink releases the capacity beyond the current element count.
func (t *Tree[H, K]) Shrink() {
	t.mustBeBooted()
	t.arena.shrink()
}

// Erase drops every element but keeps the allocated capacity. All iterators
// are invalidated.
func (t *Tree[H, K]) Erase() {
	t.mustBeBooted()
	t.arena.erase()
	t.root = t.leaf
}

// Insert adds h to the tree. When an element equal to h is already present
// the tree is not modified and Insert reports false with a zero iterator.
func (t *Tree[H, K]) Insert(h H) (bool, Iterator[H, K]) {
	t.mustBeBooted()

	if t.root == t.leaf {
		t.root = t.arena.acquire(h)
		t.root.paintBlack()

		return true, Iterator[H, K]{t, t.root}
	}

	x := t.root

	for {
		diff := t.cmp(h, x.handle)
		if diff == 0 {
			return false, Iterator[H, K]{}
		}

		dir := right
		if diff < 0 {
			dir = left
		}

		if x.links[dir] == t.leaf {
			nd := t.arena.acquire(h)
			nd.parent = x
			x.links[dir] = nd
			x = nd

			break
		}

		x = x.links[dir]
	}

	inserted := x
	t.insertFixup(x)

	return true, Iterator[H, K]{t, inserted}
}

// insertFixup restores the balance invariants after attaching a fresh red
// leaf: a red parent with a red uncle recolors and moves the violation up
// two levels; a black uncle takes one or two rotations and terminates.
func (t *Tree[H, K]) insertFixup(x *node[H]) {
	for x != t.root && x.parent.red() {
		dir := x.parent.dir()
		uncle := x.parent.parent.links[1-dir]

		if uncle.red() {
			x.parent.paintBlack()
			uncle.paintBlack()
			x.parent.parent.paintRed()
			x = x.parent.parent

			continue
		}

		if x.dir() != dir {
			// Inner child: rotate it outward first.
			x = x.parent
			t.rotate(x, dir)
		}

		x.parent.paintBlack()
		x.parent.parent.paintRed()
		t.rotate(x.parent.parent, 1-dir)
	}

	t.root.paintBlack()
}

// rotate demotes x to the dir side of its opposite child, which takes x's
// place; the displaced inner subtree moves under x. x must have a child on
// the side opposite dir.
func (t *Tree[H, K]) rotate(x *node[H], dir int) {
	y := x.links[1-dir]
	doAssert(y != t.leaf)

	x.links[1-dir] = y.links[dir]
	if y.links[dir] != t.leaf {
		y.links[dir].parent = x
	}

	y.parent = x.parent

	if x.parent == t.leaf {
		t.root = y
	} else {
		x.parent.links[x.dir()] = y
	}

	y.links[dir] = x
	x.parent = y
}

// Find reports whether an element equal to h is present, as an iterator to
// the live node, or a Limit iterator when absent.
func (t *Tree[H, K]) Find(h H) Iterator[H, K] {
	t.mustBeBooted()

	if nd := t.search(h); nd != nil {
		return Iterator[H, K]{t, nd}
	}

	return Iterator[H, K]{t, nil}
}

// Get returns the handle of the element whose key equals key.
func (t *Tree[H, K]) Get(key K) (H, bool) {
	t.mustBeBooted()

	if nd := t.searchKey(key); nd != nil {
		return nd.handle, true
	}

	var zero H

	return zero, false
}

// FindWithKey returns an iterator to the element whose key equals key, or a
// Limit iterator when absent.
func (t *Tree[H, K]) FindWithKey(key K) Iterator[H, K] {
	t.mustBeBooted()

	if nd := t.searchKey(key); nd != nil {
		return Iterator[H, K]{t, nd}
	}

	return Iterator[H, K]{t, nil}
}

// FindGE returns an iterator to the smallest element whose key compares
// greater than or equal to key, or a Limit iterator when every element
// precedes it.
func (t *Tree[H, K]) FindGE(key K) Iterator[H, K] {
	t.mustBeBooted()
	t.mustHaveKeyCmp()

	var candidate *node[H]

	x := t.root
	for x != t.leaf {
		if t.keyCmp(key, x.handle) <= 0 {
			candidate = x
			x = x.links[left]
		} else {
			x = x.links[right]
		}
	}

	return Iterator[H, K]{t, candidate}
}

// FindLE returns an iterator to the largest element whose key compares less
// than or equal to key, or a NegativeLimit iterator when every element
// follows it.
func (t *Tree[H, K]) FindLE(key K) Iterator[H, K] {
	t.mustBeBooted()
	t.mustHaveKeyCmp()

	var candidate *node[H]

	x := t.root
	for x != t.leaf {
		if t.keyCmp(key, x.handle) >= 0 {
			candidate = x
			x = x.links[right]
		} else {
			x = x.links[left]
		}
	}

	if candidate == nil {
		return Iterator[H, K]{t, t.leaf}
	}

	return Iterator[H, K]{t, candidate}
}

// Min returns an iterator to the in-order minimum element, or a Limit
// iterator when the tree is empty.
func (t *Tree[H, K]) Min() Iterator[H, K] {
	t.mustBeBooted()

	if t.root == t.leaf {
		return Iterator[H, K]{t, nil}
	}

	x := t.root
	for x.links[left] != t.leaf {
		x = x.links[left]
	}

	return Iterator[H, K]{t, x}
}

// Max returns an iterator to the in-order maximum element, or a
// NegativeLimit iterator when the tree is empty.
func (t *Tree[H, K]) Max() Iterator[H, K] {
	t.mustBeBooted()

	if t.root == t.leaf {
		return Iterator[H, K]{t, t.leaf}
	}

	x := t.root
	for x.links[right] != t.leaf {
		x = x.links[right]
	}

	return Iterator[H, K]{t, x}
}

func (t *Tree[H, K]) search(h H) *node[H] {
	x := t.root

	for x != t.leaf {
		diff := t.cmp(h, x.handle)
		if diff == 0 {
			return x
		}

		if diff < 0 {
			x = x.links[left]
		} else {
			x = x.links[right]
		}
	}

	return nil
}

func (t *Tree[H, K]) searchKey(key K) *node[H] {
	t.mustHaveKeyCmp()

	x := t.root

	for x != t.leaf {
		diff := t.keyCmp(key, x.handle)
		if diff == 0 {
			return x
		}

		if diff < 0 {
			x = x.links[left]
		} else {
			x = x.links[right]
		}
	}

	return nil
}

func (t *Tree[H, K]) mustBeBooted() {
	if t.arena.hib != nil {
		panic("ordtree: hibernated trees cannot be used")
	}
}

func (t *Tree[H, K]) mustHaveKeyCmp() {
	if t.keyCmp == nil {
		panic("ordtree: tree has no key comparator")
	}
}
