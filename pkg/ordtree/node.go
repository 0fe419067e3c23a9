package ordtree

// Children are addressed by direction so that the symmetric rebalancing
// cases can index with a direction bit instead of duplicating left/right
// variants.
const (
	left  = 0
	right = 1
)

// absentRef marks "no node" in hibernated link columns, where the sentinel
// cannot be referenced by slot index.
const absentRef = ^word(0)

// node wraps one caller-owned handle. The flags word packs the node's slot
// index in the arena table together with the color bit; the two are only
// ever read and written through the accessors below. The parent link is
// non-owning and exists to support non-recursive traversal and rotation.
type node[H any] struct {
	handle H
	links  [2]*node[H]
	parent *node[H]
	flags  word
}

func (n *node[H]) red() bool {
	return n.flags&redFlag != 0
}

func (n *node[H]) black() bool {
	return n.flags&redFlag == 0
}

func (n *node[H]) paintRed() {
	n.flags |= redFlag
}

func (n *node[H]) paintBlack() {
	n.flags &^= redFlag
}

func (n *node[H]) copyColor(src *node[H]) {
	n.flags = n.flags&^redFlag | src.flags&redFlag
}

func (n *node[H]) index() word {
	return n.flags &^ redFlag
}

func (n *node[H]) setIndex(idx word) {
	n.flags = idx | n.flags&redFlag
}

// dir reports which side of its parent the node hangs on.
func (n *node[H]) dir() int {
	if n == n.parent.links[right] {
		return right
	}

	return left
}

func doAssert(condition bool) {
	if !condition {
		panic("ordtree: internal assertion failed")
	}
}
