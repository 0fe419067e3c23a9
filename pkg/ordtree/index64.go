//go:build ordtree64

package ordtree

import "github.com/Sumatoshi-tech/ordtree/pkg/safeconv"

// word is the packed index/color storage unit. This build indexes up to
// 2^63-1 node slots at the cost of doubling per-node link storage.
type word = uint64

const (
	// redFlag occupies the top bit of the packed word. The remaining bits
	// hold the node's slot index; the two are only accessed jointly.
	redFlag word = 1 << 63

	// maxSlots is the largest representable slot index.
	maxSlots word = 1<<63 - 1

	wordByteSize = 8
)

func wordFromInt(v int) word {
	return safeconv.MustIntToUint64(v)
}
