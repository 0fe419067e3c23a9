//go:build !ordtree64

package ordtree

import "github.com/Sumatoshi-tech/ordtree/pkg/safeconv"

// word is the packed index/color storage unit. The default build indexes up
// to 2^31-1 node slots; the ordtree64 build tag widens the word to 64 bits.
type word = uint32

const (
	// redFlag occupies the top bit of the packed word. The remaining bits
	// hold the node's slot index; the two are only accessed jointly.
	redFlag word = 1 << 31

	// maxSlots is the largest representable slot index.
	maxSlots word = 1<<31 - 1

	wordByteSize = 4
)

func wordFromInt(v int) word {
	return safeconv.MustIntToUint32(v)
}
