package ordtree

import (
	"bytes"
	"encoding/binary"

	"github.com/pierrec/lz4/v4"
)

// Hibernated column framing: one tag byte, then either the raw little-endian
// words or an LZ4 block of them.
const (
	blockRaw byte = 0
	blockLZ4 byte = 1
)

// compressWords compresses a column of packed words with LZ4. Incompressible
// columns are kept raw behind the tag byte.
func compressWords(data []word) []byte {
	raw := new(bytes.Buffer)

	writeErr := binary.Write(raw, binary.LittleEndian, data)
	if writeErr != nil {
		return nil
	}

	compressed := make([]byte, lz4.CompressBlockBound(raw.Len())+1)

	written, err := lz4.CompressBlock(raw.Bytes(), compressed[1:], nil)
	if err != nil || written == 0 || written >= raw.Len() {
		return append([]byte{blockRaw}, raw.Bytes()...)
	}

	compressed[0] = blockLZ4

	return compressed[:written+1]
}

// decompressWords reverses compressWords. result must be preallocated to the
// original column length.
func decompressWords(data []byte, result []word) {
	if len(data) == 0 {
		return
	}

	payload := data[1:]

	if data[0] == blockLZ4 {
		decompressed := make([]byte, len(result)*wordByteSize)

		_, err := lz4.UncompressBlock(payload, decompressed)
		if err != nil {
			return
		}

		payload = decompressed
	}

	readErr := binary.Read(bytes.NewReader(payload), binary.LittleEndian, result)
	if readErr != nil {
		return
	}
}
