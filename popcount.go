package bloom

import (
	"encoding/binary"
	"math/bits"
)

// popcount returns the number of set bits in b.
func popcount(b []byte) uint64 {
	var n uint64
	for len(b) >= wordBytes {
		n += uint64(bits.OnesCount64(binary.LittleEndian.Uint64(b)))
		b = b[wordBytes:]
	}
	for _, c := range b {
		n += uint64(bits.OnesCount8(c))
	}
	return n
}
