package bloom

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
)

// Hasher is a seedable 64-bit hash function. Sum64 must be a pure function of
// the receiver (its seed) and data: the same input always yields the same
// output. Hashers are compared with == to decide whether two filters share a
// configuration, so the seed has to live in the value itself.
type Hasher interface {
	comparable
	Sum64(data []byte) uint64
}

// SipHash is SipHash-2-4 keyed with (K0, K1).
type SipHash struct {
	K0, K1 uint64
}

func (h SipHash) Sum64(data []byte) uint64 { return siphash.Hash(h.K0, h.K1, data) }

// XXHash is XXH64 with an optional seed.
type XXHash struct {
	Seed uint64
}

func (h XXHash) Sum64(data []byte) uint64 {
	if h.Seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(h.Seed)
	d.Write(data)
	return d.Sum64()
}

// Murmur3 is the 64-bit half of MurmurHash3 x64_128.
type Murmur3 struct {
	Seed uint32
}

func (h Murmur3) Sum64(data []byte) uint64 { return murmur3.Sum64WithSeed(data, h.Seed) }

const (
	k0 = 17697571051839533707
	k1 = 15128385881502100741
)

// DefaultHashers returns the hasher pair used by New.
func DefaultHashers() (SipHash, XXHash) {
	return SipHash{K0: k0, K1: k1}, XXHash{}
}
