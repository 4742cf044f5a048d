package bloom

import "encoding/binary"

// SingleHasher is a Bloom filter that simulates k hash functions by keying
// SipHash with (i, i) for hash function i. It computes k hashes per operation
// instead of two, and is mostly useful as a baseline for Filter.
type SingleHasher struct {
	partition
}

// NewSingleHasher creates a SingleHasher for n items with probability p.
func NewSingleHasher(n int, p float64) (*SingleHasher, error) {
	part, err := newPartition(n, p)
	if err != nil {
		return nil, err
	}
	return &SingleHasher{part}, nil
}

func (f *SingleHasher) index(i uint64, key []byte) uint64 {
	return i*f.m + SipHash{K0: i, K1: i}.Sum64(key)%f.m
}

// InsertBytes adds a key to the filter.
func (f *SingleHasher) InsertBytes(key []byte) {
	for i := uint64(0); i != f.k; i++ {
		f.bits.mustSet(f.index(i, key))
	}
}

// Insert adds a key to the filter.
func (f *SingleHasher) Insert(key string) { f.InsertBytes(toBytes(key)) }

// InsertUint64 adds the little-endian encoding of v to the filter.
func (f *SingleHasher) InsertUint64(v uint64) {
	var buf [wordBytes]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	f.InsertBytes(buf[:])
}

// ContainsBytes returns true if the key probably exists in the filter.
func (f *SingleHasher) ContainsBytes(key []byte) bool {
	for i := uint64(0); i != f.k; i++ {
		if !f.bits.mustGet(f.index(i, key)) {
			return false
		}
	}
	return true
}

// Contains returns true if the key probably exists in the filter.
func (f *SingleHasher) Contains(key string) bool { return f.ContainsBytes(toBytes(key)) }

// ContainsUint64 reports whether v probably exists in the filter.
func (f *SingleHasher) ContainsUint64(v uint64) bool {
	var buf [wordBytes]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return f.ContainsBytes(buf[:])
}
