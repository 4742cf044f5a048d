// Package bloom implements Bloom filters backed by a packed bit array.
//
// The main type, Filter, follows "Less Hashing, Same Performance: Building a
// Better Bloom Filter" (Kirsch and Mitzenmacher): two real hash values a and b
// simulate any number of hash functions as gi(x) = a + i*b. The bit array is
// split into k regions of m bits, and hash function i only addresses region i.
//
// Filters are not safe for concurrent mutation. Callers that share one guard
// it with a sync.RWMutex: Contains under RLock, Insert under Lock.
package bloom

import (
	"encoding/binary"
	"fmt"
)

// partition holds the sizing and bit storage shared by every filter variant.
type partition struct {
	bits *BitArray
	k    uint64 // number of hash functions
	m    uint64 // bits per hash function
}

func newPartition(n int, p float64) (partition, error) {
	k, m, err := optimalSizing(n, p)
	if err != nil {
		return partition{}, err
	}
	bits, err := NewBitArray(k * m)
	if err != nil {
		return partition{}, err
	}
	return partition{bits: bits, k: k, m: m}, nil
}

// NumberOfHashers returns k, the number of simulated hash functions.
func (p *partition) NumberOfHashers() uint64 { return p.k }

// BitsPerHasher returns m, the size of each hash function's region.
func (p *partition) BitsPerHasher() uint64 { return p.m }

// BitArray returns a copy of the underlying bit array.
func (p *partition) BitArray() *BitArray { return p.bits.Clone() }

// ApproximateElementCount estimates how many distinct elements were inserted,
// from the current population count. The estimate assumes uniformly
// distributed hashes and is recomputed on every call, so it stays meaningful
// for filters produced by Union and Intersect.
func (p *partition) ApproximateElementCount() float64 {
	return approximateElementCount(p.k, p.m, p.bits.CountOnes())
}

// ApproximateCurrentFalsePositiveProbability returns the probability, in
// [0, 1], that Contains reports an element that was never inserted, given the
// current approximate element count.
func (p *partition) ApproximateCurrentFalsePositiveProbability() float64 {
	return approximateFalsePositiveProbability(p.k, p.m, p.ApproximateElementCount())
}

func (p *partition) sameShape(o *partition) bool {
	return p.k == o.k && p.m == o.m
}

// Filter is a Kirsch–Mitzenmacher Bloom filter with hash functions H1 and H2.
// Use two different hash functions, or the same one with different seeds.
type Filter[H1, H2 Hasher] struct {
	partition
	h1 H1
	h2 H2
}

// Default is the filter returned by New.
type Default = Filter[SipHash, XXHash]

// New creates a new Bloom filter for n items with probability p, using the
// hashers from DefaultHashers. p should be between 0 and 1 and indicate the
// probability of false positives wanted. n should be a positive integer
// describing the number of items in the filter.
func New(n int, p float64) (*Default, error) {
	h1, h2 := DefaultHashers()
	return NewWithHashers(n, p, h1, h2)
}

// NewWithHashers is like New but hashes with h1 and h2. The hashers, seeds
// included, become part of the filter's configuration: only filters built
// with equal hashers can be combined.
func NewWithHashers[H1, H2 Hasher](n int, p float64, h1 H1, h2 H2) (*Filter[H1, H2], error) {
	part, err := newPartition(n, p)
	if err != nil {
		return nil, err
	}
	return &Filter[H1, H2]{partition: part, h1: h1, h2: h2}, nil
}

// Hashers returns the filter's hash functions.
func (f *Filter[H1, H2]) Hashers() (H1, H2) { return f.h1, f.h2 }

func (f *Filter[H1, H2]) hash(key []byte) (a, b uint64) {
	return f.h1.Sum64(key), f.h2.Sum64(key)
}

// index is i*m + (a + i*b) mod m, with wrapping uint64 arithmetic.
func (f *Filter[H1, H2]) index(i, a, b uint64) uint64 {
	return i*f.m + (a+i*b)%f.m
}

// InsertBytes adds a key to the filter.
func (f *Filter[H1, H2]) InsertBytes(key []byte) {
	a, b := f.hash(key)
	for i := uint64(0); i != f.k; i++ {
		f.bits.mustSet(f.index(i, a, b))
	}
}

// Insert adds a key to the filter.
func (f *Filter[H1, H2]) Insert(key string) { f.InsertBytes(toBytes(key)) }

// InsertUint64 adds the little-endian encoding of v to the filter.
func (f *Filter[H1, H2]) InsertUint64(v uint64) {
	var buf [wordBytes]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	f.InsertBytes(buf[:])
}

// ContainsBytes returns true if the key probably exists in the filter. A false
// result is certain; a true result may be a false positive.
func (f *Filter[H1, H2]) ContainsBytes(key []byte) bool {
	a, b := f.hash(key)
	for i := uint64(0); i != f.k; i++ {
		if !f.bits.mustGet(f.index(i, a, b)) {
			return false
		}
	}
	return true
}

// Contains returns true if the key probably exists in the filter.
func (f *Filter[H1, H2]) Contains(key string) bool { return f.ContainsBytes(toBytes(key)) }

// ContainsUint64 reports whether v, encoded as by InsertUint64, probably
// exists in the filter.
func (f *Filter[H1, H2]) ContainsUint64(v uint64) bool {
	var buf [wordBytes]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return f.ContainsBytes(buf[:])
}

func (f *Filter[H1, H2]) String() string {
	return fmt.Sprintf("bloom.Filter{k: %d, m: %d, ones: %d}", f.k, f.m, f.bits.CountOnes())
}
