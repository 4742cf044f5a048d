package bloom

import (
	"fmt"
	"strings"
)

const (
	wordBytes = 8 // bytes per uint64
	div8      = 3 // division by 8
	mod8      = 7 // remainder mod 8
)

// BitArray is a fixed-length packed bit vector. Bit i lives in byte i/8 under
// mask 1<<(i%8). The unused high bits of the final byte are always zero.
//
// A BitArray is not safe for concurrent mutation.
type BitArray struct {
	bytes  []byte
	length uint64
}

// NewBitArray returns an array of length bits, all unset.
func NewBitArray(length uint64) (*BitArray, error) {
	if length == 0 {
		return nil, fmt.Errorf("%w: bit array must contain at least one element", ErrInvalidArgument)
	}
	return &BitArray{
		bytes:  make([]byte, byteLen(length)),
		length: length,
	}, nil
}

// byteLen returns ceil(length/8).
func byteLen(length uint64) uint64 {
	return (length + mod8) >> div8
}

// Len returns the number of addressable bits.
func (b *BitArray) Len() uint64 { return b.length }

// Get reports whether bit i is set.
func (b *BitArray) Get(i uint64) (bool, error) {
	if i >= b.length {
		return false, b.outOfRange(i)
	}
	return b.isSet(i), nil
}

// Set sets bit i to v.
func (b *BitArray) Set(i uint64, v bool) error {
	if i >= b.length {
		return b.outOfRange(i)
	}
	mask := byte(1) << (i & mod8)
	if v {
		b.bytes[i>>div8] |= mask
	} else {
		b.bytes[i>>div8] &^= mask
	}
	return nil
}

func (b *BitArray) outOfRange(i uint64) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, b.length)
}

func (b *BitArray) isSet(i uint64) bool {
	return b.bytes[i>>div8]&(1<<(i&mod8)) != 0
}

// mustGet and mustSet are used by the filters, whose index derivation keeps
// every index below the length. A violation panics instead of touching a
// neighbouring bit.
func (b *BitArray) mustGet(i uint64) bool {
	if i >= b.length {
		panic(b.outOfRange(i))
	}
	return b.isSet(i)
}

func (b *BitArray) mustSet(i uint64) {
	if i >= b.length {
		panic(b.outOfRange(i))
	}
	b.bytes[i>>div8] |= 1 << (i & mod8)
}

// CountOnes returns the population count.
func (b *BitArray) CountOnes() uint64 { return popcount(b.bytes) }

// CountZeros returns the number of unset bits in [0, Len()).
func (b *BitArray) CountZeros() uint64 { return b.length - b.CountOnes() }

// Union returns a new array holding b | other.
func (b *BitArray) Union(other *BitArray) (*BitArray, error) {
	return b.combine(other, func(x, y byte) byte { return x | y })
}

// Intersect returns a new array holding b & other.
func (b *BitArray) Intersect(other *BitArray) (*BitArray, error) {
	return b.combine(other, func(x, y byte) byte { return x & y })
}

func (b *BitArray) combine(other *BitArray, op func(x, y byte) byte) (*BitArray, error) {
	if b.length != other.length {
		return nil, fmt.Errorf("%w: bit array lengths %d and %d", ErrConfigMismatch, b.length, other.length)
	}
	out := make([]byte, len(b.bytes))
	for i := range out {
		out[i] = op(b.bytes[i], other.bytes[i])
	}
	return &BitArray{bytes: out, length: b.length}, nil
}

// Clone returns an independent copy of b.
func (b *BitArray) Clone() *BitArray {
	return &BitArray{bytes: b.Bytes(), length: b.length}
}

// Bytes returns a copy of the backing bytes.
func (b *BitArray) Bytes() []byte {
	out := make([]byte, len(b.bytes))
	copy(out, b.bytes)
	return out
}

// String renders the bits in index order, e.g. "[0110]".
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(int(b.length) + 2)
	sb.WriteByte('[')
	for i := uint64(0); i < b.length; i++ {
		if b.isSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
