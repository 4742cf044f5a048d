package bloom

import "fmt"

// EqConfiguration reports whether f and other were created with the same
// number of hash functions, bits per hash function and hashers (seeds
// included). Only then do their bit regions line up.
func (f *Filter[H1, H2]) EqConfiguration(other *Filter[H1, H2]) bool {
	return f.sameShape(&other.partition) && f.h1 == other.h1 && f.h2 == other.h2
}

// Union returns a new filter for which Contains is true for every element
// inserted into f or other. Its false positive probability is generally
// higher than that of either input. Neither input is modified.
func (f *Filter[H1, H2]) Union(other *Filter[H1, H2]) (*Filter[H1, H2], error) {
	if !f.EqConfiguration(other) {
		return nil, mismatch("union", &f.partition, &other.partition)
	}
	bits, err := f.bits.Union(other.bits)
	if err != nil {
		return nil, err
	}
	return f.derive(bits), nil
}

// Intersect returns a new filter for which Contains is true for every element
// inserted into both f and other. Neither input is modified.
//
// The result's false positive probability is at most that of f or other, but
// may be higher than that of a fresh filter holding only the common elements:
// bits set by different elements in each input survive the AND. For the same
// reason ApproximateElementCount and
// ApproximateCurrentFalsePositiveProbability may over-report on the result.
func (f *Filter[H1, H2]) Intersect(other *Filter[H1, H2]) (*Filter[H1, H2], error) {
	if !f.EqConfiguration(other) {
		return nil, mismatch("intersect", &f.partition, &other.partition)
	}
	bits, err := f.bits.Intersect(other.bits)
	if err != nil {
		return nil, err
	}
	return f.derive(bits), nil
}

func (f *Filter[H1, H2]) derive(bits *BitArray) *Filter[H1, H2] {
	return &Filter[H1, H2]{
		partition: partition{bits: bits, k: f.k, m: f.m},
		h1:        f.h1,
		h2:        f.h2,
	}
}

// EqConfiguration reports whether f and other have the same number of hash
// functions and bits per hash function.
func (f *SingleHasher) EqConfiguration(other *SingleHasher) bool {
	return f.sameShape(&other.partition)
}

// Union returns a new filter holding the bits of both f and other.
func (f *SingleHasher) Union(other *SingleHasher) (*SingleHasher, error) {
	if !f.EqConfiguration(other) {
		return nil, mismatch("union", &f.partition, &other.partition)
	}
	bits, err := f.bits.Union(other.bits)
	if err != nil {
		return nil, err
	}
	return &SingleHasher{partition{bits: bits, k: f.k, m: f.m}}, nil
}

// Intersect returns a new filter holding the bits common to f and other. The
// caveats of Filter.Intersect apply.
func (f *SingleHasher) Intersect(other *SingleHasher) (*SingleHasher, error) {
	if !f.EqConfiguration(other) {
		return nil, mismatch("intersect", &f.partition, &other.partition)
	}
	bits, err := f.bits.Intersect(other.bits)
	if err != nil {
		return nil, err
	}
	return &SingleHasher{partition{bits: bits, k: f.k, m: f.m}}, nil
}

func mismatch(op string, a, b *partition) error {
	if a.sameShape(b) {
		return fmt.Errorf("%w: unable to %s filters with different hashers", ErrConfigMismatch, op)
	}
	return fmt.Errorf("%w: unable to %s filters with k=%d m=%d and k=%d m=%d",
		ErrConfigMismatch, op, a.k, a.m, b.k, b.m)
}
