package bloom

import (
	"fmt"
	"math"
)

// pow(log(2), 2)
const lnsq = 0.480453013918201424667102526326664971730552951594545586866864133623665382259834472199948263443926990932715597661358897481255128413358268503177555294880844290839184664798896404335252423673643658092881230886029639112807153031

// maxBits keeps the backing byte slice addressable on every platform.
const maxBits = float64(math.MaxInt)

// optimalSizing returns the number of hash functions k and the bits per hash
// function m for n items at false positive probability p.
//
//	bits = ceil(-(n ln p) / (ln 2)^2)
//	k    = max(1, round(bits/n * ln 2))
//	m    = ceil(bits / k)
func optimalSizing(n int, p float64) (k, m uint64, err error) {
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: an empty bloom filter is not defined (capacity %d)", ErrInvalidArgument, n)
	}
	if !(p > 0 && p < 1) {
		return 0, 0, fmt.Errorf("%w: false positive probability %v not in (0, 1)", ErrInvalidArgument, p)
	}

	n0 := float64(n)
	nbits := math.Ceil(-(n0 * math.Log(p)) / lnsq)
	hashes := math.Max(1, math.Round(nbits/n0*math.Ln2))
	perHash := math.Ceil(nbits / hashes)
	if hashes*perHash > maxBits {
		return 0, 0, fmt.Errorf("%w: %v bits exceed the addressable range", ErrInvalidArgument, hashes*perHash)
	}
	return uint64(hashes), uint64(perHash), nil
}

// approximateElementCount inverts the expected fill ratio of k regions of m
// bits holding ones set bits:
//
//	n* = -m ln(1 - ones/(k*m))
//
// A saturated array yields +Inf.
func approximateElementCount(k, m, ones uint64) float64 {
	return -float64(m) * math.Log(1-float64(ones)/float64(k*m))
}

// approximateFalsePositiveProbability is (1 - e^(-n/m))^k for n elements.
func approximateFalsePositiveProbability(k, m uint64, n float64) float64 {
	return math.Pow(1-math.Exp(-n/float64(m)), float64(k))
}
