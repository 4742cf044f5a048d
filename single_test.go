package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleHasherWithStrings(t *testing.T) {
	f, err := NewSingleHasher(1000, 0.001)
	require.NoError(t, err)
	require.Equal(t, uint64(10), f.NumberOfHashers())
	require.Equal(t, uint64(1438), f.BitsPerHasher())

	for _, s := range []string{"This", "is", "a", "simple", "test", "!"} {
		f.Insert(s)
	}
	require.True(t, f.Contains("a"))
	require.True(t, f.Contains("!"))
	require.False(t, f.Contains("Not"))
}

func TestSingleHasherNoFalseNegatives(t *testing.T) {
	f, err := NewSingleHasher(5000, 0.01)
	require.NoError(t, err)

	for v := uint64(0); v < 5000; v++ {
		f.InsertUint64(v * 7919)
	}
	for v := uint64(0); v < 5000; v++ {
		require.True(t, f.ContainsUint64(v*7919))
	}
	require.InEpsilon(t, 5000, f.ApproximateElementCount(), 0.05)
}

func TestSingleHasherAlgebra(t *testing.T) {
	a, err := NewSingleHasher(1000, 0.001)
	require.NoError(t, err)
	b, err := NewSingleHasher(1000, 0.001)
	require.NoError(t, err)

	a.Insert("left")
	a.Insert("both")
	b.Insert("right")
	b.Insert("both")

	u, err := a.Union(b)
	require.NoError(t, err)
	for _, s := range []string{"left", "both", "right"} {
		require.True(t, u.Contains(s))
	}

	x, err := a.Intersect(b)
	require.NoError(t, err)
	require.True(t, x.Contains("both"))
	require.False(t, x.Contains("left"))
	require.False(t, x.Contains("right"))

	c, err := NewSingleHasher(500, 0.001)
	require.NoError(t, err)
	require.False(t, a.EqConfiguration(c))
	_, err = a.Union(c)
	require.ErrorIs(t, err, ErrConfigMismatch)
	_, err = a.Intersect(c)
	require.ErrorIs(t, err, ErrConfigMismatch)
}

func TestNewSingleHasherRejectsBadInputs(t *testing.T) {
	_, err := NewSingleHasher(0, 0.5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
