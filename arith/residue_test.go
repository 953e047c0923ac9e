package arith

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// 128-bit prime, p ≡ 3 (mod 4).
const testPrime = "297010851887946822574352571639152315287"

func TestIsQuadraticResidue_SmallPrime(t *testing.T) {
	p := big.NewInt(23)
	residues := map[int64]bool{1: true, 2: true, 3: true, 4: true, 6: true, 8: true, 9: true, 12: true, 13: true, 16: true, 18: true}

	for x := int64(0); x < 23; x++ {
		require.Equal(t, residues[x], IsQuadraticResidue(big.NewInt(x), p), "x = %d", x)
	}

	// reduced internally
	require.True(t, IsQuadraticResidue(big.NewInt(25), p))
	require.False(t, IsQuadraticResidue(big.NewInt(23), p))
}

func TestIsQuadraticResidue_ExactlyOneOfPair(t *testing.T) {
	for _, p := range []int64{7, 11, 19, 23, 43, 1019} {
		pp := big.NewInt(p)
		for x := int64(1); x < p; x++ {
			a := IsQuadraticResidue(big.NewInt(x), pp)
			b := IsQuadraticResidue(big.NewInt(p-x), pp)
			require.True(t, a != b, "p = %d, x = %d", p, x)
		}
	}
}

func TestCanonicalResidue(t *testing.T) {
	r := require.New(t)
	p := big.NewInt(23)

	r.Equal(int64(2), CanonicalResidue(big.NewInt(2), p).Int64())
	r.Equal(int64(2), CanonicalResidue(big.NewInt(21), p).Int64())
	r.Equal(int64(0), CanonicalResidue(big.NewInt(0), p).Int64())
	r.Equal(int64(0), CanonicalResidue(big.NewInt(46), p).Int64())
	r.Equal(int64(4), CanonicalResidue(big.NewInt(-4), p).Int64())
}

func TestSqrt_SmallPrime(t *testing.T) {
	p := big.NewInt(23)

	for x := int64(0); x < 23; x++ {
		xx := big.NewInt(x)
		y := Sqrt(xx, p)
		require.True(t, y.Sign() >= 0 && y.Cmp(p) < 0)

		if x == 0 || IsQuadraticResidue(xx, p) {
			require.True(t, IsSqrt(y, xx, p), "x = %d, y = %d", x, y)
		} else {
			require.True(t, IsSqrt(y, Neg(xx, p), p), "x = %d, y = %d", x, y)
		}
		// the chosen root is itself a residue (or zero)
		require.True(t, x == 0 || IsQuadraticResidue(y, p))
	}
}

func TestSqrt_LargePrime(t *testing.T) {
	r := require.New(t)
	rnd := rand.New(rand.NewSource(42))

	p, ok := new(big.Int).SetString(testPrime, 10)
	r.True(ok)

	for i := 0; i < 100; i++ {
		x := new(big.Int).Rand(rnd, p)
		y := Sqrt(x, p)
		r.True(IsSqrt(y, CanonicalResidue(x, p), p))
		r.True(IsSqrt(y, x, p) || IsSqrt(y, Neg(x, p), p))
	}
}

func TestIsSqrt(t *testing.T) {
	p := big.NewInt(23)
	require.True(t, IsSqrt(big.NewInt(5), big.NewInt(2), p))
	require.True(t, IsSqrt(big.NewInt(18), big.NewInt(2), p))
	require.True(t, IsSqrt(big.NewInt(5), big.NewInt(25), p))
	require.False(t, IsSqrt(big.NewInt(5), big.NewInt(3), p))
}
