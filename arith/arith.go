// Package arith implements the modular arithmetic the sloth permutation is
// built on: reduction, exponentiation and square roots modulo a prime
// p ≡ 3 (mod 4).
//
// Every function returns a freshly allocated result in [0, m) and never
// modifies its arguments.
package arith

import "math/big"

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Mod returns x mod m in [0, m), for any sign of x.
func Mod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}

// Neg returns the additive inverse of x modulo m, (m - x) mod m.
func Neg(x, m *big.Int) *big.Int {
	z := new(big.Int).Neg(x)
	return z.Mod(z, m)
}

// Exp returns base^exponent mod modulus by binary exponentiation, scanning
// the exponent from its least significant bit. A modulus <= 1 yields 0.
// Negative exponents are treated as zero.
func Exp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) <= 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := Mod(base, modulus)

	n := exponent.BitLen()
	if exponent.Sign() <= 0 {
		n = 0
	}
	for i := 0; i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		// The square after the top bit is never used.
		if i+1 < n {
			b.Mul(b, b)
			b.Mod(b, modulus)
		}
	}

	return result
}
