package arith

import "math/big"

// IsQuadraticResidue reports whether x is a non-zero quadratic residue
// modulo the prime p, by Euler's criterion x^((p-1)/2) ≡ 1 (mod p).
func IsQuadraticResidue(x, p *big.Int) bool {
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	return Exp(x, e, p).Cmp(one) == 0
}

// CanonicalResidue picks the member of {x, p-x} (mod p) that is a quadratic
// residue. For p ≡ 3 (mod 4), -1 is a non-residue, so exactly one of the two
// qualifies whenever x ≢ 0; zero maps to zero.
//
// Sqrt applies this choice to its input, and sloth verification applies it
// once to the value recovered by repeated squaring. The two must stay in
// step or valid proofs stop verifying.
func CanonicalResidue(x, p *big.Int) *big.Int {
	v := Mod(x, p)
	if v.Cmp(zero) == 0 || IsQuadraticResidue(v, p) {
		return v
	}
	return Neg(v, p)
}

// Sqrt returns a square root of x modulo p, for p ≡ 3 (mod 4). When x is a
// non-residue the root of p-x is returned instead, so the result y satisfies
// y² ≡ ±x (mod p). The root is x^((p+1)/4), itself a residue.
func Sqrt(x, p *big.Int) *big.Int {
	e := new(big.Int).Add(p, one)
	e.Rsh(e, 2)
	return Exp(CanonicalResidue(x, p), e, p)
}

// IsSqrt reports whether y² ≡ x (mod p).
func IsSqrt(y, x, p *big.Int) bool {
	sq := new(big.Int).Mul(y, y)
	sq.Mod(sq, p)
	return sq.Cmp(Mod(x, p)) == 0
}
