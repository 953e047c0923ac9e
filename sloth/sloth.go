// Package sloth implements the sloth verifiable delay function over a prime
// field with p ≡ 3 (mod 4).
//
// Generating a proof applies the modular square root t times in sequence,
// each step a full exponentiation that depends on the previous one.
// Verifying squares the proof t times, which is much cheaper. The generation
// loop must stay a plain sequential loop: the delay it enforces is the whole
// point of the construction.
package sloth

import (
	"fmt"
	"math/big"

	"github.com/hyperhyperspace/pulsar/arith"
	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/config"
	"github.com/hyperhyperspace/pulsar/shared"
)

// Permutation is the sloth permutation for a fixed modulus. It holds no
// mutable state and is safe for concurrent use.
type Permutation struct {
	p *big.Int
}

var system = &Permutation{p: config.SystemModulus()}

// New returns the permutation modulo p. The caller is responsible for p being
// a prime congruent to 3 mod 4; results are meaningless otherwise.
func New(p *big.Int) (*Permutation, error) {
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w, given: %s", shared.ErrDegenerateModulus, p)
	}
	return &Permutation{p: new(big.Int).Set(p)}, nil
}

// Default returns the permutation over the system modulus.
func Default() *Permutation {
	return system
}

// Modulus returns a copy of p.
func (s *Permutation) Modulus() *big.Int {
	return new(big.Int).Set(s.p)
}

// ByteLen is the minimal buffer width that holds every value modulo p.
func (s *Permutation) ByteLen() int {
	return codec.ByteLen(s.p)
}

// StepFunc observes the chain after each iteration. cur must not be
// modified. A non-nil error aborts the chain.
type StepFunc func(i uint64, cur *big.Int) error

// Iterate runs the slow chain: starting from x mod p it applies the modular
// square root t times, calling step (if not nil) after each one.
func (s *Permutation) Iterate(x *big.Int, t uint64, step StepFunc) (*big.Int, error) {
	if step == nil {
		return s.GenerateProof(t, x), nil
	}

	cur := arith.Mod(x, s.p)
	for i := uint64(1); i <= t; i++ {
		cur = arith.Sqrt(cur, s.p)
		if err := step(i, cur); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// GenerateProof returns the proof that x was permuted t times. t = 0 yields
// x mod p.
func (s *Permutation) GenerateProof(t uint64, x *big.Int) *big.Int {
	cur := arith.Mod(x, s.p)
	for i := uint64(0); i < t; i++ {
		cur = arith.Sqrt(cur, s.p)
	}
	return cur
}

// VerifyProof reports whether y is a valid proof for x after t iterations.
//
// y is squared t times; the result is mapped to its residue representative
// (undoing the substitution Sqrt makes for non-residues) and compared to
// both x and -x mod p, since either may be the legitimate preimage. Both y
// and p-y are therefore accepted. y outside [0, p) is rejected.
func (s *Permutation) VerifyProof(t uint64, x, y *big.Int) bool {
	if y.Sign() < 0 || y.Cmp(s.p) >= 0 {
		return false
	}

	cur := new(big.Int).Set(y)
	for i := uint64(0); i < t; i++ {
		cur.Mul(cur, cur)
		cur.Mod(cur, s.p)
	}
	cur = arith.CanonicalResidue(cur, s.p)

	xx := arith.Mod(x, s.p)
	return cur.Cmp(xx) == 0 || cur.Cmp(arith.Neg(xx, s.p)) == 0
}

// GenerateProofFromBytes decodes x from the first byteLen bytes of the
// buffer, generates the proof and returns it encoded in byteLen bytes.
func (s *Permutation) GenerateProofFromBytes(t uint64, x []byte, byteLen int) ([]byte, error) {
	xv, err := codec.DecodeLittleEndian(x, byteLen, 0)
	if err != nil {
		return nil, fmt.Errorf("decoding challenge: %w", err)
	}

	y, err := codec.Encode(s.GenerateProof(t, xv), byteLen)
	if err != nil {
		return nil, fmt.Errorf("encoding proof: %w", err)
	}
	return y, nil
}

// VerifyProofFromBytes is VerifyProof over byteLen wide little-endian buffers.
func (s *Permutation) VerifyProofFromBytes(t uint64, x, y []byte, byteLen int) (bool, error) {
	xv, err := codec.DecodeLittleEndian(x, byteLen, 0)
	if err != nil {
		return false, fmt.Errorf("decoding challenge: %w", err)
	}
	yv, err := codec.DecodeLittleEndian(y, byteLen, 0)
	if err != nil {
		return false, fmt.Errorf("decoding proof: %w", err)
	}
	return s.VerifyProof(t, xv, yv), nil
}

// GenerateProof runs Default().GenerateProof.
func GenerateProof(t uint64, x *big.Int) *big.Int {
	return system.GenerateProof(t, x)
}

// VerifyProof runs Default().VerifyProof.
func VerifyProof(t uint64, x, y *big.Int) bool {
	return system.VerifyProof(t, x, y)
}

// GenerateProofFromBytes runs Default().GenerateProofFromBytes.
func GenerateProofFromBytes(t uint64, x []byte, byteLen int) ([]byte, error) {
	return system.GenerateProofFromBytes(t, x, byteLen)
}

// VerifyProofFromBytes runs Default().VerifyProofFromBytes.
func VerifyProofFromBytes(t uint64, x, y []byte, byteLen int) (bool, error) {
	return system.VerifyProofFromBytes(t, x, y, byteLen)
}
