package shared

import "math/big"

// Proof is a sloth proof: Output is the result of permuting Challenge
// Iterations times. Both values are little-endian, ProofMetadata.ByteLen wide.
type Proof struct {
	Challenge  Challenge
	Output     []byte
	Iterations uint64
}

// ProofMetadata carries the public parameters a proof was generated under.
type ProofMetadata struct {
	// Modulus is the big-endian encoding of the prime.
	Modulus []byte
	ByteLen uint32
}

// Prime returns the modulus as an integer.
func (m *ProofMetadata) Prime() *big.Int {
	return new(big.Int).SetBytes(m.Modulus)
}
