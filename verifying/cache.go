package verifying

import (
	"encoding/binary"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/spacemeshos/sha256-simd"

	"github.com/hyperhyperspace/pulsar/shared"
)

const DefaultCacheSize = 1024

// Cache remembers proofs that already verified, so that a proof seen again
// costs a hash instead of t squarings. Rejected proofs are never cached.
type Cache struct {
	accepted *lru.ARCCache
}

func NewCache(size int) (*Cache, error) {
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("creating proof cache: %w", err)
	}
	return &Cache{accepted: arc}, nil
}

// Verify behaves like the package level Verify. Parameter checks, including
// WithExpectedConfig, run on every call.
func (c *Cache) Verify(p *shared.Proof, m *shared.ProofMetadata, opts ...OptionFunc) error {
	options, err := applyOpts(opts...)
	if err != nil {
		return err
	}
	permutation, err := checkParams(p, m, options)
	if err != nil {
		return err
	}

	key := cacheKey(p, m)
	if c.accepted.Contains(key) {
		return nil
	}
	if err := checkOutput(permutation, p, m, options.logger); err != nil {
		return err
	}
	c.accepted.Add(key, struct{}{})
	return nil
}

// Len returns the number of cached proofs.
func (c *Cache) Len() int {
	return c.accepted.Len()
}

func cacheKey(p *shared.Proof, m *shared.ProofMetadata) [32]byte {
	h := sha256.New()
	var n [8]byte
	for _, field := range [][]byte{m.Modulus, p.Challenge, p.Output} {
		binary.LittleEndian.PutUint64(n[:], uint64(len(field)))
		h.Write(n[:])
		h.Write(field)
	}
	binary.LittleEndian.PutUint64(n[:], uint64(m.ByteLen))
	h.Write(n[:])
	binary.LittleEndian.PutUint64(n[:], p.Iterations)
	h.Write(n[:])

	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}
