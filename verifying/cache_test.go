package verifying

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperhyperspace/pulsar/shared"
)

func TestCache(t *testing.T) {
	r := require.New(t)
	cfg := getTestConfig(t)
	proof, proofMetadata := generate(t, cfg, "cache")

	cache, err := NewCache(2)
	r.NoError(err)
	r.Equal(0, cache.Len())

	r.NoError(cache.Verify(proof, proofMetadata))
	r.Equal(1, cache.Len())
	r.NoError(cache.Verify(proof, proofMetadata))
	r.Equal(1, cache.Len())

	bad := *proof
	bad.Output = append([]byte(nil), proof.Output...)
	bad.Output[1] ^= 0x80
	r.ErrorIs(cache.Verify(&bad, proofMetadata), shared.ErrInvalidProof)
	r.Equal(1, cache.Len())

	// Cached proofs are still pinned against the expected config.
	other := cfg
	other.Iterations++
	var mismatch shared.ConfigMismatchError
	r.ErrorAs(cache.Verify(proof, proofMetadata, WithExpectedConfig(other)), &mismatch)
}

func TestCache_RejectsPaddedChallenge(t *testing.T) {
	r := require.New(t)
	cfg := getTestConfig(t)
	proof, proofMetadata := generate(t, cfg, "padded")

	cache, err := NewCache(4)
	r.NoError(err)
	r.NoError(cache.Verify(proof, proofMetadata))

	padded := *proof
	padded.Challenge = append(append(shared.Challenge(nil), proof.Challenge...), 0xde, 0xad)
	r.ErrorIs(cache.Verify(&padded, proofMetadata), shared.ErrInvalidProof)
	r.Equal(1, cache.Len())
}

func TestCache_KeyCoversParams(t *testing.T) {
	cfg := getTestConfig(t)
	proof, proofMetadata := generate(t, cfg, "key")

	other := *proof
	other.Iterations++
	require.NotEqual(t, cacheKey(proof, proofMetadata), cacheKey(&other, proofMetadata))

	m := *proofMetadata
	m.ByteLen++
	require.NotEqual(t, cacheKey(proof, proofMetadata), cacheKey(proof, &m))
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := NewCache(0)
	require.Error(t, err)
}
