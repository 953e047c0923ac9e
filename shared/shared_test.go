package shared

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/spacemeshos/sha256-simd"
	"github.com/stretchr/testify/require"
)

func TestChallengeFromMessage(t *testing.T) {
	r := require.New(t)
	digest := sha256.Sum256([]byte("message"))

	ch := ChallengeFromMessage([]byte("message"), 128)
	r.Len(ch, 128)
	r.Equal(digest[:], []byte(ch[:32]))
	r.Equal(make([]byte, 96), []byte(ch[32:]))

	ch = ChallengeFromMessage([]byte("message"), 16)
	r.Equal(digest[:16], []byte(ch))

	r.NotEqual(ChallengeFromMessage([]byte("other"), 32), ChallengeFromMessage([]byte("message"), 32))
}

func TestProofMetadata_Prime(t *testing.T) {
	m := &ProofMetadata{Modulus: big.NewInt(1019).Bytes(), ByteLen: 2}
	require.Equal(t, int64(1019), m.Prime().Int64())

	require.Zero(t, (&ProofMetadata{}).Prime().Sign())
}

func TestConfigMismatchError(t *testing.T) {
	err := fmt.Errorf("checking proof: %w", ConfigMismatchError{
		Param:    "Modulus",
		Expected: "23",
		Found:    "19",
		DataDir:  "/tmp/data",
	})

	var mismatch ConfigMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "Modulus", mismatch.Param)
	require.Equal(t, "checking proof: `Modulus` config mismatch; expected: 23, found: 19, datadir: /tmp/data", err.Error())
}
