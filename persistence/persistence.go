// Package persistence stores generated proofs on disk so that a slow
// generation never has to be repeated for the same challenge.
package persistence

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/sha256-simd"

	"github.com/hyperhyperspace/pulsar/shared"
)

const (
	OwnerReadWriteExec = 0o700
	OwnerReadWrite     = 0o600
)

// record is the on-disk form of a proof and its metadata.
type record struct {
	Challenge  []byte
	Output     []byte
	Iterations uint64
	Modulus    []byte
	ByteLen    uint32
}

// GetModulusDir returns the directory holding everything produced under the
// given modulus. Proofs over different moduli never share a directory.
func GetModulusDir(datadir string, modulus *big.Int) string {
	digest := sha256.Sum256(modulus.Bytes())
	return filepath.Join(datadir, hex.EncodeToString(digest[:8]))
}

func GetProofsDir(datadir string, modulus *big.Int) string {
	return filepath.Join(GetModulusDir(datadir, modulus), "proofs")
}

// GetProofFilename names the proof file after a digest of the challenge, so
// the name length does not grow with the byte width. FetchProof checks the
// stored challenge against the requested one.
func GetProofFilename(datadir string, modulus *big.Int, challenge shared.Challenge, iterations uint64) string {
	digest := sha256.Sum256(challenge)
	c := hex.EncodeToString(digest[:])

	return filepath.Join(GetProofsDir(datadir, modulus), c+"-"+strconv.FormatUint(iterations, 10))
}

// PersistProof writes the proof under datadir, replacing any earlier proof
// for the same modulus, challenge and iteration count.
func PersistProof(datadir string, proof *shared.Proof, m *shared.ProofMetadata) error {
	rec := record{
		Challenge:  proof.Challenge,
		Output:     proof.Output,
		Iterations: proof.Iterations,
		Modulus:    m.Modulus,
		ByteLen:    m.ByteLen,
	}

	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, &rec); err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}

	prime := m.Prime()
	dir := GetProofsDir(datadir, prime)
	if err := os.MkdirAll(dir, OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}

	filename := GetProofFilename(datadir, prime, proof.Challenge, proof.Iterations)
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, w.Bytes(), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	return nil
}

// FetchProof reads a proof previously stored with PersistProof. It returns
// shared.ErrProofNotExist when there is none.
func FetchProof(datadir string, modulus *big.Int, challenge shared.Challenge, iterations uint64) (*shared.Proof, *shared.ProofMetadata, error) {
	filename := GetProofFilename(datadir, modulus, challenge, iterations)
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, shared.ErrProofNotExist
		}

		return nil, nil, fmt.Errorf("read file failure: %w", err)
	}

	rec := record{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &rec); err != nil {
		return nil, nil, fmt.Errorf("deserialization failure: %w", err)
	}

	if !bytes.Equal(rec.Challenge, challenge) || rec.Iterations != iterations || new(big.Int).SetBytes(rec.Modulus).Cmp(modulus) != 0 {
		return nil, nil, fmt.Errorf("proof file %s holds a different proof", filename)
	}

	proof := &shared.Proof{
		Challenge:  rec.Challenge,
		Output:     rec.Output,
		Iterations: rec.Iterations,
	}
	proofMetadata := &shared.ProofMetadata{
		Modulus: rec.Modulus,
		ByteLen: rec.ByteLen,
	}
	return proof, proofMetadata, nil
}
