package verifying

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/shared"
	"github.com/hyperhyperspace/pulsar/sloth"
)

func applyOpts(opts ...OptionFunc) (*option, error) {
	options := &option{
		logger:      zap.NewNop(),
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// Verify ensures the validity of a proof in respect to its metadata.
// It returns nil if the proof is valid or an error describing the failure, otherwise.
// A well-formed proof that fails the check wraps shared.ErrInvalidProof.
func Verify(p *shared.Proof, m *shared.ProofMetadata, opts ...OptionFunc) error {
	options, err := applyOpts(opts...)
	if err != nil {
		return err
	}
	return verify(p, m, options)
}

func verify(p *shared.Proof, m *shared.ProofMetadata, options *option) error {
	permutation, err := checkParams(p, m, options)
	if err != nil {
		return err
	}
	return checkOutput(permutation, p, m, options.logger)
}

// checkParams validates the metadata and the widths of the proof, and if
// set pins them against the expected config. Challenge and Output must be
// exactly ByteLen bytes.
func checkParams(p *shared.Proof, m *shared.ProofMetadata, options *option) (*sloth.Permutation, error) {
	if p == nil || m == nil {
		return nil, errors.New("invalid `proof` or `metadata`; expected: non-nil, given: nil")
	}

	prime := m.Prime()
	permutation, err := sloth.New(prime)
	if err != nil {
		return nil, err
	}
	if need := codec.ByteLen(prime); int(m.ByteLen) < need {
		return nil, fmt.Errorf("invalid `ByteLen`; expected: >= %d, given: %d", need, m.ByteLen)
	}
	if len(p.Challenge) != int(m.ByteLen) {
		return nil, fmt.Errorf("%w: challenge is %d bytes, expected %d", shared.ErrInvalidProof, len(p.Challenge), m.ByteLen)
	}
	if len(p.Output) != int(m.ByteLen) {
		return nil, fmt.Errorf("%w: output is %d bytes, expected %d", shared.ErrInvalidProof, len(p.Output), m.ByteLen)
	}

	if options.expected == nil {
		return permutation, nil
	}
	expected := options.expected
	if expectedPrime := options.expectedPrime(); expectedPrime.Cmp(prime) != 0 {
		return nil, shared.ConfigMismatchError{
			Param:    "Modulus",
			Expected: expectedPrime.String(),
			Found:    prime.String(),
			DataDir:  expected.DataDir,
		}
	}
	if uint(m.ByteLen) != expected.ByteLen {
		return nil, shared.ConfigMismatchError{
			Param:    "ByteLen",
			Expected: fmt.Sprintf("%d", expected.ByteLen),
			Found:    fmt.Sprintf("%d", m.ByteLen),
			DataDir:  expected.DataDir,
		}
	}
	if p.Iterations != expected.Iterations {
		return nil, shared.ConfigMismatchError{
			Param:    "Iterations",
			Expected: fmt.Sprintf("%d", expected.Iterations),
			Found:    fmt.Sprintf("%d", p.Iterations),
			DataDir:  expected.DataDir,
		}
	}
	return permutation, nil
}

func checkOutput(permutation *sloth.Permutation, p *shared.Proof, m *shared.ProofMetadata, logger *zap.Logger) error {
	ok, err := permutation.VerifyProofFromBytes(p.Iterations, p.Challenge, p.Output, int(m.ByteLen))
	if err != nil {
		return err
	}
	if !ok {
		logger.Debug("verifying: proof rejected", zap.Uint64("iterations", p.Iterations))
		return fmt.Errorf("%w: output does not permute back to the challenge after %d iterations", shared.ErrInvalidProof, p.Iterations)
	}

	logger.Debug("verifying: proof accepted", zap.Uint64("iterations", p.Iterations))
	return nil
}
