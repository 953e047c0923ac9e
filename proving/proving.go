package proving

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/config"
	"github.com/hyperhyperspace/pulsar/shared"
	"github.com/hyperhyperspace/pulsar/sloth"
)

// Generate runs the sloth permutation over the challenge and returns the
// proof together with the parameters it was generated under.
//
// The chain is strictly sequential. ctx is checked between iterations, so a
// cancelled generation stops after the step in flight and returns ctx.Err().
func Generate(ctx context.Context, ch shared.Challenge, cfg config.Config, logger *zap.Logger, opts ...OptionFunc) (*shared.Proof, *shared.ProofMetadata, error) {
	options := &option{
		iterations:       cfg.Iterations,
		progressInterval: cfg.ProgressInterval,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p, err := cfg.Prime()
	if err != nil {
		return nil, nil, err
	}
	permutation, err := sloth.New(p)
	if err != nil {
		return nil, nil, err
	}

	byteLen := int(cfg.ByteLen)
	if len(ch) != byteLen {
		return nil, nil, fmt.Errorf("%w: challenge is %d bytes, expected %d", shared.ErrInvalidChallenge, len(ch), byteLen)
	}
	x, err := codec.DecodeLittleEndian(ch, byteLen, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding challenge: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	total := options.iterations
	logger.Info("proving: starting proof generation",
		zap.Uint64("iterations", total),
		zap.Int("modulus_bits", p.BitLen()),
	)

	start := time.Now()
	y, err := permutation.Iterate(x, total, func(i uint64, _ *big.Int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i%options.progressInterval != 0 {
			return nil
		}
		logger.Debug("proving: progress",
			zap.Uint64("done", i),
			zap.Uint64("total", total),
			zap.Duration("elapsed", time.Since(start)),
		)
		if options.progress != nil {
			options.progress(i, total)
		}
		return nil
	})
	if err != nil {
		logger.Info("proving: generation aborted", zap.Error(err))
		return nil, nil, err
	}

	output, err := codec.Encode(y, byteLen)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding proof: %w", err)
	}

	logger.Info("proving: generated proof",
		zap.Uint64("iterations", total),
		zap.Duration("elapsed", time.Since(start)),
	)

	proof := &shared.Proof{
		Challenge:  append(shared.Challenge(nil), ch...),
		Output:     output,
		Iterations: total,
	}
	proofMetadata := &shared.ProofMetadata{
		Modulus: p.Bytes(),
		ByteLen: uint32(byteLen),
	}
	return proof, proofMetadata, nil
}
