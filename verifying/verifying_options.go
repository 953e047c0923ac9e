package verifying

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/hyperhyperspace/pulsar/config"
)

type option struct {
	logger *zap.Logger

	// expected pins the parameters a proof must have been generated under.
	expected *config.Config

	// parallelism bounds the number of proofs VerifyBatch checks at once.
	parallelism int
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is nil")
	}
	if o.parallelism <= 0 {
		return fmt.Errorf("invalid `parallelism`; expected: > 0, given: %d", o.parallelism)
	}
	return nil
}

type OptionFunc func(*option) error

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}

// WithExpectedConfig rejects proofs whose modulus, byte width or iteration
// count differ from cfg.
func WithExpectedConfig(cfg config.Config) OptionFunc {
	return func(o *option) error {
		if _, err := cfg.Prime(); err != nil {
			return err
		}
		o.expected = &cfg
		return nil
	}
}

// WithParallelism sets how many proofs VerifyBatch verifies concurrently.
func WithParallelism(n int) OptionFunc {
	return func(o *option) error {
		if n <= 0 {
			return fmt.Errorf("invalid parallelism; expected: > 0, given: %d", n)
		}
		o.parallelism = n
		return nil
	}
}

func (o *option) expectedPrime() *big.Int {
	p, _ := o.expected.Prime()
	return p
}
