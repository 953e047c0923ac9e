package verifying

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hyperhyperspace/pulsar/shared"
)

// Item is a single proof submitted to VerifyBatch.
type Item struct {
	Proof    *shared.Proof
	Metadata *shared.ProofMetadata
}

// VerifyBatch verifies independent proofs concurrently, at most
// WithParallelism of them at a time (NumCPU by default). The i-th result is
// the outcome of Verify on items[i]. The returned error is only set when ctx
// is cancelled before every item was verified.
func VerifyBatch(ctx context.Context, items []Item, opts ...OptionFunc) ([]error, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	results := make([]error, len(items))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(options.parallelism)
	for i := range items {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verify(items[i].Proof, items[i].Metadata, options)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		options.logger.Info("verifying: batch interrupted")
		return nil, err
	}
	return results, nil
}
