package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperhyperspace/pulsar/persistence"
	"github.com/hyperhyperspace/pulsar/proving"
	"github.com/hyperhyperspace/pulsar/shared"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a proof for a challenge",
	Long: `generate runs the configured number of sequential square roots over the challenge.
The proof is stored in the data directory and reused on later runs with the same
modulus, challenge and number of iterations. Ctrl+C aborts the generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := challengeFromFlags(cmd.Flags(), cfg.ByteLen)
		if err != nil {
			return err
		}
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		noPersist, err := cmd.Flags().GetBool("no-persist")
		if err != nil {
			return err
		}
		p, err := cfg.Prime()
		if err != nil {
			return err
		}

		if !force {
			proof, _, err := persistence.FetchProof(cfg.DataDir, p, ch, cfg.Iterations)
			switch {
			case err == nil:
				logger.Info("cli: using stored proof", zap.String("datadir", cfg.DataDir))
				printProof(cmd.OutOrStdout(), proof)
				return nil
			case !errors.Is(err, shared.ErrProofNotExist):
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		proof, proofMetadata, err := proving.Generate(ctx, ch, cfg, logger,
			proving.WithProgress(func(done, total uint64) {
				logger.Info("cli: progress", zap.Uint64("done", done), zap.Uint64("total", total))
			}),
		)
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info("cli: proof generation interrupted")
			return err
		case err != nil:
			return fmt.Errorf("proof generation error: %w", err)
		}

		if !noPersist {
			if err := persistence.PersistProof(cfg.DataDir, proof, proofMetadata); err != nil {
				return err
			}
			logger.Info("cli: proof stored", zap.String("datadir", cfg.DataDir))
		}

		printProof(cmd.OutOrStdout(), proof)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	bindChallengeFlags(generateCmd.Flags())
	generateCmd.Flags().Bool("force", false, "generate even if a stored proof exists")
	generateCmd.Flags().Bool("no-persist", false, "do not store the generated proof")
}
