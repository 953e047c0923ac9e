package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperhyperspace/pulsar/persistence"
	"github.com/hyperhyperspace/pulsar/shared"
	"github.com/hyperhyperspace/pulsar/verifying"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proof for a challenge",
	Long: `verify checks that the output permutes back to the challenge after the configured
number of iterations. Without --output the proof stored in the data directory is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := challengeFromFlags(cmd.Flags(), cfg.ByteLen)
		if err != nil {
			return err
		}
		outputHex, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		p, err := cfg.Prime()
		if err != nil {
			return err
		}

		proofMetadata := &shared.ProofMetadata{
			Modulus: p.Bytes(),
			ByteLen: uint32(cfg.ByteLen),
		}
		var proof *shared.Proof
		if outputHex == "" {
			proof, proofMetadata, err = persistence.FetchProof(cfg.DataDir, p, ch, cfg.Iterations)
			if err != nil {
				return fmt.Errorf("no --output given and no stored proof: %w", err)
			}
		} else {
			output, err := decodeHex("output", outputHex, cfg.ByteLen)
			if err != nil {
				return err
			}
			proof = &shared.Proof{
				Challenge:  ch,
				Output:     output,
				Iterations: cfg.Iterations,
			}
		}

		if err := verifying.Verify(proof, proofMetadata, verifying.WithLogger(logger), verifying.WithExpectedConfig(cfg)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cli: proof is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	bindChallengeFlags(verifyCmd.Flags())
	verifyCmd.Flags().String("output", "", "proof output in hex, little-endian")
}
