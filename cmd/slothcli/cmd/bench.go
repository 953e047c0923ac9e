package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperhyperspace/pulsar/config"
	"github.com/hyperhyperspace/pulsar/proving"
	"github.com/hyperhyperspace/pulsar/shared"
	"github.com/hyperhyperspace/pulsar/verifying"
)

// benchCmd represents the bench command.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure generation and verification time per modulus preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := cmd.Flags().GetStringSlice("presets")
		if err != nil {
			return err
		}

		data := make([][]string, 0, len(presets))
		for i, name := range presets {
			benchCfg, err := config.Preset(name)
			if err != nil {
				return err
			}
			benchCfg.Iterations = cfg.Iterations
			benchCfg.ProgressInterval = cfg.ProgressInterval

			logger.Info("cli: bench starting", zap.String("preset", name), zap.Int("case", i+1), zap.Int("cases", len(presets)))
			row, err := benchCase(cmd.Context(), name, benchCfg)
			if err != nil {
				return err
			}
			data = append(data, row)
		}

		header := []string{"preset", "bytelen", "iterations", "generate", "verify", "ratio"}
		report(cmd.OutOrStdout(), header, data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringSlice("presets", config.Presets(), "modulus presets to benchmark")
}

func benchCase(ctx context.Context, name string, benchCfg config.Config) ([]string, error) {
	ch := shared.ChallengeFromMessage([]byte("bench "+name), int(benchCfg.ByteLen))

	t := time.Now()
	proof, proofMetadata, err := proving.Generate(ctx, ch, benchCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("proof generation error: %w", err)
	}
	eGen := time.Since(t)

	t = time.Now()
	if err := verifying.Verify(proof, proofMetadata, verifying.WithLogger(logger)); err != nil {
		return nil, fmt.Errorf("failed to verify bench proof: %w", err)
	}
	eVerify := time.Since(t)

	ratio := "-"
	if eVerify > 0 {
		ratio = fmt.Sprintf("%.0fx", float64(eGen)/float64(eVerify))
	}

	return []string{
		name,
		bytefmt.ByteSize(uint64(benchCfg.ByteLen)),
		strconv.FormatUint(benchCfg.Iterations, 10),
		eGen.Round(time.Millisecond).String(),
		eVerify.Round(time.Microsecond).String(),
		ratio,
	}, nil
}

func report(w io.Writer, header []string, data [][]string) {
	fmt.Fprintf(w, "\n\nBENCHMARKS: cpu=%v\n", cpuModel())

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}

func cpuModel() string {
	info, err := cpu.Info()
	if err != nil || len(info) == 0 {
		return "unknown"
	}
	return info[0].ModelName
}
