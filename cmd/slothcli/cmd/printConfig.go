package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/hyperhyperspace/pulsar/config"
)

// printConfigCmd represents the printConfig command.
var printConfigCmd = &cobra.Command{
	Use:   "printConfig",
	Short: "Print the resolved config and the available presets",
	Run: func(cmd *cobra.Command, args []string) {
		spew.Fdump(cmd.OutOrStdout(), cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "presets: %v\n", config.Presets())
	},
}

func init() {
	rootCmd.AddCommand(printConfigCmd)
}
