//go:build !( js || wasm)

package main

import (
	"os"

	"github.com/bigH/sorbet/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "sorbet [subcommand]",
	Short:        "sorbet\n a lowering pass from surface syntax to a small typed tree",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.DesugarCmd)
	rootCmd.AddCommand(cmd.ParseCmd)
}
