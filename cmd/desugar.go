package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bigH/sorbet/internal/log"
	"github.com/bigH/sorbet/sorbet"
	"github.com/spf13/cobra"
)

var DesugarCmd = &cobra.Command{
	Use:          "desugar file.json",
	Short:        "Lower a serialized parse tree and print the result",
	RunE:         runDesugar,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int
var outPath *string

func init() {
	logLevel = DesugarCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	outPath = DesugarCmd.Flags().StringP("out", "o", "", "write the rendered tree to a file instead of stdout")
}

func runDesugar(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	res, err := sorbet.LowerFile(args[0])
	if err != nil {
		return fmt.Errorf("could not lower %s: %w", args[0], err)
	}
	if res.HasErrors() {
		_, _ = fmt.Fprint(os.Stderr, res.FormatDiagnostics())
	}
	if *outPath != "" {
		return os.WriteFile(*outPath, []byte(res.ShowTree()+"\n"), 0o644)
	}
	fmt.Println(res.ShowTree())
	return nil
}
