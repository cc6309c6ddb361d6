package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bigH/sorbet/frontend"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/internal/log"
	"github.com/spf13/cobra"
)

var ParseCmd = &cobra.Command{
	Use:          "parse file.json",
	Short:        "Check that a serialized parse tree is well formed",
	RunE:         runParse,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runParse(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %s: %w", args[0], err)
	}
	node, err := frontend.ParseToAST(names.NewTable(), data)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", args[0], err)
	}
	if node == nil {
		fmt.Println("empty document")
		return nil
	}
	fmt.Printf("ok: %s\n", node.NodeName())
	return nil
}
