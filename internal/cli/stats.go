package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notekit/internal/loader"
	"github.com/dgallion1/notekit/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <definition.yaml>",
	Short: "Show content statistics for a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	n, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}

	s := stats.Collect(n)

	rows := []struct {
		label string
		value int
	}{
		{"components", s.Components},
		{"sections", s.Sections},
		{"headings", s.Headings},
		{"text blocks", s.TextBlocks},
		{"code blocks", s.CodeBlocks},
		{"diagrams", s.Diagrams},
		{"words", s.Words},
		{"est. tokens", s.EstTokens},
		{"max depth", s.MaxDepth},
	}

	cmd.Println(successStyle.Render(n.Title()))
	for _, row := range rows {
		cmd.Printf("%s %d\n", labelStyle.Render(row.label), row.value)
	}
	return nil
}
