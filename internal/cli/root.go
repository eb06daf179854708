// Package cli implements the notekit command line interface. It is a
// client of the note library: commands build trees from definition
// files and call render, text extraction, chunking, and save.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notekit/internal/config"
)

var (
	verbose bool

	cfg config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "notekit",
	Short:         "Compose hierarchical notes and render them as text",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		cfg = config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and returns its error for main to
// report.
func Execute() error {
	return rootCmd.Execute()
}
