package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notekit/chunk"
	"github.com/dgallion1/notekit/internal/loader"
)

var (
	chunkSize    int
	chunkOverlap int
	chunkMin     int
)

var chunksCmd = &cobra.Command{
	Use:   "chunks <definition.yaml>",
	Short: "Split a note into breadcrumbed plain-text chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runChunks,
}

func init() {
	chunksCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "target chunk size in estimated tokens")
	chunksCmd.Flags().IntVar(&chunkOverlap, "overlap", 0, "token overlap between consecutive chunks")
	chunksCmd.Flags().IntVar(&chunkMin, "min", 0, "smallest chunk worth emitting")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	n, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}

	// Flags win over environment defaults.
	c := chunk.Config{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap, Min: cfg.MinChunk}
	if chunkSize > 0 {
		c.Size = chunkSize
	}
	if chunkOverlap > 0 {
		c.Overlap = chunkOverlap
	}
	if chunkMin > 0 {
		c.Min = chunkMin
	}

	chunks := chunk.Split(n, c)
	log.Debug("note chunked", "chunks", len(chunks), "size", c.Size)

	for _, ch := range chunks {
		cmd.Printf("[%d] %s\n", ch.Index, crumbStyle.Render(strings.Join(ch.Breadcrumb, " > ")))
		cmd.Println(ch.Text)
		cmd.Println()
	}
	return nil
}
