package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dgallion1/notekit/internal/loader"
	"github.com/dgallion1/notekit/note"
)

var (
	renderOutput string
	renderStamp  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <definition.yaml>",
	Short: "Render a note definition to markdown-like text",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderStamp, "stamp", false, "add id and generation time to the note metadata")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	n, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}
	log.Debug("definition loaded", "path", args[0], "children", len(n.Children()))

	if renderStamp {
		stamp(n)
	}

	out := renderOutput
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		cmd.Print(n.Render(0))
		return nil
	}

	if err := n.Save(out); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	cmd.Println(successStyle.Render("saved " + out))
	return nil
}

func stamp(n *note.Note) {
	n.SetMetadata("id", uuid.New().String())
	n.SetMetadata("generated", time.Now().Format(time.RFC3339))
}
