package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notekit/internal/loader"
)

var textCmd = &cobra.Command{
	Use:   "text <definition.yaml>",
	Short: "Print the extracted plain text of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loader.Load(args[0])
		if err != nil {
			return fmt.Errorf("load definition: %w", err)
		}
		cmd.Println(n.TextContent())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}
