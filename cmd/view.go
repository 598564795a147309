package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"traitpack.dev/pkg/traitpack/internal/domain"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Summarize a previously exported traits document",
		Long: `Load an exported traits document and show its categories, trait counts
and embedded data sizes. Reads --output when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := m.Path(viper.GetString(outputConfigKey))
			if len(args) == 1 {
				input = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Input: input})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
