package cmd

import (
	"github.com/spf13/cobra"

	"traitpack.dev/pkg/traitpack/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trait categories without exporting",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := traitsRootFromConfig()
			if err != nil {
				return err
			}

			exclude, err := excludeFromConfig()
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Root:    root,
				Exclude: exclude,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
