package cmd

import (
	"github.com/spf13/cobra"

	"verify.dev/pkg/verify/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the verification tests",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
