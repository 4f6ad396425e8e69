package cli

import (
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/spf13/cobra"
)

func newFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the built-in fixture as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(fixture.Raw())
			return err
		},
	}
}
