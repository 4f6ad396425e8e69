package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/spf13/cobra"
)

func newNextIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "next-id <clients|projects>",
		Short:     "Allocate the next id from a counter",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{counter.Clients, counter.Projects},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSeeder(cmd.Context(), func(ctx context.Context, svc *seed.Service) error {
				id, err := svc.NextID(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}
