package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare the store with the fixture",
		Long: `Read clients, projects and counters back and report every document that is
missing, unexpected or different from the fixture, every project pointing at an
absent client, and every counter that does not exceed its highest id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSeeder(cmd.Context(), func(ctx context.Context, svc *seed.Service) error {
				report, err := svc.Verify(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "clients=%d projects=%d counters=%d\n", report.Clients, report.Projects, report.Counters)
				for _, v := range report.Violations {
					fmt.Fprintln(out, v.String())
				}
				if !report.OK() {
					return fmt.Errorf("verification failed: %d violations", len(report.Violations))
				}
				fmt.Fprintln(out, "ok")
				return nil
			})
		},
	}
}
