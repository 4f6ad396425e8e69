package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fixture clients, projects and counters",
		Long: `Insert the fixture clients, then projects, then counters, one bulk insert per
collection. The target collections are expected to be empty: if any id already
exists the command fails with a duplicate key error and leaves the collections
written before the failure in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := fixture.Default()
			if fixturesPath != "" {
				loaded, err := loadFixtureFile(fixturesPath)
				if err != nil {
					return err
				}
				set = loaded
			}

			return a.withSeeder(cmd.Context(), func(ctx context.Context, svc *seed.Service) error {
				res, err := svc.RunSet(ctx, set)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded clients=%d projects=%d counters=%d run_id=%s\n",
					res.Clients, res.Projects, res.Counters, res.RunID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&fixturesPath, "fixtures", "f", "", "Seed from this YAML file instead of the built-in fixture")
	return cmd
}

func loadFixtureFile(path string) (*fixture.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	set, err := fixture.Load(f)
	if err != nil {
		return nil, err
	}
	if err := set.Check(); err != nil {
		return nil, err
	}
	return set, nil
}
