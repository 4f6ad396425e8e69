package cli

import (
	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/rpggio/docseed/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve seed_fixtures, verify_fixtures, list_fixtures and next_id over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx, a.cfg.Store)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			server := mcp.NewServer(mcp.Config{
				Seeder:  seed.NewService(store, a.logger),
				Version: Version,
				Logger:  a.logger,
			})

			a.logger.Info("starting stdio transport", "store", a.cfg.Store.Type)
			// Run blocks until stdin closes or the context is canceled
			return server.Run(ctx, &sdkmcp.StdioTransport{})
		},
	}
}
