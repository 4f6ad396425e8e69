package mcp

import (
	"context"
	"log/slog"

	"github.com/rpggio/docseed/internal/domain/seed"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SeedService defines seeding operations needed by MCP.
type SeedService interface {
	Run(ctx context.Context) (*seed.Result, error)
	Verify(ctx context.Context) (*seed.Report, error)
	NextID(ctx context.Context, name string) (int, error)
}

// Config contains server configuration.
type Config struct {
	Seeder  SeedService
	Version string
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "docseed",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerFixtureResource(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Seeder)

	return server
}
