package mcp

import (
	"context"

	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/rpggio/docseed/internal/fixture"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// EmptyInput is the argument type of tools that take no parameters.
type EmptyInput struct{}

// SeedOutput is returned by seed_fixtures.
type SeedOutput struct {
	RunID    string `json:"run_id"`
	Clients  int    `json:"clients"`
	Projects int    `json:"projects"`
	Counters int    `json:"counters"`
}

// VerifyOutput is returned by verify_fixtures.
type VerifyOutput struct {
	OK         bool             `json:"ok"`
	Clients    int              `json:"clients"`
	Projects   int              `json:"projects"`
	Counters   int              `json:"counters"`
	Violations []seed.Violation `json:"violations"`
}

// NextIDInput selects the counter for next_id.
type NextIDInput struct {
	Counter string `json:"counter" jsonschema:"counter name: clients or projects"`
}

// NextIDOutput is returned by next_id.
type NextIDOutput struct {
	Counter string `json:"counter"`
	ID      int    `json:"id"`
}

func registerTools(server *sdkmcp.Server, seeder SeedService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_fixtures",
		Description: "List the clients, projects and counters that seed_fixtures writes",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, fixture.Set, error) {
		return nil, *fixture.Default(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "seed_fixtures",
		Description: "Insert the fixture clients, projects and counters into the configured store",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, SeedOutput, error) {
		res, err := seeder.Run(ctx)
		if err != nil {
			return nil, SeedOutput{}, MapError(err)
		}
		return nil, SeedOutput{
			RunID:    res.RunID,
			Clients:  res.Clients,
			Projects: res.Projects,
			Counters: res.Counters,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "verify_fixtures",
		Description: "Read the store back and report differences from the fixture",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, VerifyOutput, error) {
		report, err := seeder.Verify(ctx)
		if err != nil {
			return nil, VerifyOutput{}, MapError(err)
		}
		violations := report.Violations
		if violations == nil {
			violations = []seed.Violation{}
		}
		return nil, VerifyOutput{
			OK:         report.OK(),
			Clients:    report.Clients,
			Projects:   report.Projects,
			Counters:   report.Counters,
			Violations: violations,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "next_id",
		Description: "Allocate the next id for clients or projects from the counters collection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in NextIDInput) (*sdkmcp.CallToolResult, NextIDOutput, error) {
		id, err := seeder.NextID(ctx, in.Counter)
		if err != nil {
			return nil, NextIDOutput{}, MapError(err)
		}
		return nil, NextIDOutput{Counter: in.Counter, ID: id}, nil
	})
}
