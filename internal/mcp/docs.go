package mcp

import (
	"context"

	"github.com/rpggio/docseed/internal/fixture"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const fixtureURI = "docseed://fixtures"

const serverInstructions = `docseed loads a fixed set of documents into an empty document store.

Collections:
- clients: {id, name, settings.code_scan_interval (ms)}
- projects: {id, client_id?, name}; project 1 has no client and id 5 is unused on purpose
- counters: {_id: "clients"|"projects", seq}; seq is the last id handed out

Tools:
1) list_fixtures: show what will be written (also readable at docseed://fixtures).
2) seed_fixtures: insert clients, projects, counters in that order. Fails with DUPLICATE_KEY
   if the store already holds any of the ids; earlier collections stay written.
3) verify_fixtures: read the store back and list differences from the fixture.
4) next_id: allocate the next clients/projects id from the counters.
`

func registerFixtureResource(server *sdkmcp.Server) {
	raw := fixture.Raw()

	server.AddResource(&sdkmcp.Resource{
		URI:         fixtureURI,
		Name:        "fixtures",
		Title:       "Seed fixtures",
		Description: "Clients, projects and counters written by seed_fixtures",
		MIMEType:    "application/yaml",
		Size:        int64(len(raw)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := fixtureURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/yaml",
				Text:     string(raw),
			}},
		}, nil
	})
}
