package seed

import (
	"context"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
)

// Store is the document store the seeder writes to and verifies against.
type Store interface {
	InsertClients(ctx context.Context, clients []client.Client) error
	InsertProjects(ctx context.Context, projects []project.Project) error
	InsertCounters(ctx context.Context, counters []counter.Counter) error
	ListClients(ctx context.Context) ([]client.Client, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListCounters(ctx context.Context) ([]counter.Counter, error)
	NextID(ctx context.Context, name string) (int, error)
}
