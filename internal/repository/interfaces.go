package repository

import (
	"context"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
)

// Collection names shared by every backend.
const (
	CollectionClients  = "clients"
	CollectionProjects = "projects"
	CollectionCounters = "counters"
)

// Store types accepted in configuration.
const (
	StoreSQLite  = "sqlite"
	StoreMongoDB = "mongodb"
)

// DocumentStore persists the clients, projects and counters collections.
//
// Each Insert call is one bulk operation over its collection. A collision with an
// existing id (or _id for counters) returns an error wrapping ErrDuplicateKey.
// List calls return documents ordered by their key.
type DocumentStore interface {
	InsertClients(ctx context.Context, clients []client.Client) error
	InsertProjects(ctx context.Context, projects []project.Project) error
	InsertCounters(ctx context.Context, counters []counter.Counter) error

	ListClients(ctx context.Context) ([]client.Client, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListCounters(ctx context.Context) ([]counter.Counter, error)

	// NextID increments the named counter and returns the new value. A missing
	// counter starts at 1.
	NextID(ctx context.Context, name string) (int, error)

	Close(ctx context.Context) error
}
