package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/repository"
	"github.com/stretchr/testify/require"
)

// NewTestStore connects to DOCSEED_TEST_MONGO_URI using a throwaway database that is
// dropped on cleanup. Tests are skipped when the variable is unset.
func NewTestStore(t *testing.T) *DocumentStore {
	t.Helper()

	uri := os.Getenv("DOCSEED_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("DOCSEED_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database := fmt.Sprintf("docseed_test_%s", uuid.NewString()[:8])
	store, err := Connect(ctx, uri, database, 5*time.Second)
	require.NoError(t, err, "failed to connect to mongodb")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.conn.Database(database).Drop(ctx)
		_ = store.Close(ctx)
	})

	return store
}

func intPtr(n int) *int { return &n }

func TestDocumentStore_InsertAndList(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	clients := []client.Client{
		{ID: 1, Name: "Microsoft", Settings: client.Settings{CodeScanInterval: 10000}},
		{ID: 2, Name: "Apple", Settings: client.Settings{CodeScanInterval: 20000}},
	}
	projects := []project.Project{
		{ID: 1, Name: "Linux"},
		{ID: 2, ClientID: intPtr(1), Name: "Windows 3.11 for Workgroups"},
	}
	counters := []counter.Counter{{Name: counter.Clients, Seq: 5}, {Name: counter.Projects, Seq: 9}}

	require.NoError(t, store.InsertClients(ctx, clients))
	require.NoError(t, store.InsertProjects(ctx, projects))
	require.NoError(t, store.InsertCounters(ctx, counters))

	gotClients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Equal(t, clients, gotClients)

	gotProjects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Equal(t, projects, gotProjects)

	gotCounters, err := store.ListCounters(ctx)
	require.NoError(t, err)
	require.Equal(t, counters, gotCounters)
}

func TestDocumentStore_DuplicateKey(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertClients(ctx, []client.Client{{ID: 1, Name: "Microsoft"}}))
	err := store.InsertClients(ctx, []client.Client{{ID: 1, Name: "Overwrite"}})
	require.ErrorIs(t, err, repository.ErrDuplicateKey)

	require.NoError(t, store.InsertCounters(ctx, []counter.Counter{{Name: counter.Clients, Seq: 5}}))
	err = store.InsertCounters(ctx, []counter.Counter{{Name: counter.Clients, Seq: 1}})
	require.ErrorIs(t, err, repository.ErrDuplicateKey)

	got, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Equal(t, "Microsoft", got[0].Name)
}

func TestDocumentStore_NextID(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertCounters(ctx, []counter.Counter{{Name: counter.Projects, Seq: 9}}))

	id, err := store.NextID(ctx, counter.Projects)
	require.NoError(t, err)
	require.Equal(t, 10, id)

	id, err = store.NextID(ctx, counter.Clients)
	require.NoError(t, err)
	require.Equal(t, 1, id)
}
