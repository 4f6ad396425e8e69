package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/rpggio/docseed/internal/repository"
	"github.com/rpggio/docseed/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedService_RunInsertsInOrder(t *testing.T) {
	ctx := context.Background()
	set := fixture.Default()

	var order []string
	store := &mocks.DocumentStore{}
	store.On("InsertClients", ctx, set.Clients).Return(nil).Run(func(mock.Arguments) { order = append(order, "clients") })
	store.On("InsertProjects", ctx, set.Projects).Return(nil).Run(func(mock.Arguments) { order = append(order, "projects") })
	store.On("InsertCounters", ctx, set.Counters).Return(nil).Run(func(mock.Arguments) { order = append(order, "counters") })

	svc := seed.NewService(store, nil)
	res, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"clients", "projects", "counters"}, order)
	require.NotEmpty(t, res.RunID)
	require.Equal(t, 4, res.Clients)
	require.Equal(t, 7, res.Projects)
	require.Equal(t, 2, res.Counters)
	store.AssertExpectations(t)
}

func TestSeedService_DuplicateStopsRun(t *testing.T) {
	ctx := context.Background()
	dup := errors.Join(errors.New("projects.id 2"), repository.ErrDuplicateKey)

	store := &mocks.DocumentStore{}
	store.On("InsertClients", ctx, mock.Anything).Return(nil)
	store.On("InsertProjects", ctx, mock.Anything).Return(dup)

	svc := seed.NewService(store, nil)
	res, err := svc.Run(ctx)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
	require.ErrorContains(t, err, "seeding projects")
	require.Equal(t, 4, res.Clients)
	require.Zero(t, res.Projects)
	require.Zero(t, res.Counters)
	store.AssertNotCalled(t, "InsertCounters", mock.Anything, mock.Anything)
}

func TestSeedService_RunSetNil(t *testing.T) {
	svc := seed.NewService(&mocks.DocumentStore{}, nil)
	_, err := svc.RunSet(context.Background(), nil)
	require.ErrorIs(t, err, seed.ErrNilFixture)

	_, err = svc.VerifySet(context.Background(), nil)
	require.ErrorIs(t, err, seed.ErrNilFixture)
}

func TestSeedService_VerifyMatching(t *testing.T) {
	ctx := context.Background()
	set := fixture.Default()

	store := &mocks.DocumentStore{}
	store.On("ListClients", ctx).Return(set.Clients, nil)
	store.On("ListProjects", ctx).Return(set.Projects, nil)
	store.On("ListCounters", ctx).Return(set.Counters, nil)

	report, err := seed.NewService(store, nil).Verify(ctx)
	require.NoError(t, err)
	require.True(t, report.OK(), "violations: %v", report.Violations)
	require.Equal(t, 4, report.Clients)
	require.Equal(t, 7, report.Projects)
	require.Equal(t, 2, report.Counters)
}

func TestSeedService_VerifyReportsDifferences(t *testing.T) {
	ctx := context.Background()
	set := fixture.Default()
	orphanOwner := 42

	clients := append([]client.Client(nil), set.Clients[1:]...) // client 1 missing
	clients[0].Name = "Pear"                                     // client 2 renamed
	projects := append(fixture.Default().Projects, project.Project{ID: 5, ClientID: &orphanOwner, Name: "ghost"})
	counters := []counter.Counter{{Name: counter.Clients, Seq: 5}, {Name: counter.Projects, Seq: 4}}

	store := &mocks.DocumentStore{}
	store.On("ListClients", ctx).Return(clients, nil)
	store.On("ListProjects", ctx).Return(projects, nil)
	store.On("ListCounters", ctx).Return(counters, nil)

	report, err := seed.NewService(store, nil).Verify(ctx)
	require.NoError(t, err)
	require.False(t, report.OK())

	var got []string
	for _, v := range report.Violations {
		got = append(got, v.String())
	}
	require.Contains(t, got, `clients[1]: missing`)
	require.Contains(t, got, `clients[2]: name "Pear", want "Apple"`)
	require.Contains(t, got, `projects[5]: unexpected document`)
	require.Contains(t, got, `projects[5]: client_id 42 has no client`)
	require.Contains(t, got, `projects[2]: client_id 1 has no client`)
	require.Contains(t, got, `counters[projects]: seq 4, want 9`)
	require.Contains(t, got, `counters[projects]: seq 4 does not exceed highest id 8`)
}

func TestSeedService_VerifyListError(t *testing.T) {
	ctx := context.Background()
	store := &mocks.DocumentStore{}
	store.On("ListClients", ctx).Return(nil, errors.New("boom"))

	_, err := seed.NewService(store, nil).Verify(ctx)
	require.ErrorContains(t, err, "listing clients")
}

func TestSeedService_NextID(t *testing.T) {
	ctx := context.Background()
	store := &mocks.DocumentStore{}
	store.On("NextID", ctx, counter.Projects).Return(10, nil)

	svc := seed.NewService(store, nil)
	id, err := svc.NextID(ctx, counter.Projects)
	require.NoError(t, err)
	require.Equal(t, 10, id)

	_, err = svc.NextID(ctx, "users")
	require.ErrorIs(t, err, counter.ErrUnknownCounter)
}
