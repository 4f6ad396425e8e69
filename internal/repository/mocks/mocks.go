package mocks

import (
	"context"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// DocumentStore is a mock for repository.DocumentStore.
type DocumentStore struct {
	mock.Mock
}

func (m *DocumentStore) InsertClients(ctx context.Context, clients []client.Client) error {
	args := m.Called(ctx, clients)
	return args.Error(0)
}

func (m *DocumentStore) InsertProjects(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *DocumentStore) InsertCounters(ctx context.Context, counters []counter.Counter) error {
	args := m.Called(ctx, counters)
	return args.Error(0)
}

func (m *DocumentStore) ListClients(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentStore) ListCounters(ctx context.Context) ([]counter.Counter, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]counter.Counter); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentStore) NextID(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *DocumentStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
