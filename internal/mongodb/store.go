// Package mongodb stores the seeded collections in a MongoDB database.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DocumentStore implements repository.DocumentStore for MongoDB
type DocumentStore struct {
	conn     *mongo.Client
	clients  *mongo.Collection
	projects *mongo.Collection
	counters *mongo.Collection
}

// Connect dials uri, pings the primary and makes sure the natural id of clients and
// projects is unique.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*DocumentStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	conn, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	if err := conn.Ping(ctx, readpref.Primary()); err != nil {
		_ = conn.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := conn.Database(database)
	s := &DocumentStore{
		conn:     conn,
		clients:  db.Collection(repository.CollectionClients),
		projects: db.Collection(repository.CollectionProjects),
		counters: db.Collection(repository.CollectionCounters),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = conn.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

func (s *DocumentStore) ensureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unique"),
	}
	for _, coll := range []*mongo.Collection{s.clients, s.projects} {
		if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("failed to create unique index on %s.id: %w", coll.Name(), err)
		}
	}
	return nil
}

// InsertClients inserts all clients with one ordered InsertMany
func (s *DocumentStore) InsertClients(ctx context.Context, clients []client.Client) error {
	docs := make([]any, 0, len(clients))
	for _, c := range clients {
		docs = append(docs, c)
	}
	return insertMany(ctx, s.clients, docs)
}

// InsertProjects inserts all projects with one ordered InsertMany
func (s *DocumentStore) InsertProjects(ctx context.Context, projects []project.Project) error {
	docs := make([]any, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, p)
	}
	return insertMany(ctx, s.projects, docs)
}

// InsertCounters inserts all counters with one ordered InsertMany
func (s *DocumentStore) InsertCounters(ctx context.Context, counters []counter.Counter) error {
	docs := make([]any, 0, len(counters))
	for _, c := range counters {
		docs = append(docs, c)
	}
	return insertMany(ctx, s.counters, docs)
}

// ListClients returns all clients ordered by id
func (s *DocumentStore) ListClients(ctx context.Context) ([]client.Client, error) {
	var clients []client.Client
	if err := findAll(ctx, s.clients, "id", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// ListProjects returns all projects ordered by id
func (s *DocumentStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := findAll(ctx, s.projects, "id", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListCounters returns all counters ordered by name
func (s *DocumentStore) ListCounters(ctx context.Context) ([]counter.Counter, error) {
	var counters []counter.Counter
	if err := findAll(ctx, s.counters, "_id", &counters); err != nil {
		return nil, err
	}
	return counters, nil
}

// NextID atomically increments the named counter and returns the new value
func (s *DocumentStore) NextID(ctx context.Context, name string) (int, error) {
	res := s.counters.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var c counter.Counter
	if err := res.Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("failed to increment counter %q: %w", name, repository.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to increment counter %q: %w", name, err)
	}

	return c.Seq, nil
}

// Close disconnects the client
func (s *DocumentStore) Close(ctx context.Context) error {
	return s.conn.Disconnect(ctx)
}

func insertMany(ctx context.Context, coll *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}

	_, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to insert %s: %w: %w", coll.Name(), repository.ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to insert %s: %w", coll.Name(), err)
	}

	return nil
}

func findAll(ctx context.Context, coll *mongo.Collection, sortKey string, out any) error {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: sortKey, Value: 1}}))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", coll.Name(), err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return nil
}
