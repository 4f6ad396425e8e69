package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/repository"
)

// DocumentStore implements repository.DocumentStore for SQLite
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// InsertClients inserts all clients in one transaction
func (s *DocumentStore) InsertClients(ctx context.Context, clients []client.Client) error {
	docs := make([]keyedDoc, 0, len(clients))
	for _, c := range clients {
		docs = append(docs, keyedDoc{key: c.ID, doc: c})
	}
	return s.insertDocs(ctx, repository.CollectionClients, docs)
}

// InsertProjects inserts all projects in one transaction
func (s *DocumentStore) InsertProjects(ctx context.Context, projects []project.Project) error {
	docs := make([]keyedDoc, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, keyedDoc{key: p.ID, doc: p})
	}
	return s.insertDocs(ctx, repository.CollectionProjects, docs)
}

// InsertCounters inserts all counters in one transaction
func (s *DocumentStore) InsertCounters(ctx context.Context, counters []counter.Counter) error {
	if len(counters) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO counters (_id, seq) VALUES (?, ?)`
	for _, c := range counters {
		if _, err := tx.ExecContext(ctx, query, c.Name, c.Seq); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("failed to insert counter %q: %w", c.Name, repository.ErrDuplicateKey)
			}
			return fmt.Errorf("failed to insert counter %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListClients returns all clients ordered by id
func (s *DocumentStore) ListClients(ctx context.Context) ([]client.Client, error) {
	var clients []client.Client
	err := s.listDocs(ctx, repository.CollectionClients, func(data []byte) error {
		var c client.Client
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		clients = append(clients, c)
		return nil
	})
	return clients, err
}

// ListProjects returns all projects ordered by id
func (s *DocumentStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	err := s.listDocs(ctx, repository.CollectionProjects, func(data []byte) error {
		var p project.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	return projects, err
}

// ListCounters returns all counters ordered by name
func (s *DocumentStore) ListCounters(ctx context.Context) ([]counter.Counter, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT _id, seq FROM counters ORDER BY _id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	defer rows.Close()

	var counters []counter.Counter
	for rows.Next() {
		var c counter.Counter
		if err := rows.Scan(&c.Name, &c.Seq); err != nil {
			return nil, fmt.Errorf("failed to scan counter: %w", err)
		}
		counters = append(counters, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counter rows: %w", err)
	}

	return counters, nil
}

// NextID atomically increments the named counter and returns the new value
func (s *DocumentStore) NextID(ctx context.Context, name string) (int, error) {
	query := `
		INSERT INTO counters (_id, seq) VALUES (?, 1)
		ON CONFLICT(_id) DO UPDATE SET seq = seq + 1
		RETURNING seq
	`

	var seq int
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to increment counter %q: %w", name, err)
	}

	return seq, nil
}

// Close closes the underlying database
func (s *DocumentStore) Close(_ context.Context) error {
	return s.db.Close()
}

type keyedDoc struct {
	key int
	doc any
}

func (s *DocumentStore) insertDocs(ctx context.Context, collection string, docs []keyedDoc) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// collection is one of the repository constants, never user input
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (?, ?)`, collection)
	for _, d := range docs {
		data, err := json.Marshal(d.doc)
		if err != nil {
			return fmt.Errorf("failed to encode %s document %d: %w", collection, d.key, err)
		}
		if _, err := tx.ExecContext(ctx, query, d.key, string(data)); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("failed to insert %s document %d: %w", collection, d.key, repository.ErrDuplicateKey)
			}
			return fmt.Errorf("failed to insert %s document %d: %w", collection, d.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *DocumentStore) listDocs(ctx context.Context, collection string, decode func([]byte) error) error {
	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY id`, collection)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return fmt.Errorf("failed to scan %s document: %w", collection, err)
		}
		if err := decode([]byte(data)); err != nil {
			return fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s rows: %w", collection, err)
	}

	return nil
}
