package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// EnsureCollections creates the collection tables if they don't exist yet.
// Documents are stored whole as JSON next to their key column.
func (db *DB) EnsureCollections() error {
	schema := `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS counters (
    _id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL
);
`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create collections: %w", err)
	}

	return nil
}
