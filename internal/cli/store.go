package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rpggio/docseed/internal/config"
	"github.com/rpggio/docseed/internal/domain/seed"
	"github.com/rpggio/docseed/internal/mongodb"
	"github.com/rpggio/docseed/internal/repository"
	"github.com/rpggio/docseed/internal/sqlite"
)

func openStore(ctx context.Context, cfg config.StoreConfig) (repository.DocumentStore, error) {
	switch cfg.Type {
	case repository.StoreSQLite:
		if err := ensureDBDir(cfg.URI); err != nil {
			return nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.URI)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureCollections(); err != nil {
			db.Close()
			return nil, err
		}
		return sqlite.NewDocumentStore(db), nil
	case repository.StoreMongoDB:
		return mongodb.Connect(ctx, cfg.URI, cfg.Database, cfg.Timeout)
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownStore, cfg.Type)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// withSeeder opens the configured store, runs fn under the store timeout and closes
// the store afterwards.
func (a *app) withSeeder(ctx context.Context, fn func(context.Context, *seed.Service) error) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Store.Timeout)
	defer cancel()

	store, err := openStore(ctx, a.cfg.Store)
	if err != nil {
		return err
	}
	defer a.closeStore(store)

	return fn(ctx, seed.NewService(store, a.logger))
}

func (a *app) closeStore(store repository.DocumentStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
}
