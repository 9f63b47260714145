// Package dbtest opens throwaway SQLite stores for tests.
package dbtest

import (
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"digicards/pkg/database"
	"digicards/pkg/models"
)

//go:embed testdata/catalog.json
var catalogJSON []byte

// Open returns a migrated, empty store backed by a file in t.TempDir.
func Open(t testing.TB) *database.Store {
	t.Helper()

	cfg := database.Config{
		Driver:       database.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "digicards.db"),
		QueryTimeout: 5 * time.Second,
	}
	store, err := database.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

// Seeded returns a store loaded with the fixture catalog.
func Seeded(t testing.TB) *database.Store {
	t.Helper()

	store := Open(t)
	if _, err := store.Seed(context.Background(), Catalog(t)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

// Catalog decodes the fixture catalog. Each call returns a fresh copy.
func Catalog(t testing.TB) models.Catalog {
	t.Helper()

	var catalog models.Catalog
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		t.Fatalf("decode fixture catalog: %v", err)
	}
	return catalog
}
