// Package repotest provides a migrated, file-backed SQLite database for
// repository and service tests.
package repotest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/credvault/internal/server/config"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credvault/internal/server/storage"
)

// Config returns a default config pointing at a fresh SQLite file under t.TempDir.
func Config(t testing.TB) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDriver = config.DriverSQLite
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "credvault.db")
	return cfg
}

// OpenSQLite opens a fresh SQLite database with all migrations applied.
// The database is closed when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()
	return OpenWithConfig(t, Config(t))
}

// OpenWithConfig is OpenSQLite for a caller-adjusted config.
func OpenWithConfig(t testing.TB, cfg *config.Config) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	m, err := repomanager.New(cfg.DatabaseDriver)
	if err != nil {
		t.Fatalf("repository manager: %v", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}
