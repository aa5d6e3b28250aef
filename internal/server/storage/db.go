// Package storage opens the relational database behind the credential store
// and sizes its connection pool.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/credvault/internal/filex"
	"github.com/dmitrijs2005/credvault/internal/server/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	defaultPingTimeout = 5 * time.Second
	defaultConnMaxIdle = 2 * time.Minute
	defaultConnMaxLife = 30 * time.Minute
)

// sqlitePragmas are appended to SQLite DSNs that do not set any pragma
// themselves: foreign keys are off by default in SQLite, and concurrent
// writers should wait for the lock rather than fail immediately.
var sqlitePragmas = []string{"foreign_keys(1)", "busy_timeout(5000)", "journal_mode(WAL)"}

// Open connects to the configured database, applies the pool limits
// (PoolSize idle, PoolSize+MaxOverflow open) and verifies the connection.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	dsn := cfg.DatabaseDSN
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
	case config.DriverSQLite:
		if path, ok := sqliteFilePath(dsn); ok {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db open error: %w", err)
			}
		}
		dsn = withSQLitePragmas(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	db, err := sql.Open(cfg.DatabaseDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetConnMaxIdleTime(defaultConnMaxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLife)
	db.SetMaxIdleConns(cfg.PoolSize)
	db.SetMaxOpenConns(cfg.MaxOpenConns())

	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// sqliteFilePath extracts the database file from a SQLite DSN. In-memory
// databases have no file.
func sqliteFilePath(dsn string) (string, bool) {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return "", false
	}
	return path, true
}

func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
