package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/credvault/internal/server/config"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNew_SelectsByDriver(t *testing.T) {
	m, err := New(config.DriverPostgres)
	require.NoError(t, err)
	assert.IsType(t, &PostgresRepositoryManager{}, m)

	m, err = New(config.DriverSQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, m)

	_, err = New("oracle")
	require.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	pg := NewPostgresRepositoryManager()
	assert.IsType(t, &users.PostgresRepository{}, pg.Users(db))
	assert.IsType(t, &accounts.PostgresRepository{}, pg.Accounts(db))
	assert.IsType(t, &sessions.PostgresRepository{}, pg.Sessions(db))

	lite := NewSQLiteRepositoryManager()
	assert.IsType(t, &users.SQLiteRepository{}, lite.Users(db))
	assert.IsType(t, &accounts.SQLiteRepository{}, lite.Accounts(db))
	assert.IsType(t, &sessions.SQLiteRepository{}, lite.Sessions(db))
}

func TestRunMigrations_PostgresUsesPostgresDir(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUp
	defer func() { gooseUp = orig }()

	var gotDialect goose.Dialect
	var files []string
	gooseUp = func(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
		gotDialect = dialect
		var err error
		files, err = fs.Glob(fsys, "*.sql")
		return err
	}

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, goose.DialectPostgres, gotDialect)
	assert.Contains(t, files, "00001_create_users_accounts.sql")
	assert.Contains(t, files, "00002_create_sessions.sql")
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUp
	defer func() { gooseUp = orig }()
	gooseUp = func(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
		return errors.New("boom")
	}

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	require.EqualError(t, err, "boom")
}

func TestRunMigrations_SQLiteCreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), db))
	require.NoError(t, m.RunMigrations(context.Background(), db), "second run is a no-op")

	for _, table := range []string{"users", "accounts", "sessions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}
