package dbx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", dup)))
	assert.False(t, IsUniqueViolation(fk))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, username TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(), `INSERT INTO users (username) VALUES ('alice')`)
	require.NoError(t, err)
	_, err = db.ExecContext(context.Background(), `INSERT INTO users (username) VALUES ('alice')`)
	require.Error(t, err)

	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", err)))
}

func TestIsUniqueViolation_Other(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("unique violation, but only in words")))
}
