package users_test

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/credvault/internal/common"
	"github.com/dmitrijs2005/credvault/internal/server/models"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/repotest"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := users.NewSQLiteRepository(db)
	ctx := context.Background()

	alice, err := repo.Create(ctx, &models.User{UserName: "alice", Password: "p1"})
	require.NoError(t, err)
	assert.NotZero(t, alice.ID)

	bob, err := repo.Create(ctx, &models.User{UserName: "bob", Password: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: alice.ID, UserName: "alice", Password: "p1"}, got)
}

func TestSQLiteRepository_DuplicateUsername(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := users.NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "alice", Password: "p1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", Password: "other"})
	require.ErrorIs(t, err, common.ErrDuplicateUser)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.Password, "existing user must not be overwritten")
}

func TestSQLiteRepository_UsernameIsCaseSensitive(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := users.NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "Alice", Password: "p1"})
	require.NoError(t, err)

	_, err = repo.GetUserByLogin(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", Password: "p2"})
	require.NoError(t, err, "usernames differing only by case are distinct")
}
