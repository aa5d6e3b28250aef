// Package users declares the credential store's user repository and its
// PostgreSQL and SQLite implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/credvault/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in its ID. A taken username yields
	// common.ErrDuplicateUser.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin matches the username exactly (case-sensitive) and
	// returns common.ErrorNotFound when there is no such user.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
