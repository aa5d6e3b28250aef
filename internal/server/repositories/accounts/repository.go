// Package accounts declares the repository for credentials owned by users.
// Every read and delete is scoped by the owner's user id.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/credvault/internal/server/models"
)

// Repository defines the owner-scoped operations on accounts.
type Repository interface {
	// Create inserts account for account.UserID and fills in its ID.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// ListByUser returns all accounts owned by userID; never nil.
	ListByUser(ctx context.Context, userID int64) ([]models.Account, error)

	// Delete removes the account only if it is owned by userID. A missing id
	// or an id owned by someone else is a no-op, not an error.
	Delete(ctx context.Context, accountID int64, userID int64) error
}
