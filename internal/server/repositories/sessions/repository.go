// Package sessions declares the server-side repository contract for login
// sessions kept in the database (the "db" session backend).
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/credvault/internal/server/models"
)

// Repository defines operations for activating, looking up and ending sessions.
type Repository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *models.Session) error

	// Find looks up a session by id and returns common.ErrorNotFound when it
	// is absent. Expiry is the caller's concern.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Deleting a non-existent session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session that has expired at now and reports
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
