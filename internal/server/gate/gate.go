// Package gate authenticates users and tracks their sessions.
//
// A session token is an HS256 JWT whose jti names a session kept in a Store.
// The signature keeps forged ids out; the Store is what makes a token
// revocable, so a token is only honoured while its session exists and has not
// expired.
package gate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/credvault/internal/common"
	"github.com/dmitrijs2005/credvault/internal/logging"
	"github.com/dmitrijs2005/credvault/internal/server/auth"
	"github.com/dmitrijs2005/credvault/internal/server/models"
	"github.com/google/uuid"
)

// UserFinder looks up a user by exact username. It returns
// common.ErrorNotFound for unknown users.
type UserFinder interface {
	GetUserByLogin(ctx context.Context, username string) (*models.User, error)
}

// Store keeps active sessions. The "db" backend satisfies it with the
// sessions repository, the "memory" backend with MemoryStore.
type Store interface {
	Create(ctx context.Context, session *models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Gate issues, resolves and ends sessions.
type Gate struct {
	users  UserFinder
	store  Store
	scheme auth.PasswordScheme
	secret []byte
	ttl    time.Duration
	log    logging.Logger
	now    func() time.Time
}

// New builds a Gate. A nil logger discards output.
func New(users UserFinder, store Store, scheme auth.PasswordScheme, secret []byte, ttl time.Duration, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop{}
	}
	return &Gate{
		users:  users,
		store:  store,
		scheme: scheme,
		secret: secret,
		ttl:    ttl,
		log:    log.With("module", "gate"),
		now:    time.Now,
	}
}

// Authenticate checks the credentials and starts a session, returning its token.
// Unknown users and wrong passwords both yield common.ErrInvalidCredentials.
// Store failures are returned wrapped.
func (g *Gate) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := g.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !g.scheme.Compare(user.Password, password) {
		return "", common.ErrInvalidCredentials
	}

	now := g.now()
	g.sweep(ctx, now)

	session := &models.Session{
		ID:        uuid.NewString(),
		UserName:  user.UserName,
		ExpiresAt: now.Add(g.ttl),
	}

	token, err := auth.GenerateToken(session.ID, session.UserName, g.secret, session.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	if err := g.store.Create(ctx, session); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	g.log.Debug(ctx, "session started", "username", session.UserName, "session_id", session.ID)
	return token, nil
}

// sweep drops sessions that expired without being ended. Abandoned sessions
// are otherwise only removed when their own token comes back.
func (g *Gate) sweep(ctx context.Context, now time.Time) {
	n, err := g.store.DeleteExpired(ctx, now)
	if err != nil {
		g.log.Warn(ctx, "failed to remove expired sessions", "error", err)
		return
	}
	if n > 0 {
		g.log.Debug(ctx, "expired sessions removed", "count", n)
	}
}

// Resolve returns the username bound to an active session.
// Tokens that are malformed, forged, ended or expired yield
// common.ErrNotAuthenticated. Store failures are returned wrapped.
func (g *Gate) Resolve(ctx context.Context, token string) (string, error) {
	// expiry is judged on the stored session below
	claims, err := auth.ParseTokenIgnoringExpiry(token, g.secret)
	if err != nil {
		return "", common.ErrNotAuthenticated
	}

	session, err := g.store.Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrNotAuthenticated
		}
		return "", fmt.Errorf("error searching session: %w", err)
	}

	if session.Expired(g.now()) {
		if err := g.store.Delete(ctx, session.ID); err != nil {
			g.log.Warn(ctx, "failed to remove expired session", "session_id", session.ID, "error", err)
		}
		return "", common.ErrNotAuthenticated
	}

	if session.UserName != claims.Subject {
		return "", common.ErrNotAuthenticated
	}

	return session.UserName, nil
}

// End invalidates the session behind token. Unknown or unreadable tokens are
// ignored.
func (g *Gate) End(ctx context.Context, token string) error {
	claims, err := auth.ParseTokenIgnoringExpiry(token, g.secret)
	if err != nil {
		return nil
	}

	if err := g.store.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	g.log.Debug(ctx, "session ended", "username", claims.Subject, "session_id", claims.ID)
	return nil
}
