// Package services contains server-side business logic. CredentialService
// implements registration, login and the owner-scoped account operations, and
// is the single place where store failures are classified for callers.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/credvault/internal/common"
	"github.com/dmitrijs2005/credvault/internal/dbx"
	"github.com/dmitrijs2005/credvault/internal/logging"
	"github.com/dmitrijs2005/credvault/internal/server/auth"
	"github.com/dmitrijs2005/credvault/internal/server/config"
	"github.com/dmitrijs2005/credvault/internal/server/models"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/repomanager"
)

// Gate is the session gate the service relies on.
type Gate interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	End(ctx context.Context, token string) error
}

// CredentialService returns only common.ErrDuplicateUser,
// common.ErrInvalidCredentials, common.ErrNotAuthenticated,
// common.ErrStoreUnavailable and common.ErrorValidation, plus
// common.ErrorInternal from Register when the password scheme cannot hash.
type CredentialService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	gate           Gate
	scheme         auth.PasswordScheme
	acquireTimeout time.Duration
	log            logging.Logger
}

// NewCredentialService constructs a CredentialService.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, g Gate, scheme auth.PasswordScheme, cfg *config.Config, log logging.Logger) *CredentialService {
	if log == nil {
		log = logging.Nop{}
	}
	return &CredentialService{
		db:             db,
		repomanager:    m,
		gate:           g,
		scheme:         scheme,
		acquireTimeout: cfg.AcquireTimeout,
		log:            log.With("module", "credentials"),
	}
}

// Register creates a user and returns its id. It never starts a session.
func (s *CredentialService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, common.ErrorValidation
	}

	stored, err := s.scheme.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return 0, common.ErrorValidation
		}
		s.log.Error(ctx, "password hashing failed", "username", username, "error", err)
		return 0, common.ErrorInternal
	}

	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{UserName: username, Password: stored})
		return err
	})
	if err != nil {
		return 0, s.classify(ctx, "register", username, err)
	}

	s.log.Info(ctx, "user registered", "username", username, "id", user.ID)
	return user.ID, nil
}

// Login authenticates the user and returns a session token.
func (s *CredentialService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrInvalidCredentials
	}

	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	token, err := s.gate.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.log.Info(ctx, "login rejected", "username", username)
			return "", common.ErrInvalidCredentials
		}
		return "", s.classify(ctx, "login", username, err)
	}

	s.log.Info(ctx, "user logged in", "username", username)
	return token, nil
}

// ListAccounts returns the accounts owned by the session's user.
func (s *CredentialService) ListAccounts(ctx context.Context, token string) ([]models.Account, error) {
	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	user, err := s.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	accounts, err := s.repomanager.Accounts(s.db).ListByUser(ctx, user.ID)
	if err != nil {
		return nil, s.classify(ctx, "list accounts", user.UserName, err)
	}
	return accounts, nil
}

// AddAccount stores a credential for the session's user and returns its id.
func (s *CredentialService) AddAccount(ctx context.Context, token, name, password string) (int64, error) {
	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	user, err := s.currentUser(ctx, token)
	if err != nil {
		return 0, err
	}

	if name == "" {
		return 0, common.ErrorValidation
	}

	var account *models.Account
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		account, err = s.repomanager.Accounts(tx).Create(ctx, &models.Account{
			UserID:   user.ID,
			Name:     name,
			Password: password,
		})
		return err
	})
	if err != nil {
		return 0, s.classify(ctx, "add account", user.UserName, err)
	}

	s.log.Info(ctx, "account added", "username", user.UserName, "id", account.ID)
	return account.ID, nil
}

// DeleteAccount removes accountID if the session's user owns it. Deleting an
// id that does not exist or belongs to someone else succeeds without effect.
func (s *CredentialService) DeleteAccount(ctx context.Context, token string, accountID int64) error {
	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	user, err := s.currentUser(ctx, token)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Accounts(tx).Delete(ctx, accountID, user.ID)
	})
	if err != nil {
		return s.classify(ctx, "delete account", user.UserName, err)
	}

	s.log.Info(ctx, "account deleted", "username", user.UserName, "id", accountID)
	return nil
}

// Logout ends the session. It always succeeds; failures are only logged.
func (s *CredentialService) Logout(ctx context.Context, token string) {
	ctx, cancel := dbx.Bounded(ctx, s.acquireTimeout)
	defer cancel()

	if err := s.gate.End(ctx, token); err != nil {
		s.log.Warn(ctx, "failed to end session", "error", err)
	}
}

// currentUser resolves token to the stored user.
func (s *CredentialService) currentUser(ctx context.Context, token string) (*models.User, error) {
	username, err := s.gate.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return nil, common.ErrNotAuthenticated
		}
		return nil, s.classify(ctx, "resolve session", "", err)
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotAuthenticated
		}
		return nil, s.classify(ctx, "find session user", username, err)
	}
	return user, nil
}

// classify maps a store error onto the service's error set and logs the cause.
func (s *CredentialService) classify(ctx context.Context, op, username string, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		s.log.Info(ctx, op+" rejected", "username", username, "error", err)
		return common.ErrDuplicateUser
	case errors.Is(err, common.ErrorValidation):
		return common.ErrorValidation
	default:
		s.log.Error(ctx, op+" failed", "username", username, "error", err)
		return common.ErrStoreUnavailable
	}
}
