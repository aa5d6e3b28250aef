package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credvault/internal/dbx"
	"github.com/dmitrijs2005/credvault/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `INSERT INTO accounts (user_id, account_name, account_password) VALUES (?, ?, ?) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, account.UserID, account.Name, account.Password).Scan(&account.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Account, error) {
	query := `SELECT id, user_id, account_name, account_password FROM accounts WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func (r *SQLiteRepository) Delete(ctx context.Context, accountID int64, userID int64) error {
	query := `DELETE FROM accounts WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, accountID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
