package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credvault/internal/dbx"
	"github.com/dmitrijs2005/credvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (user_id, account_name, account_password)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, account.UserID, account.Name, account.Password).Scan(&account.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Account, error) {

	query :=
		`SELECT id, user_id, account_name, account_password FROM accounts
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID int64, userID int64) error {

	query :=
		`DELETE FROM accounts
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, accountID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
