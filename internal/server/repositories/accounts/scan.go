package accounts

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/credvault/internal/server/models"
)

func scanAccounts(rows *sql.Rows) ([]models.Account, error) {
	result := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
