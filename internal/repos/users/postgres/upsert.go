package users

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/cashinreward/internal/repos/users"
)

// Upsert writes the latest snapshot of a session user. The first journaled
// transaction creates the row; later ones overwrite the running totals.
func (r *usersRepo) Upsert(tx *sql.Tx, u users.Snapshot) error {
	_, err := tx.Exec(`
		INSERT INTO users (id, mobile, name, balance, total_earned, total_withdrawn)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			mobile          = EXCLUDED.mobile,
			name            = EXCLUDED.name,
			balance         = EXCLUDED.balance,
			total_earned    = EXCLUDED.total_earned,
			total_withdrawn = EXCLUDED.total_withdrawn,
			updated_at      = NOW()
	`, u.ID, u.Mobile, u.Name, u.Balance, u.TotalEarned, u.TotalWithdrawn)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}
