package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastprodman/cashinreward/internal/repos/transactions"
)

var _ transactions.Transactions = (*transactionsRepo)(nil)

const uniqueViolation = "23505"

type transactionsRepo struct{ db *sql.DB }

func New(db *sql.DB) *transactionsRepo {
	return &transactionsRepo{db: db}
}

func (r *transactionsRepo) Insert(tx *sql.Tx, row transactions.Row) error {
	_, err := tx.Exec(`
		INSERT INTO transactions
			(transaction_id, user_id, type, amount, status, description, tx_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, row.TransactionID, row.UserID, row.Type, row.Amount, row.Status, row.Description, row.Date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return transactions.ErrDuplicateTransaction
		}

		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// ListByUser returns the newest journaled rows first.
func (r *transactionsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]transactions.Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id, user_id, type, amount, status, description, tx_date
		FROM transactions
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []transactions.Row
	for rows.Next() {
		var row transactions.Row

		err = rows.Scan(&row.TransactionID, &row.UserID, &row.Type, &row.Amount,
			&row.Status, &row.Description, &row.Date)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		out = append(out, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return out, nil
}
