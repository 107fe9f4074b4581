// Package audit mirrors applied wallet transactions into Postgres.
// The session ledger stays the source of truth; nothing here is read back
// into it.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fastprodman/cashinreward/internal/infra/pgutils"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/repos/transactions"
	pgtransactions "github.com/fastprodman/cashinreward/internal/repos/transactions/postgres"
	"github.com/fastprodman/cashinreward/internal/repos/users"
	pgusers "github.com/fastprodman/cashinreward/internal/repos/users/postgres"
)

type Journal struct {
	db    *sql.DB
	users users.Users
	txns  transactions.Transactions
}

func New(dbx *sql.DB) *Journal {
	return &Journal{
		db:    dbx,
		users: pgusers.New(dbx),
		txns:  pgtransactions.New(dbx),
	}
}

// Record runs in a single DB transaction:
//
// 1) Upsert the user snapshot taken after tx was applied.
// 2) Insert tx (unique-violation -> transactions.ErrDuplicateTransaction).
func (j *Journal) Record(ctx context.Context, u ledger.User, tx ledger.Transaction) error {
	date, err := time.Parse(ledger.DateLayout, tx.Date)
	if err != nil {
		return fmt.Errorf("record transaction: parse date: %w", err)
	}

	err = pgutils.WithTx(ctx, j.db, func(dbtx *sql.Tx) error {
		err := j.users.Upsert(dbtx, users.Snapshot{
			ID:             u.ID,
			Mobile:         u.Mobile,
			Name:           u.Name,
			Balance:        u.Balance,
			TotalEarned:    u.TotalEarned,
			TotalWithdrawn: u.TotalWithdrawn,
		})
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		err = j.txns.Insert(dbtx, transactions.Row{
			TransactionID: tx.ID,
			UserID:        u.ID,
			Type:          string(tx.Type),
			Amount:        tx.Amount,
			Status:        string(tx.Status),
			Description:   tx.Description,
			Date:          date,
		})
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}

	return nil
}

// Recent returns up to limit journaled transactions for userID, newest first.
func (j *Journal) Recent(ctx context.Context, userID string, limit int) ([]ledger.Transaction, error) {
	rows, err := j.txns.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}

	out := make([]ledger.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, ledger.Transaction{
			ID:          r.TransactionID,
			Type:        ledger.TxType(r.Type),
			Amount:      r.Amount,
			Status:      ledger.TxStatus(r.Status),
			Description: r.Description,
			Date:        r.Date.Format(ledger.DateLayout),
		})
	}

	return out, nil
}

// Balance returns the last journaled balance for userID.
func (j *Journal) Balance(ctx context.Context, userID string) (int64, error) {
	b, err := j.users.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("journaled balance: %w", err)
	}

	return b, nil
}
