package transactions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrDuplicateTransaction = errors.New("duplicate transaction")

type Row struct {
	TransactionID string
	UserID        string
	Type          string
	Amount        int64
	Status        string
	Description   string
	Date          time.Time
}

type Transactions interface {
	Insert(tx *sql.Tx, row Row) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Row, error)
}
