package users

import (
	"context"
	"database/sql"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// Snapshot is the journaled view of a session user.
type Snapshot struct {
	ID             string
	Mobile         string
	Name           string
	Balance        int64
	TotalEarned    int64
	TotalWithdrawn int64
}

type Users interface {
	Upsert(tx *sql.Tx, u Snapshot) error
	GetBalance(ctx context.Context, userID string) (int64, error)
}
