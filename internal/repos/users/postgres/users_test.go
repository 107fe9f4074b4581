package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/cashinreward/internal/infra/pgtestutil"
	"github.com/fastprodman/cashinreward/internal/repos/users"
)

func TestUsers_GetBalance_TableDriven(t *testing.T) {
	t.Parallel()

	type tc struct {
		name        string
		seed        func(db *sql.DB, t *testing.T)
		userID      string
		wantBalance int64
		wantErr     error
	}

	tests := []tc{
		{
			name: "ok_user_exists",
			seed: func(db *sql.DB, t *testing.T) {
				_, err := db.Exec(`INSERT INTO users (id, mobile, name, balance) VALUES ('USR1', '9999999999', 'User', 1250)`)
				if err != nil {
					t.Fatalf("seed user: %v", err)
				}
			},
			userID:      "USR1",
			wantBalance: 1250,
		},
		{
			name:    "error_user_not_found",
			userID:  "USR404",
			wantErr: users.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			if tt.seed != nil {
				tt.seed(db, t)
			}

			repo := New(db)

			got, err := repo.GetBalance(t.Context(), tt.userID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: want %v, got %v", tt.wantErr, err)
			}

			if got != tt.wantBalance {
				t.Fatalf("balance: want %d, got %d", tt.wantBalance, got)
			}
		})
	}
}

func TestUsers_Upsert(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	steps := []users.Snapshot{
		{ID: "USR7", Mobile: "9999999999", Name: "Alice", Balance: 100, TotalEarned: 100},
		{ID: "USR7", Mobile: "9999999999", Name: "Alice", Balance: 150, TotalEarned: 150},
		{ID: "USR7", Mobile: "9999999999", Name: "Alice", Balance: 50, TotalEarned: 150, TotalWithdrawn: 100},
	}

	for i, snap := range steps {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("begin tx %d: %v", i, err)
		}

		err = repo.Upsert(tx, snap)
		if err != nil {
			_ = tx.Rollback()
			t.Fatalf("upsert %d: %v", i, err)
		}

		err = tx.Commit()
		if err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}

		got, err := repo.GetBalance(ctx, snap.ID)
		if err != nil {
			t.Fatalf("get balance %d: %v", i, err)
		}
		if got != snap.Balance {
			t.Fatalf("step %d: want %d, got %d", i, snap.Balance, got)
		}
	}

	var earned, withdrawn int64

	err := db.QueryRowContext(ctx, `SELECT total_earned, total_withdrawn FROM users WHERE id = $1`, "USR7").
		Scan(&earned, &withdrawn)
	if err != nil {
		t.Fatalf("select totals: %v", err)
	}
	if earned != 150 || withdrawn != 100 {
		t.Fatalf("totals: want 150/100, got %d/%d", earned, withdrawn)
	}
}
