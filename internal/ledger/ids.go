package ledger

import (
	"strings"

	"github.com/google/uuid"
)

// IDs produces identifiers for users, transactions and Lifafa entries.
type IDs interface {
	UserID() string
	TxID() string
}

// UUIDs backs identifiers with random v4 UUIDs. Collisions are not expected.
type UUIDs struct{}

func (UUIDs) UserID() string {
	return "USR" + Token(9)
}

func (UUIDs) TxID() string {
	return uuid.NewString()
}

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Token returns n uppercase base36 characters drawn from fresh UUIDs.
func Token(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for sb.Len() < n {
		u := uuid.New()
		for _, b := range u[:] {
			if sb.Len() == n {
				break
			}
			sb.WriteByte(tokenAlphabet[int(b)%len(tokenAlphabet)])
		}
	}

	return sb.String()
}
