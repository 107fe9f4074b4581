package ledger

import "errors"

type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
	TxLifafa   TxType = "lifafa"
	TxReward   TxType = "reward"
	TxTask     TxType = "task"
)

type TxStatus string

const (
	StatusPending   TxStatus = "pending"
	StatusCompleted TxStatus = "completed"
	StatusFailed    TxStatus = "failed"
)

type LifafaDirection string

const (
	LifafaCreated LifafaDirection = "created"
	LifafaClaimed LifafaDirection = "claimed"
)

// DateLayout is the calendar date format used for transaction dates.
const DateLayout = "2006-01-02"

type Transaction struct {
	ID          string   `json:"id"`
	Type        TxType   `json:"type"`
	Amount      int64    `json:"amount"` // credit > 0, debit < 0
	Status      TxStatus `json:"status"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

type LifafaEntry struct {
	ID        string          `json:"id"`
	Direction LifafaDirection `json:"type"`
	Amount    int64           `json:"amount"`
	Code      string          `json:"code"`
	Date      string          `json:"date"`
}

type User struct {
	ID             string        `json:"id"`
	Mobile         string        `json:"mobile"`
	Name           string        `json:"name"`
	Avatar         string        `json:"avatar"`
	Balance        int64         `json:"balance"`
	TotalEarned    int64         `json:"totalEarned"`
	TotalWithdrawn int64         `json:"totalWithdrawn"`
	Transactions   []Transaction `json:"transactions"`
	LifafaHistory  []LifafaEntry `json:"lifafaHistory"`
}

// TxInput is what callers supply; ID and Date are filled in by the store.
type TxInput struct {
	Type        TxType
	Amount      int64
	Status      TxStatus
	Description string
}

func (u User) clone() User {
	out := u
	out.Transactions = append([]Transaction(nil), u.Transactions...)
	out.LifafaHistory = append([]LifafaEntry(nil), u.LifafaHistory...)

	return out
}

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCredentials = errors.New("empty credentials")
	ErrTaskDone         = errors.New("task already completed")
	ErrBalanceOverflow  = errors.New("balance overflow")
)
