package wallet

import (
	"errors"

	"github.com/fastprodman/cashinreward/internal/catalog"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

type flow string

const (
	flowAuth          flow = "auth"
	flowDeposit       flow = "deposit"
	flowWithdraw      flow = "withdraw"
	flowLifafa        flow = "lifafa_create"
	flowChannelLifafa flow = "channel_lifafa_create"
	flowClaim         flow = "lifafa_claim"
	flowChannelClaim  flow = "channel_lifafa_claim"
	flowTask          flow = "task_complete"
	flowTaskChannel   flow = "task_channel_add"
	flowAd            flow = "ad_post"
)

// Receipt is returned by every flow that appends a transaction.
type Receipt struct {
	Transaction ledger.Transaction `json:"transaction"`
	Balance     int64              `json:"balance"`
}

type LifafaReceipt struct {
	Receipt
	Code  string             `json:"code"`
	Entry ledger.LifafaEntry `json:"entry"`
}

type ClaimReceipt struct {
	Receipt
	Reward int64              `json:"reward"`
	Entry  ledger.LifafaEntry `json:"entry"`
}

type WithdrawRequest struct {
	Method      string
	Amount      int64
	Destination string
}

type LifafaRequest struct {
	Amount   int64
	Quantity int64
}

type TaskStatus string

const (
	TaskAvailable TaskStatus = "available"
	TaskCompleted TaskStatus = "completed"
)

type TaskView struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Reward int64      `json:"reward"`
	Status TaskStatus `json:"status"`
}

// TaskListing is a task channel accepted for promotion. Creation is
// simulated; the cost is not debited.
type TaskListing struct {
	ID           string `json:"id"`
	ChannelName  string `json:"channelName"`
	ChannelLink  string `json:"channelLink"`
	RewardAmount int64  `json:"rewardAmount"`
	TotalJoins   int64  `json:"totalJoins"`
	TotalCost    int64  `json:"totalCost"`
	Description  string `json:"description,omitempty"`
}

// AdListing is an accepted ad campaign. Like TaskListing, nothing is debited.
type AdListing struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Type           rules.AdType `json:"adType"`
	Budget         int64        `json:"budget"`
	DurationDays   int64        `json:"durationDays"`
	TargetLink     string       `json:"targetLink"`
	EstimatedReach int64        `json:"estimatedReach"`
}

type HistoryFilter string

const (
	FilterAll      HistoryFilter = "all"
	FilterDeposit  HistoryFilter = "deposit"
	FilterWithdraw HistoryFilter = "withdraw"
	FilterReward   HistoryFilter = "reward"
)

// reachPerUnit is the ad audience estimate per currency unit of budget.
const reachPerUnit = 10

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrTaskNotFound       = errors.New("task not found")
)

// PayoutFeed is the recent payouts board.
type PayoutFeed struct {
	TotalPaid int64            `json:"totalPaid"`
	Count     int              `json:"count"`
	Payouts   []catalog.Payout `json:"payouts"`
}
