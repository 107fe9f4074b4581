// Package rules holds the input checks every money-moving flow runs before
// touching the ledger. All functions are pure: they read their arguments
// and a Policy and return an error wrapping one of the sentinels below.
package rules

import "errors"

var (
	ErrRequired            = errors.New("required field missing")
	ErrBelowMinimum        = errors.New("below minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidDestination  = errors.New("invalid destination")
	ErrInvalidMobile       = errors.New("invalid mobile number")
	ErrWeakPassword        = errors.New("password too short")
	ErrUnknownMethod       = errors.New("unknown withdrawal method")
	ErrInvalidOption       = errors.New("invalid option")
	ErrAmountTooLarge      = errors.New("amount too large")
)

// Method is a withdrawal destination with its own minimum amount.
type Method struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	MinAmount   int64  `json:"minAmount" yaml:"min_amount"`
	Destination string `json:"destination" yaml:"destination"` // "upi" or "email"
}

type Policy struct {
	MinDeposit      int64 `yaml:"min_deposit"`
	MinLifafaAmount int64 `yaml:"min_lifafa_amount"`
	MinLifafaQty    int64 `yaml:"min_lifafa_quantity"`
	MinTaskReward   int64 `yaml:"min_task_reward"`
	MinTaskJoins    int64 `yaml:"min_task_joins"`
	MinAdBudget     int64 `yaml:"min_ad_budget"`
	MinAdDuration   int64 `yaml:"min_ad_duration_days"`
	ClaimRewardMin  int64 `yaml:"claim_reward_min"`
	ClaimRewardMax  int64 `yaml:"claim_reward_max"`
	PasswordMinLen  int   `yaml:"password_min_length"`
	MobileDigits    int   `yaml:"mobile_digits"`

	Methods []Method `yaml:"-"`
}

func Default() Policy {
	return Policy{
		MinDeposit:      50,
		MinLifafaAmount: 10,
		MinLifafaQty:    1,
		MinTaskReward:   1,
		MinTaskJoins:    1,
		MinAdBudget:     100,
		MinAdDuration:   1,
		ClaimRewardMin:  10,
		ClaimRewardMax:  100,
		PasswordMinLen:  6,
		MobileDigits:    10,
		Methods: []Method{
			{ID: "upi", Name: "UPI", MinAmount: 50, Destination: "upi"},
			{ID: "amazon", Name: "Amazon Gift Card", MinAmount: 100, Destination: "email"},
			{ID: "google", Name: "Google Play", MinAmount: 75, Destination: "email"},
			{ID: "flipkart", Name: "Flipkart Gift Card", MinAmount: 100, Destination: "email"},
		},
	}
}

func (p Policy) Method(id string) (Method, bool) {
	for _, m := range p.Methods {
		if m.ID == id {
			return m, true
		}
	}

	return Method{}, false
}
