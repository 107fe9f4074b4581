package rules

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func required(field, v string) error {
	if blank(v) {
		return fmt.Errorf("%w: %s", ErrRequired, field)
	}

	return nil
}

func (p Policy) Mobile(mobile string) error {
	if utf8.RuneCountInString(mobile) != p.MobileDigits {
		return fmt.Errorf("%w: enter a valid %d-digit mobile number", ErrInvalidMobile, p.MobileDigits)
	}

	for _, r := range mobile {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: enter a valid %d-digit mobile number", ErrInvalidMobile, p.MobileDigits)
		}
	}

	return nil
}

// Credentials checks the login form.
func (p Policy) Credentials(mobile, password string) error {
	err := p.Mobile(mobile)
	if err != nil {
		return err
	}

	if utf8.RuneCountInString(password) < p.PasswordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrWeakPassword, p.PasswordMinLen)
	}

	return nil
}

// Signup checks the registration form.
func (p Policy) Signup(mobile, password, name string) error {
	err := p.Credentials(mobile, password)
	if err != nil {
		return err
	}

	return required("name", name)
}

func (p Policy) Deposit(amount int64) error {
	if amount < p.MinDeposit {
		return fmt.Errorf("%w: minimum deposit is %d", ErrBelowMinimum, p.MinDeposit)
	}

	return nil
}

func affordable(cost, balance int64) error {
	if cost > balance {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientBalance, cost, balance)
	}

	return nil
}

// product multiplies two non-negative amounts, rejecting results that do
// not fit in int64.
func product(a, b int64) (int64, error) {
	if a > 0 && b > 0 && a > math.MaxInt64/b {
		return 0, fmt.Errorf("%w: %d × %d", ErrAmountTooLarge, a, b)
	}

	return a * b, nil
}

// Withdrawal checks method minimum, balance and destination in that order.
func (p Policy) Withdrawal(methodID string, amount, balance int64, destination string) (Method, error) {
	m, ok := p.Method(methodID)
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, methodID)
	}

	if amount < m.MinAmount {
		return Method{}, fmt.Errorf("%w: minimum withdrawal is %d", ErrBelowMinimum, m.MinAmount)
	}

	err := affordable(amount, balance)
	if err != nil {
		return Method{}, err
	}

	if !strings.Contains(destination, "@") {
		if m.Destination == "upi" {
			return Method{}, fmt.Errorf("%w: enter a valid UPI ID", ErrInvalidDestination)
		}

		return Method{}, fmt.Errorf("%w: enter a valid email", ErrInvalidDestination)
	}

	return m, nil
}

// Lifafa checks a plain envelope and returns its total cost.
func (p Policy) Lifafa(amount, quantity, balance int64) (int64, error) {
	if amount < p.MinLifafaAmount {
		return 0, fmt.Errorf("%w: minimum amount is %d", ErrBelowMinimum, p.MinLifafaAmount)
	}

	if quantity < p.MinLifafaQty {
		return 0, fmt.Errorf("%w: minimum quantity is %d", ErrBelowMinimum, p.MinLifafaQty)
	}

	total, err := product(amount, quantity)
	if err != nil {
		return 0, err
	}

	err = affordable(total, balance)
	if err != nil {
		return 0, err
	}

	return total, nil
}

type GameType string

const (
	GameNone    GameType = "none"
	GameDice    GameType = "dice"
	GameToss    GameType = "toss"
	GameScratch GameType = "scratch"
)

type ChannelLifafa struct {
	Title         string
	PerUserAmount int64
	TotalUsers    int64
	ChannelName   string
	RedirectLink  string
	Game          GameType
}

// ChannelLifafa checks a channel envelope and returns its total cost.
func (p Policy) ChannelLifafa(in ChannelLifafa, balance int64) (int64, error) {
	for _, f := range []struct{ name, v string }{
		{"title", in.Title},
		{"channel name", in.ChannelName},
		{"redirect link", in.RedirectLink},
	} {
		err := required(f.name, f.v)
		if err != nil {
			return 0, err
		}
	}

	switch in.Game {
	case "", GameNone, GameDice, GameToss, GameScratch:
	default:
		return 0, fmt.Errorf("%w: game type %q", ErrInvalidOption, in.Game)
	}

	return p.Lifafa(in.PerUserAmount, in.TotalUsers, balance)
}

func (p Policy) Claim(code string) error {
	return required("lifafa code", code)
}

func (p Policy) ChannelClaim(mobile, code string) error {
	err := p.Mobile(mobile)
	if err != nil {
		return err
	}

	return p.Claim(code)
}

// ClaimReward draws a uniform reward in [ClaimRewardMin, ClaimRewardMax].
func (p Policy) ClaimReward(rng *rand.Rand) int64 {
	span := p.ClaimRewardMax - p.ClaimRewardMin + 1
	if span <= 1 {
		return p.ClaimRewardMin
	}

	if rng == nil {
		return p.ClaimRewardMin + rand.Int64N(span)
	}

	return p.ClaimRewardMin + rng.Int64N(span)
}

type TaskChannel struct {
	ChannelName  string
	ChannelLink  string
	RewardAmount int64
	TotalJoins   int64
}

// TaskChannel checks a task listing and returns its total cost.
func (p Policy) TaskChannel(in TaskChannel, balance int64) (int64, error) {
	err := required("channel name", in.ChannelName)
	if err != nil {
		return 0, err
	}

	err = required("channel link", in.ChannelLink)
	if err != nil {
		return 0, err
	}

	if in.RewardAmount < p.MinTaskReward {
		return 0, fmt.Errorf("%w: reward per join must be at least %d", ErrBelowMinimum, p.MinTaskReward)
	}

	if in.TotalJoins < p.MinTaskJoins {
		return 0, fmt.Errorf("%w: total joins must be at least %d", ErrBelowMinimum, p.MinTaskJoins)
	}

	cost, err := product(in.RewardAmount, in.TotalJoins)
	if err != nil {
		return 0, err
	}

	err = affordable(cost, balance)
	if err != nil {
		return 0, err
	}

	return cost, nil
}

type AdType string

const (
	AdBanner AdType = "banner"
	AdText   AdType = "text"
	AdVideo  AdType = "video"
)

type Ad struct {
	Title        string
	Type         AdType
	Budget       int64
	DurationDays int64
	TargetLink   string
}

func (p Policy) Ad(in Ad, balance int64) error {
	err := required("ad title", in.Title)
	if err != nil {
		return err
	}

	if in.Budget < p.MinAdBudget {
		return fmt.Errorf("%w: minimum budget is %d", ErrBelowMinimum, p.MinAdBudget)
	}

	if in.DurationDays < p.MinAdDuration {
		return fmt.Errorf("%w: duration must be at least %d day", ErrBelowMinimum, p.MinAdDuration)
	}

	err = required("target link", in.TargetLink)
	if err != nil {
		return err
	}

	switch in.Type {
	case "", AdBanner, AdText, AdVideo:
	default:
		return fmt.Errorf("%w: ad type %q", ErrInvalidOption, in.Type)
	}

	return affordable(in.Budget, balance)
}
