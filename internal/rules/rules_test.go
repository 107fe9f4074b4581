package rules

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestPolicy_Deposit(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name    string
		amount  int64
		wantErr error
	}{
		{name: "below_minimum", amount: 49, wantErr: ErrBelowMinimum},
		{name: "zero", amount: 0, wantErr: ErrBelowMinimum},
		{name: "negative", amount: -100, wantErr: ErrBelowMinimum},
		{name: "at_minimum", amount: 50},
		{name: "large", amount: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := p.Deposit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPolicy_Withdrawal(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name        string
		method      string
		amount      int64
		balance     int64
		destination string
		wantErr     error
	}{
		{name: "upi_ok", method: "upi", amount: 50, balance: 1250, destination: "me@okbank"},
		{name: "upi_below_min", method: "upi", amount: 49, balance: 1250, destination: "me@okbank", wantErr: ErrBelowMinimum},
		{name: "amazon_below_min", method: "amazon", amount: 99, balance: 1250, destination: "a@b.c", wantErr: ErrBelowMinimum},
		{name: "google_min", method: "google", amount: 75, balance: 1250, destination: "a@b.c"},
		{name: "flipkart_min", method: "flipkart", amount: 100, balance: 100, destination: "a@b.c"},
		{name: "over_balance", method: "upi", amount: 1251, balance: 1250, destination: "me@okbank", wantErr: ErrInsufficientBalance},
		{name: "over_balance_high_min", method: "amazon", amount: 5000, balance: 1250, destination: "a@b.c", wantErr: ErrInsufficientBalance},
		{name: "upi_missing_at", method: "upi", amount: 60, balance: 1250, destination: "meokbank", wantErr: ErrInvalidDestination},
		{name: "email_missing", method: "google", amount: 80, balance: 1250, destination: "", wantErr: ErrInvalidDestination},
		{name: "unknown_method", method: "paypal", amount: 80, balance: 1250, destination: "a@b.c", wantErr: ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := p.Withdrawal(tt.method, tt.amount, tt.balance, tt.destination)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && m.ID != tt.method {
				t.Fatalf("method: want %s, got %s", tt.method, m.ID)
			}
		})
	}
}

func TestPolicy_Lifafa(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name      string
		amount    int64
		quantity  int64
		balance   int64
		wantTotal int64
		wantErr   error
	}{
		{name: "single", amount: 10, quantity: 1, balance: 10, wantTotal: 10},
		{name: "multi", amount: 25, quantity: 4, balance: 1250, wantTotal: 100},
		{name: "below_unit_min", amount: 9, quantity: 1, balance: 1250, wantErr: ErrBelowMinimum},
		{name: "zero_quantity", amount: 10, quantity: 0, balance: 1250, wantErr: ErrBelowMinimum},
		{name: "total_over_balance", amount: 100, quantity: 13, balance: 1250, wantErr: ErrInsufficientBalance},
		{name: "total_overflows", amount: math.MaxInt64/2 + 1, quantity: 3, balance: 1250, wantErr: ErrAmountTooLarge},
		{name: "max_unit_times_two", amount: math.MaxInt64, quantity: 2, balance: math.MaxInt64, wantErr: ErrAmountTooLarge},
		{name: "max_unit_single", amount: math.MaxInt64, quantity: 1, balance: 1250, wantErr: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total, err := p.Lifafa(tt.amount, tt.quantity, tt.balance)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if total != tt.wantTotal {
				t.Fatalf("total: want %d, got %d", tt.wantTotal, total)
			}
		})
	}
}

func TestPolicy_ChannelLifafa(t *testing.T) {
	t.Parallel()

	p := Default()

	valid := ChannelLifafa{
		Title:         "Diwali",
		PerUserAmount: 20,
		TotalUsers:    5,
		ChannelName:   "@deals",
		RedirectLink:  "https://t.me/deals",
		Game:          GameDice,
	}

	total, err := p.ChannelLifafa(valid, 1250)
	if err != nil || total != 100 {
		t.Fatalf("valid: total %d err %v", total, err)
	}

	missing := valid
	missing.RedirectLink = " "

	_, err = p.ChannelLifafa(missing, 1250)
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("missing link: want ErrRequired, got %v", err)
	}

	badGame := valid
	badGame.Game = "poker"

	_, err = p.ChannelLifafa(badGame, 1250)
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("bad game: want ErrInvalidOption, got %v", err)
	}

	_, err = p.ChannelLifafa(valid, 99)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("poor: want ErrInsufficientBalance, got %v", err)
	}

	huge := valid
	huge.PerUserAmount = math.MaxInt64 / 4
	huge.TotalUsers = 5

	_, err = p.ChannelLifafa(huge, math.MaxInt64)
	if !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("overflow: want ErrAmountTooLarge, got %v", err)
	}
}

func TestPolicy_Credentials(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name     string
		mobile   string
		password string
		fullName string
		signup   bool
		wantErr  error
	}{
		{name: "login_ok", mobile: "9999999999", password: "abcdef"},
		{name: "short_mobile", mobile: "99999", password: "abcdef", wantErr: ErrInvalidMobile},
		{name: "alpha_mobile", mobile: "99999abcde", password: "abcdef", wantErr: ErrInvalidMobile},
		{name: "short_password", mobile: "9999999999", password: "abcde", wantErr: ErrWeakPassword},
		{name: "signup_ok", mobile: "9999999999", password: "abcdef", fullName: "Alice", signup: true},
		{name: "signup_no_name", mobile: "9999999999", password: "abcdef", fullName: "  ", signup: true, wantErr: ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var err error
			if tt.signup {
				err = p.Signup(tt.mobile, tt.password, tt.fullName)
			} else {
				err = p.Credentials(tt.mobile, tt.password)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPolicy_Claim(t *testing.T) {
	t.Parallel()

	p := Default()

	if err := p.Claim("LIFAFA1A2B3C"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := p.Claim("   "); !errors.Is(err, ErrRequired) {
		t.Fatalf("blank code: want ErrRequired, got %v", err)
	}
	if err := p.ChannelClaim("12345", "LF1234"); !errors.Is(err, ErrInvalidMobile) {
		t.Fatalf("bad mobile: want ErrInvalidMobile, got %v", err)
	}
	if err := p.ChannelClaim("9876543210", "LF1234"); err != nil {
		t.Fatalf("channel claim: %v", err)
	}
}

func TestPolicy_ClaimReward_Range(t *testing.T) {
	t.Parallel()

	p := Default()
	rng := rand.New(rand.NewPCG(1, 2))

	seen := make(map[int64]bool)
	for range 20_000 {
		r := p.ClaimReward(rng)
		if r < 10 || r > 100 {
			t.Fatalf("reward %d out of [10,100]", r)
		}
		seen[r] = true
	}

	if !seen[10] || !seen[100] {
		t.Fatalf("bounds never drawn: 10=%v 100=%v", seen[10], seen[100])
	}

	if r := p.ClaimReward(nil); r < 10 || r > 100 {
		t.Fatalf("nil rng reward %d out of range", r)
	}
}

func TestPolicy_TaskChannel(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name     string
		in       TaskChannel
		balance  int64
		wantCost int64
		wantErr  error
	}{
		{name: "ok", in: TaskChannel{ChannelName: "c", ChannelLink: "l", RewardAmount: 2, TotalJoins: 50}, balance: 100, wantCost: 100},
		{name: "no_name", in: TaskChannel{ChannelLink: "l", RewardAmount: 2, TotalJoins: 50}, balance: 100, wantErr: ErrRequired},
		{name: "no_link", in: TaskChannel{ChannelName: "c", RewardAmount: 2, TotalJoins: 50}, balance: 100, wantErr: ErrRequired},
		{name: "zero_reward", in: TaskChannel{ChannelName: "c", ChannelLink: "l", TotalJoins: 50}, balance: 100, wantErr: ErrBelowMinimum},
		{name: "zero_joins", in: TaskChannel{ChannelName: "c", ChannelLink: "l", RewardAmount: 2}, balance: 100, wantErr: ErrBelowMinimum},
		{name: "too_costly", in: TaskChannel{ChannelName: "c", ChannelLink: "l", RewardAmount: 3, TotalJoins: 50}, balance: 100, wantErr: ErrInsufficientBalance},
		{name: "cost_overflows", in: TaskChannel{ChannelName: "c", ChannelLink: "l", RewardAmount: 1 << 62, TotalJoins: 2}, balance: 100, wantErr: ErrAmountTooLarge},
		{name: "cost_overflows_huge_joins", in: TaskChannel{ChannelName: "c", ChannelLink: "l", RewardAmount: 3, TotalJoins: math.MaxInt64}, balance: math.MaxInt64, wantErr: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cost, err := p.TaskChannel(tt.in, tt.balance)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if cost != tt.wantCost {
				t.Fatalf("cost: want %d, got %d", tt.wantCost, cost)
			}
		})
	}
}

func TestPolicy_Ad(t *testing.T) {
	t.Parallel()

	p := Default()
	ok := Ad{Title: "Sale", Type: AdBanner, Budget: 100, DurationDays: 1, TargetLink: "https://x"}

	tests := []struct {
		name    string
		mutate  func(a *Ad)
		balance int64
		wantErr error
	}{
		{name: "ok", mutate: func(*Ad) {}, balance: 100},
		{name: "below_budget", mutate: func(a *Ad) { a.Budget = 99 }, balance: 1000, wantErr: ErrBelowMinimum},
		{name: "zero_duration", mutate: func(a *Ad) { a.DurationDays = 0 }, balance: 1000, wantErr: ErrBelowMinimum},
		{name: "no_title", mutate: func(a *Ad) { a.Title = "" }, balance: 1000, wantErr: ErrRequired},
		{name: "no_link", mutate: func(a *Ad) { a.TargetLink = "" }, balance: 1000, wantErr: ErrRequired},
		{name: "bad_type", mutate: func(a *Ad) { a.Type = "popup" }, balance: 1000, wantErr: ErrInvalidOption},
		{name: "over_balance", mutate: func(a *Ad) { a.Budget = 500 }, balance: 499, wantErr: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := ok
			tt.mutate(&in)

			err := p.Ad(in, tt.balance)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}
