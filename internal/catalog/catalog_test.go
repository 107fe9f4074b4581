package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fastprodman/cashinreward/internal/rules"
)

func TestDefault_MatchesBuiltInPolicy(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	if !reflect.DeepEqual(c.Policy, rules.Default()) {
		t.Fatalf("embedded policy drifted from rules.Default():\n got %+v\nwant %+v", c.Policy, rules.Default())
	}

	if len(c.Tasks) != 6 {
		t.Fatalf("want 6 tasks, got %d", len(c.Tasks))
	}

	task, ok := c.Task("survey")
	if !ok || task.Reward != 100 {
		t.Fatalf("survey task: %+v %v", task, ok)
	}

	yt, _ := c.Task("youtube")
	if !yt.Completed {
		t.Fatalf("youtube should start completed")
	}

	if len(c.Payouts) != 8 {
		t.Fatalf("want 8 payouts, got %d", len(c.Payouts))
	}

	var paid int64
	for _, p := range c.Payouts {
		paid += p.Amount
	}

	if paid != 19750 {
		t.Fatalf("payouts total: want 19750, got %d", paid)
	}

	first := c.Payouts[0]
	if first.User != "Rahul S." || first.Method != "UPI" || first.When != "2 hrs ago" {
		t.Fatalf("first payout: %+v", first)
	}
}

func TestLoad_Override(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := []byte(`
policy:
  min_deposit: 200
withdraw_methods:
  - id: upi
    name: UPI
    min_amount: 500
    destination: upi
tasks:
  - id: only
    title: Only Task
    reward: 5
`)

	err := os.WriteFile(path, body, 0o600)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.Policy.MinDeposit != 200 {
		t.Fatalf("min deposit: want 200, got %d", c.Policy.MinDeposit)
	}
	// unspecified limits keep their defaults
	if c.Policy.MinAdBudget != 100 {
		t.Fatalf("min ad budget: want 100, got %d", c.Policy.MinAdBudget)
	}
	if len(c.Policy.Methods) != 1 || c.Policy.Methods[0].MinAmount != 500 {
		t.Fatalf("methods not overridden: %+v", c.Policy.Methods)
	}
	if len(c.Tasks) != 1 {
		t.Fatalf("tasks not overridden: %+v", c.Tasks)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "inverted_reward_range", body: "policy:\n  claim_reward_min: 50\n  claim_reward_max: 10\n"},
		{name: "duplicate_task", body: "tasks:\n  - id: a\n    reward: 1\n  - id: a\n    reward: 2\n"},
		{name: "empty_method_id", body: "withdraw_methods:\n  - name: X\n    min_amount: 1\n"},
		{name: "negative_reward", body: "tasks:\n  - id: a\n    reward: -1\n"},
		{name: "zero_payout", body: "payouts:\n  - {user: A, amount: 0, method: UPI}\n"},
		{name: "payout_without_user", body: "payouts:\n  - {amount: 10, method: UPI}\n"},
		{name: "payouts_total_overflows", body: "payouts:\n  - {user: A, amount: 9223372036854775807, method: UPI}\n  - {user: B, amount: 1, method: UPI}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.body))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("want ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
