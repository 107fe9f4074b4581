// Package catalog loads the product catalog: validation limits,
// withdrawal methods, the task list and the recent payouts feed.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fastprodman/cashinreward/internal/rules"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Task struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Reward int64  `yaml:"reward" json:"reward"`
	// Completed marks tasks that start out done for every session.
	Completed bool `yaml:"completed" json:"-"`
}

// Payout is a settled withdrawal shown on the payouts board. When is a
// display string such as "2 hrs ago".
type Payout struct {
	User   string `yaml:"user" json:"user"`
	Amount int64  `yaml:"amount" json:"amount"`
	Method string `yaml:"method" json:"method"`
	When   string `yaml:"when" json:"when"`
}

type Catalog struct {
	Policy  rules.Policy   `yaml:"policy"`
	Methods []rules.Method `yaml:"withdraw_methods"`
	Tasks   []Task         `yaml:"tasks"`
	Payouts []Payout       `yaml:"payouts"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog file. An empty path yields the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	c := &Catalog{Policy: rules.Default()}

	err := yaml.Unmarshal(raw, c)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(c.Methods) > 0 {
		c.Policy.Methods = c.Methods
	}
	c.Methods = c.Policy.Methods

	err = c.validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) validate() error {
	p := c.Policy
	if p.ClaimRewardMin > p.ClaimRewardMax {
		return fmt.Errorf("%w: claim reward range [%d,%d]", ErrInvalidCatalog, p.ClaimRewardMin, p.ClaimRewardMax)
	}

	seen := make(map[string]bool)
	for _, m := range p.Methods {
		if m.ID == "" || seen["m:"+m.ID] {
			return fmt.Errorf("%w: withdraw method id %q", ErrInvalidCatalog, m.ID)
		}
		seen["m:"+m.ID] = true
	}

	for _, t := range c.Tasks {
		if t.ID == "" || seen["t:"+t.ID] {
			return fmt.Errorf("%w: task id %q", ErrInvalidCatalog, t.ID)
		}
		if t.Reward < 0 {
			return fmt.Errorf("%w: task %q has negative reward", ErrInvalidCatalog, t.ID)
		}
		seen["t:"+t.ID] = true
	}

	var paid int64
	for i, p := range c.Payouts {
		if p.User == "" || p.Method == "" {
			return fmt.Errorf("%w: payout %d needs user and method", ErrInvalidCatalog, i)
		}
		if p.Amount <= 0 || paid > math.MaxInt64-p.Amount {
			return fmt.Errorf("%w: payout %d amount %d", ErrInvalidCatalog, i, p.Amount)
		}
		paid += p.Amount
	}

	return nil
}

func (c *Catalog) Task(id string) (Task, bool) {
	for _, t := range c.Tasks {
		if t.ID == id {
			return t, true
		}
	}

	return Task{}, false
}
