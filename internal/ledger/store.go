// Package ledger holds the single active wallet session: the user's
// profile, balance, transaction list and Lifafa history.
//
// The store is the only place balance changes after a session is created.
// It does not validate amounts; callers run the checks in package rules
// before applying a transaction.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type Store struct {
	mu    sync.RWMutex
	user  *User
	tasks map[string]struct{}

	ids IDs
	now func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDs(ids IDs) Option {
	return func(s *Store) { s.ids = ids }
}

func New(opts ...Option) *Store {
	s := &Store{
		ids: UUIDs{},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Authenticate starts a session for any non-empty mobile and password.
// No credential check exists; the account is seeded with demo history.
func (s *Store) Authenticate(mobile, password string) (User, error) {
	if strings.TrimSpace(mobile) == "" || password == "" {
		return User{}, ErrEmptyCredentials
	}

	u := s.seedLogin(mobile)
	s.begin(&u)

	return u.clone(), nil
}

// Register starts a session for a new account seeded with the welcome bonus.
func (s *Store) Register(mobile, password, name string) (User, error) {
	if strings.TrimSpace(mobile) == "" || password == "" || strings.TrimSpace(name) == "" {
		return User{}, ErrEmptyCredentials
	}

	u := s.seedSignup(mobile, strings.TrimSpace(name))
	s.begin(&u)

	return u.clone(), nil
}

func (s *Store) begin(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	s.tasks = make(map[string]struct{})
}

// Logout drops the active session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.tasks = nil
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil
}

// Current returns a copy of the session user.
func (s *Store) Current() (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, ErrNotAuthenticated
	}

	return s.user.clone(), nil
}

// ApplyTransaction prepends a transaction to whichever session is active
// and adds its amount to balance. Any amount is accepted, including one
// that drives balance negative, as long as the totals stay representable.
func (s *Store) ApplyTransaction(in TxInput) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Transaction{}, ErrNotAuthenticated
	}

	return s.apply(in)
}

// ApplyChecked is ApplyTransaction bound to the session of userID, with a
// guard evaluated against that user under the store lock. It fails with
// ErrNotAuthenticated when another session replaced userID's; a non-nil
// error from check aborts the mutation and is returned unchanged.
func (s *Store) ApplyChecked(userID string, check func(User) error, in TxInput) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.owned(userID)
	if err != nil {
		return Transaction{}, err
	}

	if check != nil {
		err = check(*s.user)
		if err != nil {
			return Transaction{}, err
		}
	}

	return s.apply(in)
}

// owned reports whether userID still holds the session. Callers hold s.mu.
func (s *Store) owned(userID string) error {
	if s.user == nil {
		return ErrNotAuthenticated
	}

	if s.user.ID != userID {
		return fmt.Errorf("%w: session of %q has ended", ErrNotAuthenticated, userID)
	}

	return nil
}

func (s *Store) apply(in TxInput) (Transaction, error) {
	u := s.user

	balance, ok := addInt64(u.Balance, in.Amount)
	if !ok {
		return Transaction{}, fmt.Errorf("%w: %d%+d", ErrBalanceOverflow, u.Balance, in.Amount)
	}

	earned, withdrawn := u.TotalEarned, u.TotalWithdrawn

	switch {
	case in.Amount > 0:
		earned, ok = addInt64(earned, in.Amount)
	case in.Amount < 0:
		withdrawn, ok = subInt64(withdrawn, in.Amount)
	}

	if !ok {
		return Transaction{}, fmt.Errorf("%w: totals cannot absorb %d", ErrBalanceOverflow, in.Amount)
	}

	tx := Transaction{
		ID:          s.ids.TxID(),
		Type:        in.Type,
		Amount:      in.Amount,
		Status:      in.Status,
		Description: in.Description,
		Date:        s.today(),
	}

	u.Transactions = append([]Transaction{tx}, u.Transactions...)
	u.Balance = balance
	u.TotalEarned = earned
	u.TotalWithdrawn = withdrawn

	return tx, nil
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}

	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}

	return c, true
}

// RecordLifafa prepends an entry to userID's Lifafa history.
func (s *Store) RecordLifafa(userID string, dir LifafaDirection, amount int64, code string) (LifafaEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.owned(userID)
	if err != nil {
		return LifafaEntry{}, err
	}

	e := LifafaEntry{
		ID:        s.ids.TxID(),
		Direction: dir,
		Amount:    amount,
		Code:      code,
		Date:      s.today(),
	}
	s.user.LifafaHistory = append([]LifafaEntry{e}, s.user.LifafaHistory...)

	return e, nil
}

// MarkTaskDone records that userID's session completed taskID.
func (s *Store) MarkTaskDone(userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.owned(userID)
	if err != nil {
		return err
	}

	if _, ok := s.tasks[taskID]; ok {
		return fmt.Errorf("task %q: %w", taskID, ErrTaskDone)
	}

	s.tasks[taskID] = struct{}{}

	return nil
}

func (s *Store) TaskDone(taskID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[taskID]

	return ok
}

func (s *Store) today() string {
	return s.now().Format(DateLayout)
}
