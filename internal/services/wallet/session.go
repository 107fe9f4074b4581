package wallet

import (
	"context"
	"fmt"

	"github.com/fastprodman/cashinreward/internal/ledger"
)

// Login validates the form and starts a demo session. Any well-formed
// mobile/password pair is accepted.
func (s *Service) Login(ctx context.Context, mobile, password string) (ledger.User, error) {
	err := s.policy.Credentials(mobile, password)
	if err != nil {
		return ledger.User{}, fmt.Errorf("login: %w", err)
	}

	var u ledger.User

	err = s.submit(ctx, flowAuth, func() error {
		var aerr error
		u, aerr = s.store.Authenticate(mobile, password)

		return aerr
	})
	if err != nil {
		return ledger.User{}, fmt.Errorf("login: %w", err)
	}

	s.log.InfoContext(ctx, "session started", "user_id", u.ID)

	return u, nil
}

func (s *Service) Signup(ctx context.Context, mobile, password, name string) (ledger.User, error) {
	err := s.policy.Signup(mobile, password, name)
	if err != nil {
		return ledger.User{}, fmt.Errorf("signup: %w", err)
	}

	var u ledger.User

	err = s.submit(ctx, flowAuth, func() error {
		var aerr error
		u, aerr = s.store.Register(mobile, password, name)

		return aerr
	})
	if err != nil {
		return ledger.User{}, fmt.Errorf("signup: %w", err)
	}

	s.log.InfoContext(ctx, "account created", "user_id", u.ID)

	if len(u.Transactions) > 0 {
		s.record(ctx, u.Transactions[0])
	}

	return u, nil
}

func (s *Service) Logout(ctx context.Context) {
	u, err := s.store.Current()
	if err == nil {
		s.log.InfoContext(ctx, "session ended", "user_id", u.ID)
	}

	s.store.Logout()
}

// Profile returns the active session user.
func (s *Service) Profile() (ledger.User, error) {
	u, err := s.store.Current()
	if err != nil {
		return ledger.User{}, fmt.Errorf("profile: %w", err)
	}

	return u, nil
}

// SessionUserID returns the active user's ID, or ErrNotAuthenticated.
func (s *Service) SessionUserID() (string, error) {
	u, err := s.store.Current()
	if err != nil {
		return "", err
	}

	return u.ID, nil
}
