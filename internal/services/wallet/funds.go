package wallet

import (
	"context"
	"fmt"

	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

// Deposit credits a wallet recharge of at least the policy minimum.
func (s *Service) Deposit(ctx context.Context, amount int64) (Receipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return Receipt{}, fmt.Errorf("deposit: %w", err)
	}

	err = s.policy.Deposit(amount)
	if err != nil {
		return Receipt{}, fmt.Errorf("deposit: %w", err)
	}

	var tx ledger.Transaction

	err = s.submit(ctx, flowDeposit, func() error {
		var aerr error
		tx, aerr = s.store.ApplyChecked(u.ID, nil, ledger.TxInput{
			Type:        ledger.TxDeposit,
			Amount:      amount,
			Status:      ledger.StatusCompleted,
			Description: "Wallet Recharge",
		})

		return aerr
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("deposit: %w", err)
	}

	s.log.InfoContext(ctx, "deposit applied", "tx_id", tx.ID, "amount", amount)
	s.record(ctx, tx)

	return s.receipt(tx), nil
}

// Withdraw debits the wallet and leaves the transaction pending, as payouts
// are settled outside the app.
func (s *Service) Withdraw(ctx context.Context, req WithdrawRequest) (Receipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return Receipt{}, fmt.Errorf("withdraw: %w", err)
	}

	method, err := s.policy.Withdrawal(req.Method, req.Amount, u.Balance, req.Destination)
	if err != nil {
		return Receipt{}, fmt.Errorf("withdraw: %w", err)
	}

	var tx ledger.Transaction

	err = s.submit(ctx, flowWithdraw, func() error {
		var aerr error
		tx, aerr = s.store.ApplyChecked(u.ID, func(cur ledger.User) error {
			_, cerr := s.policy.Withdrawal(req.Method, req.Amount, cur.Balance, req.Destination)

			return cerr
		}, ledger.TxInput{
			Type:        ledger.TxWithdraw,
			Amount:      -req.Amount,
			Status:      ledger.StatusPending,
			Description: method.Name + " Withdrawal",
		})

		return aerr
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("withdraw: %w", err)
	}

	s.log.InfoContext(ctx, "withdrawal requested",
		"tx_id", tx.ID, "method", method.ID, "amount", req.Amount)
	s.record(ctx, tx)

	return s.receipt(tx), nil
}

// WithdrawMethods lists the payout options and their minimums.
func (s *Service) WithdrawMethods() []rules.Method {
	return append([]rules.Method(nil), s.policy.Methods...)
}
