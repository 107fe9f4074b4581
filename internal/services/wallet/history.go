package wallet

import (
	"fmt"

	"github.com/fastprodman/cashinreward/internal/catalog"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

func ParseHistoryFilter(s string) (HistoryFilter, error) {
	switch HistoryFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterDeposit, FilterWithdraw, FilterReward:
		return HistoryFilter(s), nil
	default:
		return "", fmt.Errorf("%w: history filter %q", rules.ErrInvalidOption, s)
	}
}

func (f HistoryFilter) match(tx ledger.Transaction) bool {
	switch f {
	case FilterDeposit:
		return tx.Type == ledger.TxDeposit
	case FilterWithdraw:
		return tx.Type == ledger.TxWithdraw
	case FilterReward:
		switch tx.Type {
		case ledger.TxReward, ledger.TxTask:
			return true
		case ledger.TxLifafa:
			return tx.Amount > 0
		default:
			return false
		}
	default:
		return true
	}
}

// History returns the session's transactions, newest first.
func (s *Service) History(f HistoryFilter) ([]ledger.Transaction, error) {
	u, err := s.store.Current()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	if f == FilterAll || f == "" {
		return u.Transactions, nil
	}

	out := make([]ledger.Transaction, 0, len(u.Transactions))
	for _, tx := range u.Transactions {
		if f.match(tx) {
			out = append(out, tx)
		}
	}

	return out, nil
}

// Payouts returns the catalog's recent payouts with their total.
func (s *Service) Payouts() (PayoutFeed, error) {
	_, err := s.store.Current()
	if err != nil {
		return PayoutFeed{}, fmt.Errorf("payouts: %w", err)
	}

	feed := PayoutFeed{
		Count:   len(s.catalog.Payouts),
		Payouts: append([]catalog.Payout(nil), s.catalog.Payouts...),
	}

	for _, p := range feed.Payouts {
		feed.TotalPaid += p.Amount
	}

	return feed, nil
}
