package wallet

import (
	"context"
	"fmt"

	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

const (
	lifafaCodePrefix  = "LIFAFA"
	channelCodePrefix = "LF"
	codeLength        = 6
)

// CreateLifafa pre-pays amount × quantity and returns a shareable code.
func (s *Service) CreateLifafa(ctx context.Context, req LifafaRequest) (LifafaReceipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create lifafa: %w", err)
	}

	total, err := s.policy.Lifafa(req.Amount, req.Quantity, u.Balance)
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create lifafa: %w", err)
	}

	code := lifafaCodePrefix + ledger.Token(codeLength)

	out, err := s.createEnvelope(ctx, flowLifafa, u.ID, total, code, "Created Lifafa: "+code,
		func(cur ledger.User) error {
			_, cerr := s.policy.Lifafa(req.Amount, req.Quantity, cur.Balance)

			return cerr
		})
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create lifafa: %w", err)
	}

	return out, nil
}

type ChannelLifafaRequest = rules.ChannelLifafa

// CreateChannelLifafa creates an envelope promoted through a channel.
func (s *Service) CreateChannelLifafa(ctx context.Context, req ChannelLifafaRequest) (LifafaReceipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create channel lifafa: %w", err)
	}

	total, err := s.policy.ChannelLifafa(req, u.Balance)
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create channel lifafa: %w", err)
	}

	code := channelCodePrefix + ledger.Token(codeLength)

	out, err := s.createEnvelope(ctx, flowChannelLifafa, u.ID, total, code, "Created Lifafa: "+req.Title,
		func(cur ledger.User) error {
			_, cerr := s.policy.ChannelLifafa(req, cur.Balance)

			return cerr
		})
	if err != nil {
		return LifafaReceipt{}, fmt.Errorf("create channel lifafa: %w", err)
	}

	return out, nil
}

func (s *Service) createEnvelope(
	ctx context.Context,
	f flow,
	userID string,
	total int64,
	code, description string,
	check func(ledger.User) error,
) (LifafaReceipt, error) {
	var (
		tx    ledger.Transaction
		entry ledger.LifafaEntry
	)

	err := s.submit(ctx, f, func() error {
		var aerr error

		tx, aerr = s.store.ApplyChecked(userID, check, ledger.TxInput{
			Type:        ledger.TxLifafa,
			Amount:      -total,
			Status:      ledger.StatusCompleted,
			Description: description,
		})
		if aerr != nil {
			return aerr
		}

		entry, aerr = s.store.RecordLifafa(userID, ledger.LifafaCreated, total, code)

		return aerr
	})
	if err != nil {
		return LifafaReceipt{}, err
	}

	s.log.InfoContext(ctx, "lifafa created", "tx_id", tx.ID, "code", code, "total", total)
	s.record(ctx, tx)

	return LifafaReceipt{Receipt: s.receipt(tx), Code: code, Entry: entry}, nil
}

// ClaimLifafa credits a random reward for code. Rewards are not tied to any
// envelope's funds, so a claim never depends on the creator's balance.
func (s *Service) ClaimLifafa(ctx context.Context, code string) (ClaimReceipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim lifafa: %w", err)
	}

	err = s.policy.Claim(code)
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim lifafa: %w", err)
	}

	out, err := s.claim(ctx, flowClaim, u.ID, code, "Claimed Lifafa: ")
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim lifafa: %w", err)
	}

	return out, nil
}

// ClaimChannelLifafa is ClaimLifafa for channel envelopes, which also ask
// for the claimer's mobile number.
func (s *Service) ClaimChannelLifafa(ctx context.Context, mobile, code string) (ClaimReceipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim channel lifafa: %w", err)
	}

	err = s.policy.ChannelClaim(mobile, code)
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim channel lifafa: %w", err)
	}

	out, err := s.claim(ctx, flowChannelClaim, u.ID, code, "Claimed Channel Lifafa: ")
	if err != nil {
		return ClaimReceipt{}, fmt.Errorf("claim channel lifafa: %w", err)
	}

	return out, nil
}

func (s *Service) claim(ctx context.Context, f flow, userID, code, descPrefix string) (ClaimReceipt, error) {
	var (
		reward int64
		tx     ledger.Transaction
		entry  ledger.LifafaEntry
	)

	err := s.submit(ctx, f, func() error {
		reward = s.claimReward()

		var aerr error

		tx, aerr = s.store.ApplyChecked(userID, nil, ledger.TxInput{
			Type:        ledger.TxLifafa,
			Amount:      reward,
			Status:      ledger.StatusCompleted,
			Description: descPrefix + code,
		})
		if aerr != nil {
			return aerr
		}

		entry, aerr = s.store.RecordLifafa(userID, ledger.LifafaClaimed, reward, code)

		return aerr
	})
	if err != nil {
		return ClaimReceipt{}, err
	}

	s.log.InfoContext(ctx, "lifafa claimed", "tx_id", tx.ID, "code", code, "reward", reward)
	s.record(ctx, tx)

	return ClaimReceipt{Receipt: s.receipt(tx), Reward: reward, Entry: entry}, nil
}

func (s *Service) LifafaHistory() ([]ledger.LifafaEntry, error) {
	u, err := s.store.Current()
	if err != nil {
		return nil, fmt.Errorf("lifafa history: %w", err)
	}

	return u.LifafaHistory, nil
}
