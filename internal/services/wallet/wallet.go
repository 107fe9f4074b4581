package wallet

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/fastprodman/cashinreward/internal/catalog"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

// Journal mirrors applied transactions somewhere outside the session.
type Journal interface {
	Record(ctx context.Context, user ledger.User, tx ledger.Transaction) error
}

type Service struct {
	store   *ledger.Store
	catalog *catalog.Catalog
	policy  rules.Policy
	journal Journal
	log     *slog.Logger

	delayScale float64
	inflight   map[flow]*semaphore.Weighted

	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Service)

// WithDelayScale multiplies every simulated delay; 0 resolves immediately.
func WithDelayScale(scale float64) Option {
	return func(s *Service) { s.delayScale = scale }
}

func WithJournal(j Journal) Option {
	return func(s *Service) { s.journal = j }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithRand fixes the source used for claim rewards.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

func New(store *ledger.Store, cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		store:      store,
		catalog:    cat,
		policy:     cat.Policy,
		log:        slog.Default(),
		delayScale: 1,
		inflight:   newInflight(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Policy() rules.Policy {
	return s.policy
}

func (s *Service) claimReward() int64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return s.policy.ClaimReward(s.rng)
}

// record mirrors tx to the journal. The session is the source of truth,
// so journal failures are logged and swallowed.
func (s *Service) record(ctx context.Context, tx ledger.Transaction) {
	if s.journal == nil {
		return
	}

	u, err := s.store.Current()
	if err != nil {
		return
	}

	err = s.journal.Record(ctx, u, tx)
	if err != nil {
		s.log.ErrorContext(ctx, "journal transaction", "tx_id", tx.ID, "error", err)
	}
}

func (s *Service) receipt(tx ledger.Transaction) Receipt {
	r := Receipt{Transaction: tx}

	u, err := s.store.Current()
	if err == nil {
		r.Balance = u.Balance
	}

	return r
}
