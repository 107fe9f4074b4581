package wallet

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// baseDelays are the simulated round-trip times of each submission.
var baseDelays = map[flow]time.Duration{
	flowAuth:          time.Second,
	flowDeposit:       1500 * time.Millisecond,
	flowWithdraw:      2 * time.Second,
	flowLifafa:        1500 * time.Millisecond,
	flowChannelLifafa: 1500 * time.Millisecond,
	flowClaim:         1500 * time.Millisecond,
	flowChannelClaim:  2 * time.Second,
	flowTask:          time.Second,
	flowTaskChannel:   1500 * time.Millisecond,
	flowAd:            1500 * time.Millisecond,
}

func newInflight() map[flow]*semaphore.Weighted {
	m := make(map[flow]*semaphore.Weighted, len(baseDelays))
	for f := range baseDelays {
		m[f] = semaphore.NewWeighted(1)
	}

	return m
}

func (s *Service) delay(f flow) time.Duration {
	return time.Duration(float64(baseDelays[f]) * s.delayScale)
}

// submit moves a flow from idle to pending, waits out the simulated delay
// and then resolves it by calling fn. A flow that is already pending is
// rejected with ErrSubmissionInFlight. Cancelling ctx while pending
// abandons the submission before fn runs.
func (s *Service) submit(ctx context.Context, f flow, fn func() error) error {
	sem := s.inflight[f]
	if !sem.TryAcquire(1) {
		return fmt.Errorf("%s: %w", f, ErrSubmissionInFlight)
	}
	defer sem.Release(1)

	d := s.delay(f)
	s.log.DebugContext(ctx, "submission pending", "flow", string(f), "delay", d)

	err := wait(ctx, d)
	if err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}

	return fn()
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
