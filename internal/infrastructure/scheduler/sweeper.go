package scheduler

import (
	"context"
	"log"
	"time"

	"quanngon_payments/internal/usecase"
)

const DefaultSweepInterval = 6 * time.Hour

// StaleSweeper runs the stale-record sweep on a fixed interval until its
// context is cancelled. One sweep runs immediately on start so a restart
// never leaves stale records waiting a full interval.
type StaleSweeper struct {
	sweep    usecase.IStaleSweepUseCase
	interval time.Duration
}

func NewStaleSweeper(sweep usecase.IStaleSweepUseCase, interval time.Duration) *StaleSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &StaleSweeper{sweep: sweep, interval: interval}
}

func (s *StaleSweeper) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *StaleSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.sweep.SweepStale(ctx, time.Now().UTC()); err != nil {
			log.Printf("[payment][sweeper] sweep failed err=%v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
