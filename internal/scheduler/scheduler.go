package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionReaper interface {
	ExpireIdle(ctx context.Context) int
}

// Scheduler periodically closes abandoned guest-list sign-up sessions so their
// countdown goroutines do not pile up.
type Scheduler struct {
	enrollments sessionReaper
	interval    time.Duration
	logger      logger.Logger
}

func New(
	enrollments sessionReaper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		enrollments: enrollments,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired := s.enrollments.ExpireIdle(ctx)
	if expired > 0 {
		s.logger.Info("idle enrollment sessions closed",
			logger.Int("count", expired),
		)
	}
}
