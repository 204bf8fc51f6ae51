package scheduler

import (
	"context"
	"log/slog"
	"time"

	"biblio_reconciler/internal/domain"
)

// Reconciler defines the interface for one pipeline invocation.
type Reconciler interface {
	Run(ctx context.Context) (*domain.RunStats, error)
}

// runTimeout bounds a single invocation so a hung warehouse call cannot
// block the next tick forever.
const runTimeout = 15 * time.Minute

type Scheduler struct {
	reconciler Reconciler
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(reconciler Reconciler, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

// Start runs the pipeline once immediately and then on every tick until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if _, err := s.reconciler.Run(runCtx); err != nil {
		s.logger.Error("run failed", "error", err)
	}
}
