package app

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

// Scheduler drives the periodic provider sync. One run fires immediately on
// start so a fresh deployment has data before the first tick.
type Scheduler struct {
	sync     *usecase.SyncService
	interval time.Duration
	logger   *logging.Logger
	wg       conc.WaitGroup
}

func NewScheduler(syncSvc *usecase.SyncService, interval time.Duration, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		sync:     syncSvc,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Go(func() {
		s.logger.Info("sync scheduler starting", "interval", s.interval.String())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("sync scheduler stopping")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	})
}

// Wait blocks until the scheduler goroutine exits.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	summary, err := s.sync.SyncAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled sync failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "scheduled sync finished",
		"changed", summary.Changed(),
		"sources", len(summary.Reports),
		"duration_ms", summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	)
}
