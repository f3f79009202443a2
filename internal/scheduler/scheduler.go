package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
)

// Syncer runs one data domain's full-city sync.
type Syncer interface {
	Sync(ctx context.Context, cities []string) (*domain.SyncResult, error)
}

// Scheduler triggers every registered syncer once at startup and then on
// a fixed interval. Syncers run sequentially; a failing domain does not
// stop the others.
type Scheduler struct {
	syncers  []Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncers []Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:  syncers,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "syncers", len(s.syncers))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, syncer := range s.syncers {
		runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
		result, err := syncer.Sync(runCtx, nil)
		cancel()

		if err != nil {
			s.logger.Error("sync run failed", "error", err)
			continue
		}
		s.logger.Info("sync run finished",
			"synced_cities", len(result.SyncedCities),
			"total_records", result.TotalRecords,
		)
	}
}
