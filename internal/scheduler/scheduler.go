// Package scheduler triggers aggregation runs when the configured interval
// has elapsed. It only decides *when* to run; all run semantics live in the
// search service.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jobradar/internal/domain"
	"jobradar/internal/search"
)

// Runner executes one aggregation run.
type Runner interface {
	Run(ctx context.Context) (*domain.SearchStats, error)
}

// ConfigStore provides the scheduling state (interval, last run, active).
type ConfigStore interface {
	Get(ctx context.Context) (*domain.SearchConfig, error)
}

type Scheduler struct {
	runner     Runner
	configs    ConfigStore
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(runner Runner, configs ConfigStore, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		configs:    configs,
		interval:   interval,
		runTimeout: 10 * time.Minute,
		logger:     logger,
	}
}

// Start checks on every tick whether a run is due and blocks until ctx is
// cancelled. Run failures are logged, never fatal.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "check_interval", s.interval)

	s.maybeRun(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.maybeRun(ctx)
		}
	}
}

func (s *Scheduler) maybeRun(ctx context.Context) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		s.logger.Error("load search config failed", "error", err)
		return
	}
	if !cfg.DueAt(time.Now()) {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		if errors.Is(err, search.ErrNoKeywords) {
			s.logger.Debug("scheduled run skipped, no keywords")
			return
		}
		s.logger.Error("scheduled run failed", "error", err)
	}
}
