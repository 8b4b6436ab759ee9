package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobradar/internal/domain"
)

// ErrNoKeywords rejects a run before any fan-out happens. It is the only
// failure of the core an API caller is meant to see; everything below the
// precondition degrades to partial results instead of erroring.
var ErrNoKeywords = errors.New("no search keywords configured")

// Service executes one aggregation run end to end: config check, optional
// query rewrite, fan-out, upsert reconciliation, event publishing and
// post-persistence summarization.
//
// Nothing serializes overlapping runs: the scheduler and the HTTP trigger can
// race on the same URL. Each candidate is saved in its own transaction, so
// the worst case is a redundant descriptive update, and that trade-off is
// accepted.
type Service struct {
	searcher     Searcher
	jobs         JobStore
	config       ConfigStore
	txManager    TransactionManager
	enricher     Enricher
	publisher    Publisher
	logger       *slog.Logger
	summaryBatch int
}

func NewService(
	searcher Searcher,
	jobs JobStore,
	config ConfigStore,
	txManager TransactionManager,
	enricher Enricher,
	publisher Publisher,
	logger *slog.Logger,
	summaryBatch int,
) *Service {
	if summaryBatch <= 0 {
		summaryBatch = 10
	}
	return &Service{
		searcher:     searcher,
		jobs:         jobs,
		config:       config,
		txManager:    txManager,
		enricher:     enricher,
		publisher:    publisher,
		logger:       logger,
		summaryBatch: summaryBatch,
	}
}

type createdJob struct {
	id        string
	candidate domain.JobCandidate
}

func (s *Service) Run(ctx context.Context) (*domain.SearchStats, error) {
	start := time.Now()

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load search config: %w", err)
	}
	if cfg.Keywords == "" {
		return nil, ErrNoKeywords
	}

	keywords := cfg.Keywords
	enhanced := false
	if s.enricher != nil && s.enricher.Configured() {
		if q := s.enricher.EnhanceQuery(ctx, cfg.Keywords, cfg.Location); q != "" && q != cfg.Keywords {
			s.logger.Info("search query enhanced", "original", cfg.Keywords, "enhanced", q)
			keywords = q
			enhanced = true
		}
	}

	candidates := s.searcher.Search(ctx, keywords, cfg.Location, cfg.EnabledTags())

	stats := &domain.SearchStats{
		Found:         len(candidates),
		QueryEnhanced: enhanced,
	}

	var created []createdJob
	for _, c := range candidates {
		job, isNew, err := s.saveCandidate(ctx, c)
		if err != nil {
			// One bad record must not abort the batch.
			s.logger.Debug("upsert skipped", "url", c.URL, "error", err)
			continue
		}

		stats.Saved++
		if isNew {
			stats.Created++
			created = append(created, createdJob{id: job.ID, candidate: c})
		} else {
			stats.Updated++
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, job, isNew); err != nil {
				s.logger.Warn("publish job event failed", "url", job.URL, "error", err)
			}
		}
	}

	stats.Summarized = s.summarizeNew(ctx, created)

	if err := s.config.TouchLastSearch(ctx, time.Now()); err != nil {
		s.logger.Warn("stamp last search failed", "error", err)
	}

	stats.Duration = time.Since(start)

	s.logger.Info("search run completed",
		"found", stats.Found,
		"saved", stats.Saved,
		"created", stats.Created,
		"updated", stats.Updated,
		"summarized", stats.Summarized,
		"query_enhanced", stats.QueryEnhanced,
		"duration", stats.Duration,
	)

	return stats, nil
}

// saveCandidate persists one candidate inside its own transaction.
func (s *Service) saveCandidate(ctx context.Context, c domain.JobCandidate) (*domain.Job, bool, error) {
	var (
		job   *domain.Job
		isNew bool
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		saved, created, err := s.jobs.UpsertByURL(txCtx, c)
		if err != nil {
			return fmt.Errorf("upsert job: %w", err)
		}
		job, isNew = saved, created
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return job, isNew, nil
}

// summarizeNew summarizes up to summaryBatch freshly created jobs. The calls
// run concurrently and settle independently: one failure leaves that record
// without a summary and touches nothing else.
func (s *Service) summarizeNew(ctx context.Context, created []createdJob) int {
	if s.enricher == nil || !s.enricher.Configured() || len(created) == 0 {
		return 0
	}
	if len(created) > s.summaryBatch {
		created = created[:s.summaryBatch]
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		count int
	)
	for _, cj := range created {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := cj.candidate
			summary, ok := s.enricher.SummarizeJob(ctx, c.Title, c.Company, c.Description)
			if !ok {
				return
			}
			if err := s.jobs.SetAISummary(ctx, cj.id, summary); err != nil {
				s.logger.Debug("store summary failed", "id", cj.id, "error", err)
				return
			}
			mu.Lock()
			count++
			mu.Unlock()
		}()
	}
	wg.Wait()
	return count
}
