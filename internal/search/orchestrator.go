// Package search contains the aggregation core: the fan-out/fan-in
// orchestrator over the source registry and the run service that reconciles
// its output with the job store.
package search

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"jobradar/internal/domain"
	"jobradar/internal/normalize"
	"jobradar/internal/source"
)

// Orchestrator queries the enabled subset of registered sources concurrently
// and merges their results in registration order.
type Orchestrator struct {
	registry *source.Registry
	logger   *slog.Logger
}

func NewOrchestrator(registry *source.Registry, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{registry: registry, logger: logger}
}

// Search runs every enabled source with the same query and waits for all of
// them to settle. A failing or slow source is dropped (bounded by its own
// fetch timeout), never surfaced: partial results are the normal case. With
// a non-empty location the merged list is filtered by the location predicate.
func (o *Orchestrator) Search(ctx context.Context, keywords, location string, enabled []domain.SourceTag) []domain.JobCandidate {
	sources := o.registry.Enabled(enabled)
	if len(sources) == 0 {
		return nil
	}

	start := time.Now()
	results := make([][]domain.JobCandidate, len(sources))

	// The goroutines never return an error: a non-nil return would cancel
	// the sibling fetches, and the contract is to wait for all of them.
	g := new(errgroup.Group)
	for i, src := range sources {
		g.Go(func() error {
			jobs, err := src.Fetch(ctx, keywords, location)
			if err != nil {
				o.logger.Warn("source fetch failed", "source", src.Tag(), "error", err)
				return nil
			}
			results[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.JobCandidate
	for _, r := range results {
		merged = append(merged, r...)
	}

	o.logger.Info("search fan-out settled",
		"sources", len(sources),
		"found", len(merged),
		"duration", time.Since(start),
	)

	if location == "" {
		return merged
	}

	filtered := merged[:0]
	for _, job := range merged {
		if normalize.MatchesLocation(job.Location, job.Title, job.Description, location) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}
