package search

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"jobradar/internal/domain"
)

// Searcher fans a query out to the enabled sources and returns the merged,
// location-filtered candidate list.
type Searcher interface {
	Search(ctx context.Context, keywords, location string, enabled []domain.SourceTag) []domain.JobCandidate
}

// JobStore is the persistence contract the run service reconciles against.
type JobStore interface {
	UpsertByURL(ctx context.Context, c domain.JobCandidate) (*domain.Job, bool, error)
	SetAISummary(ctx context.Context, id, summary string) error
}

// TransactionManager scopes fn to one database transaction; store calls made
// with the ctx it passes to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfigStore reads and stamps the singleton search configuration.
type ConfigStore interface {
	Get(ctx context.Context) (*domain.SearchConfig, error)
	TouchLastSearch(ctx context.Context, at time.Time) error
}

// Enricher is the capability-gated LLM surface. When Configured is false the
// run service skips query rewriting and summarization entirely.
type Enricher interface {
	Configured() bool
	EnhanceQuery(ctx context.Context, keywords, location string) string
	SummarizeJob(ctx context.Context, title, company, description string) (string, bool)
}

// Publisher emits job events for saved candidates.
type Publisher interface {
	Publish(ctx context.Context, job *domain.Job, created bool) error
}
