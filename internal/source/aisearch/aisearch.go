// Package aisearch turns the web-search-augmented LLM into a job source.
// Without a Groq key the adapter is a no-op; model output is treated as
// untrusted and filtered down to entries with a real URL in scope.
package aisearch

import (
	"context"
	"log/slog"
	"strings"

	"jobradar/internal/ai"
	"jobradar/internal/domain"
	"jobradar/internal/normalize"
)

type Source struct {
	client *ai.Client
	logger *slog.Logger
}

func New(client *ai.Client, logger *slog.Logger) *Source {
	return &Source{
		client: client,
		logger: logger.With("source", domain.SourceAISearch),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceAISearch
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	if !s.client.Configured() {
		s.logger.Debug("groq key not set, skipping")
		return nil, nil
	}

	found, err := s.client.WebSearchJobs(ctx, keywords, location)
	if err != nil {
		s.logger.Debug("web search failed", "error", err)
		return nil, nil
	}

	var jobs []domain.JobCandidate
	for _, w := range found {
		if w.Title == "" || !strings.HasPrefix(w.URL, "http") {
			continue
		}
		if !normalize.IsBrazilLocation(w.Location) {
			continue
		}

		company := w.Company
		if company == "" {
			company = "Empresa não informada"
		}
		jobs = append(jobs, domain.JobCandidate{
			Title:       w.Title,
			Company:     company,
			Location:    w.Location,
			Description: w.Description,
			URL:         w.URL,
			Source:      domain.SourceAISearch,
			Salary:      w.Salary,
		})
	}
	return jobs, nil
}
