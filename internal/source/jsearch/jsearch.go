// Package jsearch integrates the JSearch API (RapidAPI). The adapter is
// credential-gated: without a RapidAPI key Fetch returns nothing.
package jsearch

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/normalize"
)

const defaultBaseURL = "https://jsearch.p.rapidapi.com"

type Config struct {
	APIKey  string
	BaseURL string
}

type Source struct {
	apiKey  string
	baseURL string
	host    string
	fetcher *fetch.Client
	logger  *slog.Logger
}

func New(cfg Config, fetcher *fetch.Client, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	return &Source{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		host:    host,
		fetcher: fetcher,
		logger:  logger.With("source", domain.SourceJSearch),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceJSearch
}

// Fetch queries JSearch with the cleaned keywords and, when the role-word
// translation changes the query, a second time with the English form. Both
// result sets are merged; downstream dedup by URL folds overlaps.
func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	if s.apiKey == "" {
		s.logger.Debug("rapidapi key not set, skipping")
		return nil, nil
	}

	cleaned := normalize.CleanKeywords(keywords)
	if cleaned == "" {
		// Keywords made of nothing but remote/country tokens would
		// degenerate to an empty query.
		cleaned = strings.TrimSpace(keywords)
	}
	queries := []string{cleaned}
	if translated := normalize.TranslateKeywords(cleaned); translated != cleaned {
		queries = append(queries, translated)
	}

	var jobs []domain.JobCandidate
	for _, q := range queries {
		if location != "" {
			q = q + " in " + location
		}
		jobs = append(jobs, s.fetchQuery(ctx, q)...)
	}
	return jobs, nil
}

func (s *Source) fetchQuery(ctx context.Context, query string) []domain.JobCandidate {
	endpoint := s.baseURL + "/search?query=" + url.QueryEscape(query) + "&country=br&num_pages=1"
	headers := map[string]string{
		"X-RapidAPI-Key":  s.apiKey,
		"X-RapidAPI-Host": s.host,
	}

	var resp apiResponse
	if !s.fetcher.GetJSON(ctx, endpoint, headers, &resp) {
		return nil
	}

	jobs := make([]domain.JobCandidate, 0, len(resp.Data))
	for _, item := range resp.Data {
		if item.ApplyLink == "" {
			continue
		}
		jobs = append(jobs, item.toCandidate())
	}
	return jobs
}
