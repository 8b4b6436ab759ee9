// Package jooble integrates the Jooble job search API. Jooble has no native
// country filter, so results are scoped with the Brazil location predicate.
package jooble

import (
	"context"
	"log/slog"
	"strconv"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/htmlx"
	"jobradar/internal/normalize"
)

const defaultBaseURL = "https://jooble.org/api/"

type Config struct {
	APIKey  string
	BaseURL string
}

type Source struct {
	apiKey  string
	baseURL string
	fetcher *fetch.Client
	logger  *slog.Logger
}

func New(cfg Config, fetcher *fetch.Client, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Source{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		fetcher: fetcher,
		logger:  logger.With("source", domain.SourceJooble),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceJooble
}

type apiRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

type apiResponse struct {
	TotalCount int      `json:"totalCount"`
	Jobs       []apiJob `json:"jobs"`
}

type apiJob struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Snippet  string `json:"snippet"`
	Salary   string `json:"salary"`
	Link     string `json:"link"`
	Company  string `json:"company"`
	Updated  string `json:"updated"`
	ID       int64  `json:"id"`
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	if s.apiKey == "" {
		s.logger.Debug("jooble key not set, skipping")
		return nil, nil
	}

	loc := location
	if loc == "" {
		loc = "Brasil"
	}

	var resp apiResponse
	ok := s.fetcher.PostJSON(ctx, s.baseURL+s.apiKey, nil, apiRequest{
		Keywords: normalize.CleanKeywords(keywords),
		Location: loc,
	}, &resp)
	if !ok {
		return nil, nil
	}

	jobs := make([]domain.JobCandidate, 0, len(resp.Jobs))
	for _, item := range resp.Jobs {
		if item.Title == "" || item.Link == "" {
			continue
		}
		if !normalize.IsBrazilLocation(item.Location) {
			continue
		}

		company := item.Company
		if company == "" {
			company = "Empresa não informada"
		}

		c := domain.JobCandidate{
			Title:       item.Title,
			Company:     company,
			Location:    item.Location,
			Description: item.Snippet,
			URL:         item.Link,
			Source:      domain.SourceJooble,
			Salary:      item.Salary,
		}
		if item.ID != 0 {
			c.ExternalID = strconv.FormatInt(item.ID, 10)
		}
		if t, ok := htmlx.ParseDate(item.Updated); ok {
			c.PostedAt = &t
		}
		jobs = append(jobs, c)
	}
	return jobs, nil
}
