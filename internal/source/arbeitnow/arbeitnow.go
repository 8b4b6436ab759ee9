// Package arbeitnow integrates the free Arbeitnow job-board API.
package arbeitnow

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
)

const defaultBaseURL = "https://www.arbeitnow.com/api/job-board-api"

type Config struct {
	BaseURL string
}

type Source struct {
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
		baseURL: baseURL,
		fetcher: fetcher,
		logger:  logger.With("source", domain.SourceArbeitnow),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceArbeitnow
}

type apiResponse struct {
	Data []apiJob `json:"data"`
}

type apiJob struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	CreatedAt   int64    `json:"created_at"`
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	endpoint := s.baseURL + "?search=" + url.QueryEscape(query)

	var resp apiResponse
	if !s.fetcher.JSON(ctx, endpoint, &resp) {
		return nil, nil
	}

	jobs := make([]domain.JobCandidate, 0, len(resp.Data))
	for _, item := range resp.Data {
		loc := item.Location
		if loc == "" {
			loc = "Remote"
		}

		c := domain.JobCandidate{
			Title:       item.Title,
			Company:     item.CompanyName,
			Location:    loc,
			Description: item.Description,
			URL:         item.URL,
			Source:      domain.SourceArbeitnow,
			Tags:        strings.Join(item.Tags, ", "),
			ExternalID:  item.Slug,
		}
		if item.CreatedAt > 0 {
			t := time.Unix(item.CreatedAt, 0).UTC()
			c.PostedAt = &t
		}
		jobs = append(jobs, c)
	}
	return jobs, nil
}
