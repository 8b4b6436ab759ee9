// Package remotive integrates the free Remotive remote-jobs API.
package remotive

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/htmlx"
)

const defaultBaseURL = "https://remotive.com/api/remote-jobs"

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
		logger:  logger.With("source", domain.SourceRemotive),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceRemotive
}

type apiResponse struct {
	Jobs []apiJob `json:"jobs"`
}

type apiJob struct {
	ID               int64    `json:"id"`
	URL              string   `json:"url"`
	Title            string   `json:"title"`
	CompanyName      string   `json:"company_name"`
	Tags             []string `json:"tags"`
	PublicationDate  string   `json:"publication_date"`
	RequiredLocation string   `json:"candidate_required_location"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	endpoint := s.baseURL + "?search=" + url.QueryEscape(query) + "&limit=50"

	var resp apiResponse
	if !s.fetcher.JSON(ctx, endpoint, &resp) {
		return nil, nil
	}

	jobs := make([]domain.JobCandidate, 0, len(resp.Jobs))
	for _, item := range resp.Jobs {
		loc := item.RequiredLocation
		if loc == "" {
			loc = "Remote"
		}

		c := domain.JobCandidate{
			Title:       item.Title,
			Company:     item.CompanyName,
			Location:    loc,
			Description: item.Description,
			URL:         item.URL,
			Source:      domain.SourceRemotive,
			Salary:      item.Salary,
			Tags:        strings.Join(item.Tags, ", "),
			ExternalID:  strconv.FormatInt(item.ID, 10),
		}
		if t, ok := htmlx.ParseDate(item.PublicationDate); ok {
			c.PostedAt = &t
		}
		jobs = append(jobs, c)
	}
	return jobs, nil
}
