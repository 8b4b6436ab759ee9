// Package catho scrapes Catho search pages. Pages that ship JSON-LD
// JobPosting blocks are parsed structurally; the CSS-selector scan is only a
// fallback for pages without them.
package catho

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/htmlx"
)

const (
	defaultBaseURL = "https://www.catho.com.br"
	searchPath     = "/vagas/"
)

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
		logger:  logger.With("source", domain.SourceCatho),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceCatho
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	endpoint := s.baseURL + searchPath + "?q=" + url.QueryEscape(query) + "&page=1"

	html, ok := s.fetcher.Text(ctx, endpoint)
	if !ok {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	fallbackLocation := location
	if fallbackLocation == "" {
		fallbackLocation = "Brasil"
	}

	if postings := htmlx.JobPostings(doc, fallbackLocation); len(postings) > 0 {
		return fromPostings(postings), nil
	}

	var jobs []domain.JobCandidate
	doc.Find("[data-testid='job-card'], .job-card, article").Each(func(_ int, sel *goquery.Selection) {
		title := htmlx.FirstText(sel, "h2", "[data-testid='job-title']", ".job-card__title")
		if title == "" {
			return
		}
		company := htmlx.FirstText(sel, "[data-testid='job-company']", ".job-card__company")
		if company == "" {
			company = "Empresa não informada"
		}
		jobLocation := htmlx.FirstText(sel, "[data-testid='job-location']", ".job-card__location")
		if jobLocation == "" {
			jobLocation = fallbackLocation
		}
		link := htmlx.FirstAttr(sel, "href", "a")

		jobs = append(jobs, domain.JobCandidate{
			Title:       title,
			Company:     company,
			Location:    jobLocation,
			Description: title + " - " + company,
			URL:         htmlx.ResolveURL(s.baseURL, link),
			Source:      domain.SourceCatho,
		})
	})

	return jobs, nil
}

func fromPostings(postings []htmlx.Posting) []domain.JobCandidate {
	jobs := make([]domain.JobCandidate, 0, len(postings))
	for _, p := range postings {
		jobs = append(jobs, domain.JobCandidate{
			Title:       p.Title,
			Company:     p.Company,
			Location:    p.Location,
			Description: p.Description,
			URL:         p.URL,
			Source:      domain.SourceCatho,
			PostedAt:    p.PostedAt,
			ExternalID:  p.ExternalID,
		})
	}
	return jobs
}
