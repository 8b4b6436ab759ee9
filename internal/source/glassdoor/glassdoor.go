// Package glassdoor scrapes Glassdoor Brasil search pages. JSON-LD JobPosting
// blocks win when present; the CSS-selector scan covers pages without them.
package glassdoor

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/htmlx"
)

const defaultBaseURL = "https://www.glassdoor.com.br"

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
		logger:  logger.With("source", domain.SourceGlassdoor),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceGlassdoor
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	// The KO segment encodes the keyword span inside the slug ("brasil-" is
	// 7 characters).
	endpoint := fmt.Sprintf("%s/Vaga/brasil-%s-vagas-SRCH_IL.0,6_IN36_KO7,%d.htm",
		s.baseURL, url.QueryEscape(query), 7+len(query))

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
	doc.Find("[data-test='jobListing'], .JobsList_jobListItem__JBBUQ, li.react-job-listing").Each(func(_ int, sel *goquery.Selection) {
		title := htmlx.FirstText(sel, "[data-test='job-title']", ".jobTitle", ".job-title")
		if title == "" {
			return
		}
		company := htmlx.FirstText(sel, "[data-test='emp-name']", ".EmployerProfile_compactEmployerName__LE242", ".job-search-key-l2wjgv")
		if company == "" {
			company = "Empresa não informada"
		}
		jobLocation := htmlx.FirstText(sel, "[data-test='emp-location']", ".compactEmployerLocation", ".job-search-key-1p4ilu3")
		if jobLocation == "" {
			jobLocation = fallbackLocation
		}
		link := htmlx.FirstAttr(sel, "href", "a[data-test='job-title']", "a.jobTitle", "a")

		jobs = append(jobs, domain.JobCandidate{
			Title:       title,
			Company:     company,
			Location:    jobLocation,
			Description: title + " - " + company,
			URL:         htmlx.StripQuery(htmlx.ResolveURL(s.baseURL, link)),
			Source:      domain.SourceGlassdoor,
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
			Source:      domain.SourceGlassdoor,
			PostedAt:    p.PostedAt,
			ExternalID:  p.ExternalID,
		})
	}
	return jobs
}
