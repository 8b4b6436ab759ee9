// Package linkedin scrapes the LinkedIn guest job-search endpoint. Extraction
// is best-effort: a layout change makes the adapter return nothing, which is
// indistinguishable from the source being down.
package linkedin

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/htmlx"
	"jobradar/internal/normalize"
)

const defaultBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

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
		logger:  logger.With("source", domain.SourceLinkedIn),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceLinkedIn
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	loc := location
	if loc == "" {
		loc = "Brasil"
	}
	endpoint := s.baseURL +
		"?keywords=" + url.QueryEscape(normalize.CleanKeywords(keywords)) +
		"&location=" + url.QueryEscape(loc) +
		"&start=0&count=25"

	html, ok := s.fetcher.Text(ctx, endpoint)
	if !ok {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	var jobs []domain.JobCandidate
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".base-search-card__title").Text())
		company := strings.TrimSpace(sel.Find(".base-search-card__subtitle").Text())
		jobLocation := strings.TrimSpace(sel.Find(".job-search-card__location").Text())
		link, _ := sel.Find("a.base-card__full-link").Attr("href")

		if title == "" || link == "" {
			return
		}
		if jobLocation == "" {
			jobLocation = "N/A"
		}

		c := domain.JobCandidate{
			Title:       title,
			Company:     company,
			Location:    jobLocation,
			Description: title + " at " + company + " - " + jobLocation,
			URL:         htmlx.StripQuery(link),
			Source:      domain.SourceLinkedIn,
			ExternalID:  externalID(link),
		}
		if dateStr, ok := sel.Find("time").Attr("datetime"); ok {
			if t, ok := htmlx.ParseDate(dateStr); ok {
				c.PostedAt = &t
			}
		}
		jobs = append(jobs, c)
	})

	return jobs, nil
}

// externalID pulls the posting id out of .../jobs/view/<id>/... links.
func externalID(link string) string {
	_, after, found := strings.Cut(link, "/view/")
	if !found {
		return ""
	}
	if i := strings.IndexAny(after, "/?"); i >= 0 {
		after = after[:i]
	}
	return after
}
