// Package programathor scrapes ProgramaThor job listings. The site ships no
// structured metadata, so extraction is selector-only; listing cards carry an
// optional salary line that is kept verbatim.
package programathor

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

const defaultBaseURL = "https://programathor.com.br"

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
		logger:  logger.With("source", domain.SourceProgramaThor),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceProgramaThor
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	endpoint := s.baseURL + "/jobs?search=" + url.QueryEscape(query)

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

	var jobs []domain.JobCandidate
	doc.Find(".cell-list__item, .card-job, .job-card, article").Each(func(_ int, sel *goquery.Selection) {
		title := htmlx.FirstText(sel, "h3", ".cell-list__item-title", ".card-job__title", ".job-card__title")
		if title == "" {
			return
		}
		company := htmlx.FirstText(sel, ".cell-list__item-company", ".card-job__company", ".job-card__company", "span")
		if company == "" {
			company = "Empresa não informada"
		}
		jobLocation := htmlx.FirstText(sel, ".cell-list__item-local", ".card-job__location")
		if jobLocation == "" {
			jobLocation = fallbackLocation
		}
		link := htmlx.FirstAttr(sel, "href", "a")
		salary := htmlx.FirstText(sel, ".cell-list__item-salary", ".card-job__salary")

		jobs = append(jobs, domain.JobCandidate{
			Title:       title,
			Company:     company,
			Location:    jobLocation,
			Description: title + " - " + company,
			URL:         htmlx.ResolveURL(s.baseURL, link),
			Source:      domain.SourceProgramaThor,
			Salary:      salary,
		})
	})

	return jobs, nil
}
