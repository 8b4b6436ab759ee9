// Package googlejobs scrapes the Google Jobs search surface. Posting data is
// inlined in scripts rather than ld+json blocks, so the structured pass uses
// the script scanner; the selector fallback reads the rendered cards, whose
// class names rotate often and are best-effort only.
package googlejobs

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

const defaultBaseURL = "https://www.google.com/search"

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
		logger:  logger.With("source", domain.SourceGoogle),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceGoogle
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	loc := location
	if loc == "" {
		loc = "Brasil"
	}
	query := keywords + " vagas " + loc
	searchURL := s.baseURL + "?q=" + url.QueryEscape(query) + "&ibp=htl;jobs&hl=pt-BR"

	html, ok := s.fetcher.Text(ctx, searchURL)
	if !ok {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	if postings := htmlx.ScriptJobPostings(doc, loc); len(postings) > 0 {
		jobs := make([]domain.JobCandidate, 0, len(postings))
		for _, p := range postings {
			jobURL := p.URL
			if jobURL == "" {
				jobURL = searchURL
			}
			jobs = append(jobs, domain.JobCandidate{
				Title:       p.Title,
				Company:     p.Company,
				Location:    p.Location,
				Description: p.Description,
				URL:         jobURL,
				Source:      domain.SourceGoogle,
				PostedAt:    p.PostedAt,
				ExternalID:  p.ExternalID,
			})
		}
		return jobs, nil
	}

	var jobs []domain.JobCandidate
	doc.Find(".BjJfJf, .PwjeAc, .gws-plugins-horizon-jobs__tl-lif").Each(func(_ int, sel *goquery.Selection) {
		title := htmlx.FirstText(sel, ".BjJfJf", ".PwjeAc", ".sH3zFd", "div[role='heading']")
		if title == "" {
			return
		}
		company := htmlx.FirstText(sel, ".vNEEBe", ".nJlDiv", ".wHhUb")
		if company == "" {
			company = "Empresa não informada"
		}
		jobLocation := htmlx.FirstText(sel, ".Qk80Jf", ".pwTheOc", ".e6m0Sd")
		if jobLocation == "" {
			jobLocation = loc
		}

		jobs = append(jobs, domain.JobCandidate{
			Title:       title,
			Company:     company,
			Location:    jobLocation,
			Description: title + " - " + company,
			URL:         searchURL,
			Source:      domain.SourceGoogle,
		})
	})

	return jobs, nil
}
