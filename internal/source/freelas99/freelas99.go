// Package freelas99 scrapes 99Freelas project listings. Projects are not tied
// to an employer, so every candidate carries a fixed marketplace label and the
// project budget in the salary field.
package freelas99

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

const defaultBaseURL = "https://www.99freelas.com.br"

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
		logger:  logger.With("source", domain.SourceFreelas99),
	}
}

func (s *Source) Tag() domain.SourceTag {
	return domain.SourceFreelas99
}

func (s *Source) Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error) {
	query := strings.TrimSpace(keywords + " " + location)
	endpoint := s.baseURL + "/projects?search=" + url.QueryEscape(query)

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
		fallbackLocation = "Remoto"
	}

	var jobs []domain.JobCandidate
	doc.Find(".result-container, .project-list__item, .project-item, article, li.result").Each(func(_ int, sel *goquery.Selection) {
		title := htmlx.FirstText(sel, "h1 a", "h2 a", ".result-container__title a", ".project-name a")
		if title == "" {
			return
		}
		description := htmlx.FirstText(sel, ".result-container__description", ".project-description", "p")
		if description == "" {
			description = title
		}
		link := htmlx.FirstAttr(sel, "href", "h1 a", "h2 a", ".result-container__title a", ".project-name a")
		budget := htmlx.FirstText(sel, ".result-container__budget", ".project-budget", ".budget")

		var skills []string
		sel.Find(".result-container__skills a, .skill-tag, .tag").Each(func(_ int, tag *goquery.Selection) {
			if t := strings.TrimSpace(tag.Text()); t != "" {
				skills = append(skills, t)
			}
		})

		jobs = append(jobs, domain.JobCandidate{
			Title:       title,
			Company:     "99Freelas (Freelance)",
			Location:    fallbackLocation,
			Description: description,
			URL:         htmlx.ResolveURL(s.baseURL, link),
			Source:      domain.SourceFreelas99,
			Salary:      budget,
			Tags:        strings.Join(skills, ", "),
		})
	})

	return jobs, nil
}
