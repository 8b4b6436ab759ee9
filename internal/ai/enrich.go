package ai

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

func stripHTML(html string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(tagPattern.ReplaceAllString(html, " "), " "))
}

// SummarizeJob produces a short Portuguese summary of a posting. Returns
// ok=false when the credential is absent or the call fails; the caller keeps
// the record unsummarized.
func (c *Client) SummarizeJob(ctx context.Context, title, company, description string) (string, bool) {
	clean := stripHTML(description)
	if runes := []rune(clean); len(runes) > 3000 {
		clean = string(runes[:3000])
	}

	result, err := c.chat(ctx, chatModel, []message{
		{
			Role: "system",
			Content: "Você resume vagas de emprego. " +
				"Gere um resumo conciso em português (máximo 3 frases) incluindo: " +
				"principais responsabilidades, requisitos-chave e benefícios destacados. " +
				"Seja direto e objetivo. Não use markdown.",
		},
		{
			Role:    "user",
			Content: "Vaga: " + title + " na empresa " + company + "\n\nDescrição:\n" + clean,
		},
	}, 200, summaryTimeout)
	if err != nil {
		c.logger.Debug("summarize failed", "title", title, "error", err)
		return "", false
	}
	return result, result != ""
}

// EnhanceQuery rewrites keywords+location into one optimized English query.
// On any failure it falls back to "keywords location" joined, never an error.
func (c *Client) EnhanceQuery(ctx context.Context, keywords, location string) string {
	fallback := strings.TrimSpace(keywords + " " + location)

	loc := location
	if loc == "" {
		loc = "qualquer"
	}

	result, err := c.chat(ctx, chatModel, []message{
		{
			Role: "system",
			Content: "Você otimiza consultas de busca de emprego. " +
				"Dado palavras-chave e localização, gere UMA query de busca otimizada " +
				"em inglês para APIs de emprego. Retorne APENAS a query, sem explicações. " +
				"Inclua termos sinônimos relevantes separados por espaço.",
		},
		{
			Role:    "user",
			Content: "Palavras-chave: " + keywords + "\nLocalização: " + loc,
		},
	}, 60, summaryTimeout)
	if err != nil || result == "" {
		return fallback
	}
	return result
}

// WebJob is one opening returned by the web-search-augmented model.
type WebJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Salary      string `json:"salary"`
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// WebSearchJobs asks the web-search-capable model for current openings and
// parses its JSON answer. The model output is untrusted; anything that does
// not parse is dropped.
func (c *Client) WebSearchJobs(ctx context.Context, keywords, location string) ([]WebJob, error) {
	loc := location
	if loc == "" {
		loc = "Brasil"
	}

	result, err := c.chat(ctx, searchModel, []message{
		{
			Role: "system",
			Content: "Você busca vagas de emprego reais e recentes na web. " +
				"Responda APENAS com um array JSON de objetos com os campos " +
				`"title", "company", "location", "description", "url", "salary". ` +
				"Inclua somente vagas com URL de candidatura real. Sem markdown.",
		},
		{
			Role:    "user",
			Content: "Vagas de " + keywords + " em " + loc + " publicadas recentemente.",
		},
	}, 1500, searchTimeout)
	if err != nil {
		return nil, err
	}

	raw := jsonArrayPattern.FindString(result)
	if raw == "" {
		return nil, nil
	}

	var jobs []WebJob
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		c.logger.Debug("web search answer not parsable", "error", err)
		return nil, nil
	}
	return jobs, nil
}
