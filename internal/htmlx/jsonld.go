// Package htmlx contains the two extraction strategies shared by the
// scraping adapters: structured JSON-LD JobPosting blocks, which always win
// when present, and ordered CSS-selector fallbacks for pages without them.
package htmlx

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Posting is one structured job-posting record lifted out of a page.
type Posting struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	PostedAt    *time.Time
	ExternalID  string
}

const companyFallback = "Empresa não informada"

// JobPostings parses every <script type="application/ld+json"> block in the
// document and returns the JobPosting entries. Accepts a bare object, an
// array, or an ItemList whose elements may be wrapped in {"item": ...}.
// Malformed blocks are skipped.
func JobPostings(doc *goquery.Document, fallbackLocation string) []Posting {
	var postings []Posting

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return
		}
		for _, item := range listItems(raw) {
			if p, ok := postingFromMap(item, fallbackLocation); ok {
				postings = append(postings, p)
			}
		}
	})

	return postings
}

var jobPostingBlock = regexp.MustCompile(`(?s)\{.*?"@type"\s*:\s*"JobPosting".*?\}`)

// ScriptJobPostings scans every inline script for embedded JobPosting JSON
// objects. Used for pages that inline postings outside ld+json blocks.
func ScriptJobPostings(doc *goquery.Document, fallbackLocation string) []Posting {
	var postings []Posting

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		content := sel.Text()
		if !strings.Contains(content, "JobPosting") {
			return
		}
		for _, block := range jobPostingBlock.FindAllString(content, -1) {
			var m map[string]any
			if err := json.Unmarshal([]byte(block), &m); err != nil {
				continue
			}
			if p, ok := postingFromMap(m, fallbackLocation); ok {
				postings = append(postings, p)
			}
		}
	})

	return postings
}

// listItems flattens the accepted top-level shapes into candidate maps.
func listItems(raw any) []map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		if list, ok := v["itemListElement"].([]any); ok {
			return unwrapAll(list)
		}
		return []map[string]any{v}
	case []any:
		return unwrapAll(v)
	}
	return nil
}

func unwrapAll(list []any) []map[string]any {
	items := make([]map[string]any, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if inner, ok := m["item"].(map[string]any); ok {
			m = inner
		}
		items = append(items, m)
	}
	return items
}

func postingFromMap(m map[string]any, fallbackLocation string) (Posting, bool) {
	if str(m["@type"]) != "JobPosting" {
		return Posting{}, false
	}

	p := Posting{
		Title:       str(m["title"]),
		Company:     companyFallback,
		Location:    fallbackLocation,
		Description: str(m["description"]),
		URL:         str(m["url"]),
	}

	if org, ok := m["hiringOrganization"].(map[string]any); ok {
		if name := str(org["name"]); name != "" {
			p.Company = name
		}
	}
	if loc, ok := m["jobLocation"].(map[string]any); ok {
		if addr, ok := loc["address"].(map[string]any); ok {
			if locality := str(addr["addressLocality"]); locality != "" {
				p.Location = locality
			} else if region := str(addr["addressRegion"]); region != "" {
				p.Location = region
			}
		}
	}
	if posted := str(m["datePosted"]); posted != "" {
		if t, ok := ParseDate(posted); ok {
			p.PostedAt = &t
		}
	}
	p.ExternalID = str(m["identifier"])
	if p.ExternalID == "" {
		p.ExternalID = p.URL
	}

	return p, true
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate tries the date layouts job boards actually emit.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
