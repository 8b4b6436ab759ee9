package htmlx

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstText returns the trimmed text of the first selector candidate that
// matches within sel. Selector candidates are tried in order.
func FirstText(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if found := sel.Find(s).First(); found.Length() > 0 {
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// FirstAttr returns the named attribute of the first matching selector
// candidate that carries it.
func FirstAttr(sel *goquery.Selection, attr string, selectors ...string) string {
	for _, s := range selectors {
		if v, ok := sel.Find(s).First().Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}

// ResolveURL prefixes relative links with the site base.
func ResolveURL(base, link string) string {
	if link == "" || strings.HasPrefix(link, "http") {
		return link
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(link, "/")
}

// StripQuery drops everything from the first "?" on.
func StripQuery(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		return u[:i]
	}
	return u
}
