// Package normalize holds the language-aware cleanup applied to search terms
// and the location predicates shared by the orchestrator and adapters.
package normalize

import (
	"regexp"
	"strings"
)

// Free-standing tokens stripped before querying sources that take the
// location as a separate parameter.
var strippedTokens = map[string]struct{}{
	"remoto": {},
	"remote": {},
	"brasil": {},
	"brazil": {},
	"home":   {},
	"office": {},
}

// Role-word dictionary for sources that perform markedly better with English
// queries. Whole-word, case-insensitive.
var ptToEn = map[string]string{
	"desenvolvedor":  "developer",
	"desenvolvedora": "developer",
	"engenheiro":     "engineer",
	"engenheira":     "engineer",
	"programador":    "programmer",
	"analista":       "analyst",
	"vaga":           "job",
	"vagas":          "jobs",
	"emprego":        "job",
	"empregos":       "jobs",
	"estágio":        "internship",
	"estagio":        "internship",
	"júnior":         "junior",
	"junior":         "junior",
	"pleno":          "mid-level",
	"sênior":         "senior",
	"senior":         "senior",
	"segurança":      "security",
	"dados":          "data",
	"testes":         "testing",
	"qualidade":      "quality",
	"gerente":        "manager",
}

var brazilPattern = regexp.MustCompile(`(?i)\b(brasil|brazil|brazilian|remoto|remote|anywhere|worldwide|latam|south america|são paulo|sao paulo|rio de janeiro|belo horizonte|recife|curitiba|porto alegre|florianópolis|florianopolis|brasília|brasilia|salvador|fortaleza|campinas|sp|rj|mg|pe|rs|sc|pr|df)\b`)

// CleanKeywords removes free-standing remote/country tokens so location-aware
// sources are not queried with redundant terms.
func CleanKeywords(keywords string) string {
	fields := strings.Fields(keywords)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := strippedTokens[strings.ToLower(f)]; !drop {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// TranslateKeywords applies the role-word dictionary word by word, keeping
// words without a translation untouched. Case-insensitive, whole-word.
func TranslateKeywords(keywords string) string {
	fields := strings.Fields(keywords)
	out := make([]string, len(fields))
	for i, f := range fields {
		if en, ok := ptToEn[strings.ToLower(f)]; ok {
			out[i] = en
		} else {
			out[i] = f
		}
	}
	return strings.Join(out, " ")
}

// MatchesLocation reports whether a candidate is relevant for the target
// location. An empty target disables filtering; otherwise the target must
// appear as a case-insensitive substring of the location, title or
// description.
func MatchesLocation(location, title, description, target string) bool {
	if target == "" {
		return true
	}
	t := strings.ToLower(target)
	return strings.Contains(strings.ToLower(location), t) ||
		strings.Contains(strings.ToLower(title), t) ||
		strings.Contains(strings.ToLower(description), t)
}

// IsBrazilLocation is the stricter country-scoping predicate used by sources
// that have no native country filter.
func IsBrazilLocation(location string) bool {
	return brazilPattern.MatchString(location)
}
