// Package catalog holds the curated course table and its in-memory search.
// The table is fixed at compile time and read-only at runtime.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Level string

const (
	LevelPosGraduacao Level = "pos-graduacao"
	LevelMestrado     Level = "mestrado"
	LevelDoutorado    Level = "doutorado"
)

type Modality string

const (
	ModalityPresencial Modality = "presencial"
	ModalityEAD        Modality = "ead"
	ModalityHibrido    Modality = "hibrido"
)

type Shift string

const (
	ShiftMatutino   Shift = "matutino"
	ShiftVespertino Shift = "vespertino"
	ShiftNoturno    Shift = "noturno"
	ShiftFlexivel   Shift = "flexivel"
)

type Course struct {
	ID            string   `json:"id"`
	Institution   string   `json:"institution"`
	Program       string   `json:"program"`
	Level         Level    `json:"level"`
	Modality      Modality `json:"modality"`
	Shift         Shift    `json:"shift"`
	Area          string   `json:"area"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Duration      string   `json:"duration"`
	URL           string   `json:"url"`
	MECRecognized bool     `json:"mecRecognized"`
	MECGrade      *int     `json:"mecGrade"`
	Price         *string  `json:"price"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
}

// Filters narrows a search. "all" (or empty) disables a dimension.
type Filters struct {
	Query    string
	Modality string
	Level    string
}

// Stats is a pure reduction over the static table.
type Stats struct {
	Total        int `json:"total"`
	Presencial   int `json:"presencial"`
	EAD          int `json:"ead"`
	Mestrado     int `json:"mestrado"`
	PosGraduacao int `json:"posGraduacao"`
	Doutorado    int `json:"doutorado"`
	Recife       int `json:"recife"`
	ComBolsa     int `json:"comBolsa"`
}

// ptBR orders institution names the way pt-BR users expect (accent and
// case-insensitive), matching browser localeCompare behaviour.
var ptBR = collate.New(language.BrazilianPortuguese, collate.Loose)

// Search filters the catalog and sorts the result: Recife first, then MEC
// grade descending (absent grade counts as 0), then institution name in
// pt-BR collation order.
func Search(f Filters) []Course {
	results := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.Modality != "" && f.Modality != "all" && string(c.Modality) != f.Modality {
			continue
		}
		if f.Level != "" && f.Level != "all" && string(c.Level) != f.Level {
			continue
		}
		if !matchesQuery(c, f.Query) {
			continue
		}
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		aRecife := strings.EqualFold(a.City, "Recife")
		bRecife := strings.EqualFold(b.City, "Recife")
		if aRecife != bRecife {
			return aRecife
		}

		if grade(a) != grade(b) {
			return grade(a) > grade(b)
		}

		return ptBR.CompareString(a.Institution, b.Institution) < 0
	})

	return results
}

// matchesQuery requires every whitespace-separated term to appear as a
// case-insensitive substring of the combined text fields (AND semantics).
func matchesQuery(c Course, query string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}

	searchable := strings.ToLower(strings.Join(append([]string{
		c.Institution, c.Program, c.Area, c.City, c.Description,
	}, c.Tags...), " "))

	for _, term := range terms {
		if !strings.Contains(searchable, term) {
			return false
		}
	}
	return true
}

func grade(c Course) int {
	if c.MECGrade == nil {
		return 0
	}
	return *c.MECGrade
}

// All returns the full catalog in table order.
func All() []Course {
	return courses
}

// GetStats counts the catalog by modality, level, Recife location and
// scholarship marker in the price field.
func GetStats() Stats {
	s := Stats{Total: len(courses)}
	for _, c := range courses {
		switch c.Modality {
		case ModalityPresencial:
			s.Presencial++
		case ModalityEAD:
			s.EAD++
		}
		switch c.Level {
		case LevelMestrado:
			s.Mestrado++
		case LevelPosGraduacao:
			s.PosGraduacao++
		case LevelDoutorado:
			s.Doutorado++
		}
		if strings.EqualFold(c.City, "Recife") {
			s.Recife++
		}
		if c.Price != nil && strings.Contains(*c.Price, "Bolsa") {
			s.ComBolsa++
		}
	}
	return s
}
