package jsearch

import (
	"strconv"
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/htmlx"
)

// apiResponse mirrors the JSearch /search payload.
type apiResponse struct {
	Data []apiJob `json:"data"`
}

type apiJob struct {
	ID             string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	City           string   `json:"job_city"`
	Country        string   `json:"job_country"`
	Description    string   `json:"job_description"`
	ApplyLink      string   `json:"job_apply_link"`
	MinSalary      *float64 `json:"job_min_salary"`
	MaxSalary      *float64 `json:"job_max_salary"`
	SalaryCurrency string   `json:"job_salary_currency"`
	PostedAt       string   `json:"job_posted_at_datetime_utc"`
	EmploymentType string   `json:"job_employment_type"`
}

func (j apiJob) toCandidate() domain.JobCandidate {
	company := j.Employer
	if company == "" {
		company = "Empresa não informada"
	}

	c := domain.JobCandidate{
		Title:       j.Title,
		Company:     company,
		Location:    joinLocation(j.City, j.Country),
		Description: j.Description,
		URL:         j.ApplyLink,
		Source:      domain.SourceJSearch,
		Salary:      FormatSalary(j.MinSalary, j.MaxSalary, j.SalaryCurrency),
		Tags:        j.EmploymentType,
		ExternalID:  j.ID,
	}
	if t, ok := htmlx.ParseDate(j.PostedAt); ok {
		c.PostedAt = &t
	}
	return c
}

func joinLocation(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	case country != "":
		return country
	default:
		return "Remote"
	}
}

// FormatSalary renders the salary range the way the job cards display it:
// both bounds "BRL 5.000 - 8.000", minimum only "BRL 5.000+", maximum only
// "Até BRL 8.000". Missing currency defaults to BRL; no bounds, no string.
func FormatSalary(min, max *float64, currency string) string {
	if min == nil && max == nil {
		return ""
	}
	if currency == "" {
		currency = "BRL"
	}
	switch {
	case min != nil && max != nil:
		return currency + " " + formatAmount(*min) + " - " + formatAmount(*max)
	case min != nil:
		return currency + " " + formatAmount(*min) + "+"
	default:
		return "Até " + currency + " " + formatAmount(*max)
	}
}

// formatAmount renders 5000 as "5.000" (pt-BR thousand separators, no cents).
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
