package domain

import (
	"strings"
	"time"
)

// DefaultConfigID is the id of the single search_config row.
const DefaultConfigID = "default"

// SearchConfig is the singleton configuration row driving scheduled searches.
type SearchConfig struct {
	ID             string     `db:"id" json:"id"`
	Keywords       string     `db:"keywords" json:"keywords"`
	Location       string     `db:"location" json:"location"`
	IntervalHours  int        `db:"interval_hours" json:"intervalHours"`
	EnabledSources string     `db:"enabled_sources" json:"enabledSources"`
	LastSearchAt   *time.Time `db:"last_search_at" json:"lastSearchAt"`
	IsActive       bool       `db:"is_active" json:"isActive"`
}

// EnabledTags splits the comma-joined enabled_sources column. An empty column
// means every registered source is enabled.
func (c SearchConfig) EnabledTags() []SourceTag {
	if c.EnabledSources == "" {
		return nil
	}
	parts := strings.Split(c.EnabledSources, ",")
	tags := make([]SourceTag, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, SourceTag(p))
		}
	}
	return tags
}

// DueAt reports whether a scheduled search should run at the given instant.
func (c SearchConfig) DueAt(now time.Time) bool {
	if !c.IsActive || c.Keywords == "" {
		return false
	}
	if c.LastSearchAt == nil {
		return true
	}
	return now.Sub(*c.LastSearchAt) >= time.Duration(c.IntervalHours)*time.Hour
}
