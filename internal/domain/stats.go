package domain

import "time"

// SearchStats holds the counters of one aggregation run.
type SearchStats struct {
	Found         int           `json:"found"`
	Saved         int           `json:"saved"`
	Created       int           `json:"created"`
	Updated       int           `json:"updated"`
	Summarized    int           `json:"summarized"`
	QueryEnhanced bool          `json:"queryEnhanced"`
	Duration      time.Duration `json:"-"`
}
