package domain

import "time"

// SourceTag identifies the adapter a candidate came from. The values are the
// ones stored in search_config.enabled_sources (comma-joined) and jobs.source.
type SourceTag string

const (
	SourceJSearch      SourceTag = "JSEARCH"
	SourceJooble       SourceTag = "JOOBLE"
	SourceRemotive     SourceTag = "REMOTIVE"
	SourceArbeitnow    SourceTag = "ARBEITNOW"
	SourceLinkedIn     SourceTag = "LINKEDIN"
	SourceCatho        SourceTag = "CATHO"
	SourceGoogle       SourceTag = "GOOGLE"
	SourceGlassdoor    SourceTag = "GLASSDOOR"
	SourceProgramaThor SourceTag = "PROGRAMATHOR"
	SourceFreelas99    SourceTag = "FREELAS99"
	SourceAISearch     SourceTag = "AISEARCH"
)

// JobCandidate is a normalised offer fetched from one source. It lives only
// between the adapter that built it and the upsert that persists it.
type JobCandidate struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      SourceTag
	Salary      string
	Tags        string
	PostedAt    *time.Time
	ExternalID  string
}

// Job is a persisted offer. URL is the uniqueness key for upserts;
// IsFavorite, IsSubmitted and AISummary are user/enrichment state that a
// re-aggregation of the same URL must never reset.
type Job struct {
	ID          string     `db:"id" json:"id"`
	ExternalID  *string    `db:"external_id" json:"externalId"`
	Title       string     `db:"title" json:"title"`
	Company     string     `db:"company" json:"company"`
	Location    string     `db:"location" json:"location"`
	Description string     `db:"description" json:"description"`
	URL         string     `db:"url" json:"url"`
	Source      string     `db:"source" json:"source"`
	Salary      *string    `db:"salary" json:"salary"`
	Tags        *string    `db:"tags" json:"tags"`
	AISummary   *string    `db:"ai_summary" json:"aiSummary"`
	PostedAt    *time.Time `db:"posted_at" json:"postedAt"`
	IsFavorite  bool       `db:"is_favorite" json:"isFavorite"`
	IsSubmitted bool       `db:"is_submitted" json:"isSubmitted"`
	FavoritedAt *time.Time `db:"favorited_at" json:"favoritedAt"`
	SubmittedAt *time.Time `db:"submitted_at" json:"submittedAt"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// JobFilter selects a subset of persisted jobs.
type JobFilter string

const (
	FilterAll       JobFilter = "all"
	FilterFavorite  JobFilter = "favorite"
	FilterSubmitted JobFilter = "submitted"
)
