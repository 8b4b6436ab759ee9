package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"jobradar/internal/domain"
)

// ErrJobNotFound is returned by lookups and toggles for unknown ids.
var ErrJobNotFound = errors.New("job not found")

type JobStore struct {
	db *sqlx.DB
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

// UpsertByURL inserts the candidate or, when a job with the same URL already
// exists, refreshes its descriptive fields. is_favorite, is_submitted and
// ai_summary are deliberately absent from the update list: re-aggregation
// must never reset user or enrichment state. The xmax check distinguishes a
// fresh insert from a conflicting update.
func (s *JobStore) UpsertByURL(ctx context.Context, c domain.JobCandidate) (*domain.Job, bool, error) {
	query := `
		INSERT INTO jobs (
			id, external_id, title, company, location, description, url,
			source, salary, tags, posted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			source = EXCLUDED.source,
			salary = EXCLUDED.salary,
			tags = EXCLUDED.tags,
			posted_at = EXCLUDED.posted_at,
			updated_at = now()
		RETURNING *, (xmax = 0) AS created`

	var row struct {
		domain.Job
		Created bool `db:"created"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		uuid.NewString(),
		nullString(c.ExternalID),
		c.Title,
		c.Company,
		c.Location,
		c.Description,
		c.URL,
		string(c.Source),
		nullString(c.Salary),
		nullString(c.Tags),
		c.PostedAt,
	)
	if err != nil {
		return nil, false, err
	}
	return &row.Job, row.Created, nil
}

func (s *JobStore) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &job,
		"SELECT * FROM jobs WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) GetByURL(ctx context.Context, url string) (*domain.Job, error) {
	var job domain.Job
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &job,
		"SELECT * FROM jobs WHERE url = $1", url)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns jobs newest first, optionally narrowed to favorites or
// submitted applications.
func (s *JobStore) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := "SELECT * FROM jobs"
	switch filter {
	case domain.FilterFavorite:
		query += " WHERE is_favorite"
	case domain.FilterSubmitted:
		query += " WHERE is_submitted"
	}
	query += " ORDER BY created_at DESC"

	jobs := []domain.Job{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &jobs, query); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ToggleFavorite flips is_favorite; favorited_at is stamped on the rising
// edge and cleared back to NULL on the falling edge.
func (s *JobStore) ToggleFavorite(ctx context.Context, id string) (*domain.Job, error) {
	return s.toggle(ctx, id, "is_favorite", "favorited_at")
}

// ToggleSubmitted flips is_submitted with the same timestamp pairing.
func (s *JobStore) ToggleSubmitted(ctx context.Context, id string) (*domain.Job, error) {
	return s.toggle(ctx, id, "is_submitted", "submitted_at")
}

func (s *JobStore) toggle(ctx context.Context, id, flagCol, atCol string) (*domain.Job, error) {
	query := `
		UPDATE jobs SET
			` + flagCol + ` = NOT ` + flagCol + `,
			` + atCol + ` = CASE WHEN ` + flagCol + ` THEN NULL ELSE now() END,
			updated_at = now()
		WHERE id = $1
		RETURNING *`

	var job domain.Job
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &job, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetAISummary stores a summary only for rows that have none yet; an existing
// summary is never overwritten.
func (s *JobStore) SetAISummary(ctx context.Context, id, summary string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE jobs SET ai_summary = $2, updated_at = now() WHERE id = $1 AND ai_summary IS NULL",
		id, summary)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
