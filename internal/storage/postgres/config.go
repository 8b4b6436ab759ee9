package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"jobradar/internal/domain"
)

type ConfigStore struct {
	db *sqlx.DB
}

func NewConfigStore(db *sqlx.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// Get returns the singleton search configuration, creating the default row
// on first access.
func (s *ConfigStore) Get(ctx context.Context) (*domain.SearchConfig, error) {
	var cfg domain.SearchConfig
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cfg,
		"SELECT * FROM search_config WHERE id = $1", domain.DefaultConfigID)
	if err == sql.ErrNoRows {
		return s.createDefault(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *ConfigStore) createDefault(ctx context.Context) (*domain.SearchConfig, error) {
	var cfg domain.SearchConfig
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cfg, `
		INSERT INTO search_config (id) VALUES ($1)
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING *`,
		domain.DefaultConfigID)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Update upserts the user-editable fields of the singleton row.
func (s *ConfigStore) Update(ctx context.Context, cfg domain.SearchConfig) (*domain.SearchConfig, error) {
	var updated domain.SearchConfig
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &updated, `
		INSERT INTO search_config (id, keywords, location, interval_hours, enabled_sources, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			keywords = EXCLUDED.keywords,
			location = EXCLUDED.location,
			interval_hours = EXCLUDED.interval_hours,
			enabled_sources = EXCLUDED.enabled_sources,
			is_active = EXCLUDED.is_active
		RETURNING *`,
		domain.DefaultConfigID,
		cfg.Keywords,
		cfg.Location,
		cfg.IntervalHours,
		cfg.EnabledSources,
		cfg.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// TouchLastSearch stamps the completion time of an aggregation run.
func (s *ConfigStore) TouchLastSearch(ctx context.Context, at time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE search_config SET last_search_at = $2 WHERE id = $1",
		domain.DefaultConfigID, at)
	return err
}
