package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/domain"
	"jobradar/internal/search"
	"jobradar/internal/storage/postgres"
)

type stubJobStore struct {
	jobs      []domain.Job
	listErr   error
	toggled   *domain.Job
	toggleErr error
	gotFilter domain.JobFilter
	gotID     string
}

func (s *stubJobStore) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	s.gotFilter = filter
	return s.jobs, s.listErr
}

func (s *stubJobStore) ToggleFavorite(ctx context.Context, id string) (*domain.Job, error) {
	s.gotID = id
	return s.toggled, s.toggleErr
}

func (s *stubJobStore) ToggleSubmitted(ctx context.Context, id string) (*domain.Job, error) {
	s.gotID = id
	return s.toggled, s.toggleErr
}

type stubConfigStore struct {
	cfg     *domain.SearchConfig
	err     error
	updated *domain.SearchConfig
}

func (s *stubConfigStore) Get(ctx context.Context) (*domain.SearchConfig, error) {
	return s.cfg, s.err
}

func (s *stubConfigStore) Update(ctx context.Context, cfg domain.SearchConfig) (*domain.SearchConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = &cfg
	return &cfg, nil
}

type stubRunner struct {
	stats *domain.SearchStats
	err   error
}

func (s *stubRunner) Run(ctx context.Context) (*domain.SearchStats, error) {
	return s.stats, s.err
}

func newTestHandler(jobs *stubJobStore, config *stubConfigStore, runner *stubRunner) http.Handler {
	return NewHandler(Deps{
		Jobs:        jobs,
		Config:      config,
		Runner:      runner,
		Credentials: Credentials{Groq: true, Jooble: false, RapidAPI: true},
		Logger:      slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	})
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestListJobs(t *testing.T) {
	jobs := &stubJobStore{jobs: []domain.Job{{ID: "1", Title: "Dev"}}}
	handler := newTestHandler(jobs, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/jobs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterAll, jobs.gotFilter)

	body := decodeMap(t, rec)
	require.Len(t, body["jobs"], 1)
}

func TestListJobs_FavoriteFilter(t *testing.T) {
	jobs := &stubJobStore{}
	handler := newTestHandler(jobs, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/jobs?filter=favorite", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterFavorite, jobs.gotFilter)
}

func TestListJobs_UnknownFilter(t *testing.T) {
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/jobs?filter=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunSearch(t *testing.T) {
	runner := &stubRunner{stats: &domain.SearchStats{Found: 12, Saved: 10, Summarized: 5, QueryEnhanced: true}}
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, runner)

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/search", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	assert.EqualValues(t, 12, body["found"])
	assert.EqualValues(t, 10, body["saved"])
	assert.EqualValues(t, 5, body["summarized"])
	assert.Equal(t, true, body["enhanced"])
}

func TestRunSearch_NoKeywords(t *testing.T) {
	runner := &stubRunner{err: search.ErrNoKeywords}
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, runner)

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no search keywords configured", decodeMap(t, rec)["error"])
}

func TestRunSearch_InternalError(t *testing.T) {
	runner := &stubRunner{err: errors.New("db down")}
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, runner)

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/search", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	jobs := &stubJobStore{toggled: &domain.Job{ID: "abc", IsFavorite: true}}
	handler := newTestHandler(jobs, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/favorite", `{"id": "abc"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", jobs.gotID)

	var job domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.True(t, job.IsFavorite)
}

func TestToggleSubmitted_NotFound(t *testing.T) {
	jobs := &stubJobStore{toggleErr: postgres.ErrJobNotFound}
	handler := newTestHandler(jobs, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/submitted", `{"id": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggle_MissingID(t *testing.T) {
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodPost, "/api/jobs/favorite", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSettings(t *testing.T) {
	config := &stubConfigStore{cfg: &domain.SearchConfig{ID: domain.DefaultConfigID, Keywords: "golang"}}
	handler := newTestHandler(&stubJobStore{}, config, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "golang", decodeMap(t, rec)["keywords"])
}

func TestPutSettings(t *testing.T) {
	config := &stubConfigStore{}
	handler := newTestHandler(&stubJobStore{}, config, &stubRunner{})

	rec := doRequest(t, handler, http.MethodPut, "/api/settings",
		`{"keywords": "golang", "location": "Recife", "intervalHours": 6, "enabledSources": "REMOTIVE,JOOBLE", "isActive": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, config.updated)
	assert.Equal(t, domain.DefaultConfigID, config.updated.ID)
	assert.Equal(t, "golang", config.updated.Keywords)
	assert.Equal(t, "REMOTIVE,JOOBLE", config.updated.EnabledSources)
	assert.True(t, config.updated.IsActive)
}

func TestPutSettings_InvalidInterval(t *testing.T) {
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodPut, "/api/settings", `{"keywords": "golang", "intervalHours": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCourses(t *testing.T) {
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/courses?q=mestrado&level=mestrado", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	courses, ok := body["courses"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, courses)
	require.Contains(t, body, "stats")
}

func TestStatus(t *testing.T) {
	handler := newTestHandler(&stubJobStore{}, &stubConfigStore{}, &stubRunner{})

	rec := doRequest(t, handler, http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	assert.Equal(t, true, body["groq"])
	assert.Equal(t, true, body["rapidApi"])
	assert.Equal(t, false, body["jooble"])
}
