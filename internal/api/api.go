// Package api exposes the aggregator over HTTP. Handlers stay thin: they
// translate between JSON and the stores or the run service and never hold
// business rules of their own.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jobradar/internal/catalog"
	"jobradar/internal/domain"
	"jobradar/internal/search"
	"jobradar/internal/storage/postgres"
)

const maxBodySize = 1 << 20 // 1MB

// JobStore is the job persistence surface the handlers need.
type JobStore interface {
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	ToggleFavorite(ctx context.Context, id string) (*domain.Job, error)
	ToggleSubmitted(ctx context.Context, id string) (*domain.Job, error)
}

// ConfigStore reads and updates the singleton search settings row.
type ConfigStore interface {
	Get(ctx context.Context) (*domain.SearchConfig, error)
	Update(ctx context.Context, cfg domain.SearchConfig) (*domain.SearchConfig, error)
}

// Runner triggers one aggregation run on demand.
type Runner interface {
	Run(ctx context.Context) (*domain.SearchStats, error)
}

// Credentials reports which integrations hold an API key. The frontend uses
// it to grey out capabilities that would silently no-op.
type Credentials struct {
	Groq     bool
	RapidAPI bool
	Jooble   bool
}

type Deps struct {
	Jobs        JobStore
	Config      ConfigStore
	Runner      Runner
	Credentials Credentials
	Logger      *slog.Logger
}

// NewHandler builds the chi router for the /api surface.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/jobs", handleListJobs(deps))
	r.Post("/api/jobs/search", handleRunSearch(deps))
	r.Post("/api/jobs/favorite", handleToggle(deps, deps.Jobs.ToggleFavorite))
	r.Post("/api/jobs/submitted", handleToggle(deps, deps.Jobs.ToggleSubmitted))
	r.Get("/api/settings", handleGetSettings(deps))
	r.Put("/api/settings", handlePutSettings(deps))
	r.Get("/api/courses", handleListCourses())
	r.Get("/api/status", handleStatus(deps))

	return r
}

func handleListJobs(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.JobFilter(r.URL.Query().Get("filter"))
		switch filter {
		case "", domain.FilterAll:
			filter = domain.FilterAll
		case domain.FilterFavorite, domain.FilterSubmitted:
		default:
			httpError(w, http.StatusBadRequest, "unknown filter %q", filter)
			return
		}

		jobs, err := deps.Jobs.List(r.Context(), filter)
		if err != nil {
			deps.Logger.Error("list jobs", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to list jobs")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
	}
}

func handleRunSearch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.Runner.Run(r.Context())
		if err != nil {
			if errors.Is(err, search.ErrNoKeywords) {
				httpError(w, http.StatusBadRequest, "%s", err)
				return
			}
			deps.Logger.Error("search run failed", "error", err)
			httpError(w, http.StatusInternalServerError, "search failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"found":      stats.Found,
			"saved":      stats.Saved,
			"summarized": stats.Summarized,
			"enhanced":   stats.QueryEnhanced,
		})
	}
}

type toggleRequest struct {
	ID string `json:"id"`
}

func handleToggle(deps Deps, toggle func(ctx context.Context, id string) (*domain.Job, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ID == "" {
			httpError(w, http.StatusBadRequest, "id is required")
			return
		}

		job, err := toggle(r.Context(), req.ID)
		if err != nil {
			if errors.Is(err, postgres.ErrJobNotFound) {
				httpError(w, http.StatusNotFound, "job not found")
				return
			}
			deps.Logger.Error("toggle job flag", "id", req.ID, "error", err)
			httpError(w, http.StatusInternalServerError, "failed to update job")
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func handleGetSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := deps.Config.Get(r.Context())
		if err != nil {
			deps.Logger.Error("load settings", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to load settings")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

type settingsRequest struct {
	Keywords       string `json:"keywords"`
	Location       string `json:"location"`
	IntervalHours  int    `json:"intervalHours"`
	EnabledSources string `json:"enabledSources"`
	IsActive       bool   `json:"isActive"`
}

func handlePutSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.IntervalHours <= 0 {
			httpError(w, http.StatusBadRequest, "intervalHours must be positive")
			return
		}

		cfg, err := deps.Config.Update(r.Context(), domain.SearchConfig{
			ID:             domain.DefaultConfigID,
			Keywords:       req.Keywords,
			Location:       req.Location,
			IntervalHours:  req.IntervalHours,
			EnabledSources: req.EnabledSources,
			IsActive:       req.IsActive,
		})
		if err != nil {
			deps.Logger.Error("update settings", "error", err)
			httpError(w, http.StatusInternalServerError, "failed to update settings")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func handleListCourses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		courses := catalog.Search(catalog.Filters{
			Query:    q.Get("q"),
			Modality: q.Get("modality"),
			Level:    q.Get("level"),
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"courses": courses,
			"stats":   catalog.GetStats(),
		})
	}
}

func handleStatus(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"groq":     deps.Credentials.Groq,
			"rapidApi": deps.Credentials.RapidAPI,
			"jooble":   deps.Credentials.Jooble,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
