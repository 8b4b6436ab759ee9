package jsearch

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/testdata/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_NoAPIKey(t *testing.T) {
	logger := testLogger()
	src := New(Config{}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Recife")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFetch_QueriesAPIAndMapsJobs(t *testing.T) {
	logger := testLogger()

	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "br", r.URL.Query().Get("country"))
		queries = append(queries, r.URL.Query().Get("query"))

		_ = json.NewEncoder(w).Encode(apiResponse{Data: []apiJob{
			{
				ID:             "abc-1",
				Title:          "Go Developer",
				Employer:       "Acme",
				City:           "Recife",
				Country:        "BR",
				Description:    "Backend role",
				ApplyLink:      "https://example.com/jobs/1",
				MinSalary:      utils.Ptr(5000.0),
				MaxSalary:      utils.Ptr(8000.0),
				SalaryCurrency: "BRL",
				PostedAt:       "2024-03-01T00:00:00Z",
				EmploymentType: "FULLTIME",
			},
			{Title: "No link, dropped", Employer: "Acme"},
		}})
	}))
	defer server.Close()

	src := New(Config{APIKey: "test-key", BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "desenvolvedor golang", "Recife")
	require.NoError(t, err)

	// The translated query differs from the cleaned one, so the API is
	// queried twice and results are merged.
	require.Len(t, queries, 2)
	assert.Equal(t, "desenvolvedor golang in Recife", queries[0])
	assert.Equal(t, "developer golang in Recife", queries[1])

	require.Len(t, jobs, 2)
	job := jobs[0]
	assert.Equal(t, "Go Developer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Recife, BR", job.Location)
	assert.Equal(t, "https://example.com/jobs/1", job.URL)
	assert.Equal(t, domain.SourceJSearch, job.Source)
	assert.Equal(t, "BRL 5.000 - 8.000", job.Salary)
	assert.Equal(t, "FULLTIME", job.Tags)
	assert.Equal(t, "abc-1", job.ExternalID)
	require.NotNil(t, job.PostedAt)
}

func TestFetch_AllTokensStrippedFallsBackToRawKeywords(t *testing.T) {
	logger := testLogger()

	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("query"))
		_ = json.NewEncoder(w).Encode(apiResponse{})
	}))
	defer server.Close()

	src := New(Config{APIKey: "test-key", BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	// Keywords made entirely of stripped tokens must not produce an
	// " in <location>" query with nothing in front of it.
	_, err := src.Fetch(context.Background(), "remoto brasil", "Recife")
	require.NoError(t, err)

	require.Len(t, queries, 1)
	assert.Equal(t, "remoto brasil in Recife", queries[0])
}

func TestFetch_APIFailureYieldsNoJobs(t *testing.T) {
	logger := testLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := New(Config{APIKey: "test-key", BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name     string
		min      *float64
		max      *float64
		currency string
		expected string
	}{
		{"both bounds", utils.Ptr(5000.0), utils.Ptr(8000.0), "BRL", "BRL 5.000 - 8.000"},
		{"minimum only", utils.Ptr(5000.0), nil, "BRL", "BRL 5.000+"},
		{"maximum only", nil, utils.Ptr(8000.0), "BRL", "Até BRL 8.000"},
		{"currency defaults to BRL", utils.Ptr(5000.0), nil, "", "BRL 5.000+"},
		{"usd passthrough", utils.Ptr(90000.0), utils.Ptr(120000.0), "USD", "USD 90.000 - 120.000"},
		{"no bounds", nil, nil, "BRL", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSalary(tt.min, tt.max, tt.currency))
		})
	}
}

func TestJoinLocation(t *testing.T) {
	assert.Equal(t, "Recife, BR", joinLocation("Recife", "BR"))
	assert.Equal(t, "Recife", joinLocation("Recife", ""))
	assert.Equal(t, "BR", joinLocation("", "BR"))
	assert.Equal(t, "Remote", joinLocation("", ""))
}
