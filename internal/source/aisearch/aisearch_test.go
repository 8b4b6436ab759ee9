package aisearch

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/ai"
	"jobradar/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_NotConfigured(t *testing.T) {
	logger := testLogger()
	src := New(ai.NewClient("", logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Recife")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFetch_FiltersModelOutput(t *testing.T) {
	logger := testLogger()

	reply := `[` +
		`{"title": "Go Dev", "company": "Acme", "location": "Recife", "url": "https://example.com/1", "salary": "R$ 12.000"},` +
		`{"title": "Dev Berlin", "company": "X", "location": "Berlin", "url": "https://example.com/2"},` +
		`{"title": "No URL", "company": "Y", "location": "Remote", "url": "apply via email"},` +
		`{"title": "", "company": "Z", "location": "Remote", "url": "https://example.com/3"},` +
		`{"title": "Remote Dev", "company": "", "location": "Remote", "url": "https://example.com/4"}` +
		`]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, err := json.Marshal(reply)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":` + string(content) + `}}]}`))
	}))
	defer server.Close()

	src := New(ai.NewClientWithBaseURL("test-key", server.URL, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Recife")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Go Dev", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "R$ 12.000", jobs[0].Salary)
	assert.Equal(t, domain.SourceAISearch, jobs[0].Source)

	assert.Equal(t, "Remote Dev", jobs[1].Title)
	assert.Equal(t, "Empresa não informada", jobs[1].Company)
}
