package glassdoor

import (
	"context"
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
)

const jsonLDPage = `<html><head><script type="application/ld+json">
{
	"@type": "ItemList",
	"itemListElement": [
		{"item": {
			"@type": "JobPosting",
			"title": "Engenheiro de Software",
			"url": "https://www.glassdoor.com.br/job-listing/789",
			"hiringOrganization": {"name": "Initech"},
			"jobLocation": {"address": {"addressLocality": "Recife"}}
		}}
	]
}
</script></head><body></body></html>`

const selectorPage = `<html><body>
<li class="react-job-listing">
	<a data-test="job-title" href="/partner/jobListing.htm?jl=42&src=feed">Desenvolvedor Go</a>
	<span data-test="emp-name">Globex</span>
	<span data-test="emp-location">São Paulo</span>
</li>
<li class="react-job-listing">
	<span data-test="emp-name">sem título, ignorado</span>
</li>
</body></html>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_PrefersJSONLD(t *testing.T) {
	logger := testLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/Vaga/brasil-")
		assert.Contains(t, r.URL.Path, "-vagas-SRCH_IL.0,6_IN36_KO7,")
		_, _ = w.Write([]byte(jsonLDPage))
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Recife")
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Engenheiro de Software", job.Title)
	assert.Equal(t, "Initech", job.Company)
	assert.Equal(t, "Recife", job.Location)
	assert.Equal(t, "https://www.glassdoor.com.br/job-listing/789", job.URL)
	assert.Equal(t, domain.SourceGlassdoor, job.Source)
}

func TestFetch_SelectorFallback(t *testing.T) {
	logger := testLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(selectorPage))
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "")
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Desenvolvedor Go", job.Title)
	assert.Equal(t, "Globex", job.Company)
	assert.Equal(t, "São Paulo", job.Location)
	assert.Equal(t, server.URL+"/partner/jobListing.htm", job.URL)
	assert.Equal(t, "Desenvolvedor Go - Globex", job.Description)
}

func TestFetch_SiteDown(t *testing.T) {
	logger := testLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}
