package catho

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
			"title": "Analista de Sistemas",
			"url": "https://www.catho.com.br/vagas/analista/123",
			"hiringOrganization": {"name": "Acme"},
			"jobLocation": {"address": {"addressLocality": "Recife"}}
		}}
	]
}
</script></head><body></body></html>`

const selectorPage = `<html><body>
<article>
	<h2>Desenvolvedor Go</h2>
	<span data-testid="job-company">Globex</span>
	<span data-testid="job-location">São Paulo</span>
	<a href="/vagas/dev-go/456">ver vaga</a>
</article>
<article>
	<p>sem título, ignorado</p>
</article>
</body></html>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_PrefersJSONLD(t *testing.T) {
	logger := testLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vagas/", r.URL.Path)
		assert.Equal(t, "golang Recife", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(jsonLDPage))
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Recife")
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Analista de Sistemas", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Recife", job.Location)
	assert.Equal(t, "https://www.catho.com.br/vagas/analista/123", job.URL)
	assert.Equal(t, domain.SourceCatho, job.Source)
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
	assert.Equal(t, server.URL+"/vagas/dev-go/456", job.URL)
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
