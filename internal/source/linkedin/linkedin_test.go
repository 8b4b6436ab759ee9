package linkedin

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

const guestListingHTML = `
<ul>
	<li>
		<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/3912345678/?tracking=abc"></a>
		<h3 class="base-search-card__title"> Go Developer </h3>
		<h4 class="base-search-card__subtitle"> Acme </h4>
		<span class="job-search-card__location"> Recife, PE </span>
		<time datetime="2024-03-01"></time>
	</li>
	<li>
		<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/3900000001"></a>
		<h3 class="base-search-card__title">Backend Engineer</h3>
		<h4 class="base-search-card__subtitle">Globex</h4>
	</li>
	<li>
		<h3 class="base-search-card__title">No link, dropped</h3>
	</li>
</ul>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetch_ParsesGuestListing(t *testing.T) {
	logger := testLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang", r.URL.Query().Get("keywords"))
		assert.Equal(t, "Brasil", r.URL.Query().Get("location"))
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		_, _ = w.Write([]byte(guestListingHTML))
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang remoto", "")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	job := jobs[0]
	assert.Equal(t, "Go Developer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Recife, PE", job.Location)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/3912345678/", job.URL)
	assert.Equal(t, "3912345678", job.ExternalID)
	assert.Equal(t, domain.SourceLinkedIn, job.Source)
	assert.Equal(t, "Go Developer at Acme - Recife, PE", job.Description)
	require.NotNil(t, job.PostedAt)

	// Missing location falls back to a placeholder rather than dropping the card.
	assert.Equal(t, "N/A", jobs[1].Location)
	assert.Equal(t, "3900000001", jobs[1].ExternalID)
	assert.Nil(t, jobs[1].PostedAt)
}

func TestFetch_EndpointDown(t *testing.T) {
	logger := testLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	src := New(Config{BaseURL: server.URL}, fetch.New(time.Second, logger), logger)

	jobs, err := src.Fetch(context.Background(), "golang", "Brasil")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestExternalID(t *testing.T) {
	tests := []struct {
		link     string
		expected string
	}{
		{"https://www.linkedin.com/jobs/view/123456/?ref=x", "123456"},
		{"https://www.linkedin.com/jobs/view/123456", "123456"},
		{"https://www.linkedin.com/jobs/view/123456/extra", "123456"},
		{"https://www.linkedin.com/jobs/search", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, externalID(tt.link))
	}
}
