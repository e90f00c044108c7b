package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Acme Careers</title>
	<meta property="og:title" content="Senior Backend Engineer">
</head>
<body>
	<nav>Home | Jobs | About</nav>
	<h1>Senior Backend Engineer</h1>
	<div class="job-description">
		<p>We are looking for a backend engineer.</p>
		<p>Requirements: Python, PostgreSQL, Docker.</p>
	</div>
	<footer>© Acme</footer>
	<script>trackPageView();</script>
</body>
</html>`

func TestJobPosting_ExtractsTitleAndText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	posting, err := JobPosting(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, posting.URL)
	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Contains(t, posting.Text, "backend engineer")
	assert.Contains(t, posting.Text, "Python, PostgreSQL, Docker")
	assert.NotContains(t, posting.Text, "Home | Jobs")
	assert.NotContains(t, posting.Text, "trackPageView")
}

func TestJobPosting_InvalidURL(t *testing.T) {
	_, err := JobPosting(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestJobPosting_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobPosting(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractPosting_FallsBackToBody(t *testing.T) {
	posting, err := ExtractPosting("<html><body><p>Plain posting text</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", posting.Text)
}

func TestExtractPosting_TitleFallbacks(t *testing.T) {
	posting, err := ExtractPosting("<html><head><title>Doc Title</title></head><body><p>x</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Doc Title", posting.Title)

	posting, err = ExtractPosting("<html><body><h1>Heading Title</h1><p>x</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Heading Title", posting.Title)
}
