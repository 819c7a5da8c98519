package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Hi</title></head><body>ok</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "ok")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	result, err := URL(context.Background(), "not a url", nil)

	assert.Nil(t, result)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestPageTitle(t *testing.T) {
	html := `<html><head><title>  Python Basics  </title></head><body></body></html>`

	title, err := PageTitle(html)

	require.NoError(t, err)
	assert.Equal(t, "Python Basics", title)
}

func TestPageTitle_PrefersOGTitle(t *testing.T) {
	html := `<html><head><title>Fallback</title><meta property="og:title" content="OG Title"></head></html>`

	title, err := PageTitle(html)

	require.NoError(t, err)
	assert.Equal(t, "OG Title", title)
}

func TestPageTitle_NoTitle(t *testing.T) {
	title, err := PageTitle("<html><body>no head</body></html>")

	require.NoError(t, err)
	assert.Empty(t, title)
}
