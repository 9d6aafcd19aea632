package certification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/certification"
)

const movieListBody = `{
	"certifications": {
		"US": [
			{"certification": "G", "meaning": "All ages admitted.", "order": 1},
			{"certification": "PG", "meaning": "Some material may not be suitable for children.", "order": 2},
			{"certification": "PG-13", "meaning": "Some material may be inappropriate for children under 13.", "order": 3}
		],
		"DE": [
			{"certification": "0", "meaning": "No age restriction.", "order": 1},
			{"certification": "6", "meaning": "Released to ages 6 and older.", "order": 2}
		]
	}
}`

func newClient(t *testing.T, url string) *tmdb.Client {
	t.Helper()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(url))
	require.NoError(t, err)
	return client
}

func TestMovieList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/certification/movie/list", r.URL.Path)
		assert.Equal(t, "api_key=secret", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(movieListBody))
	}))
	defer server.Close()

	certs, err := certification.NewMovieList().Execute(context.Background(), newClient(t, server.URL))
	require.NoError(t, err)

	require.Contains(t, certs, "US")
	require.NotEmpty(t, certs["US"])
	assert.Equal(t, 1, certs["US"][0].Order)
	assert.Equal(t, "G", certs["US"][0].Certification)
	assert.Len(t, certs["DE"], 2)
}

func TestTVList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/certification/tv/list", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"certifications": {"US": [{"certification": "TV-MA", "meaning": "Mature audiences only.", "order": 6}]}}`))
	}))
	defer server.Close()

	certs, err := certification.NewTVList().Execute(context.Background(), newClient(t, server.URL))
	require.NoError(t, err)

	require.Len(t, certs["US"], 1)
	assert.Equal(t, "TV-MA", certs["US"][0].Certification)
}

func TestMovieListInvalidAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key: You must be granted a valid key."}`))
	}))
	defer server.Close()

	_, err := certification.NewMovieList().Execute(context.Background(), newClient(t, server.URL))
	require.Error(t, err)

	serverErr, ok := tmdb.AsServerError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, serverErr.StatusCode)
	assert.Equal(t, tmdb.StatusInvalidAPIKey, serverErr.Body.StatusCode)
	assert.True(t, tmdb.IsInvalidAPIKey(err))
}
